package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderType distinguishes shipping orders from warehousing orders.
type OrderType string

const (
	OrderTypeShip      OrderType = "ship"
	OrderTypeWarehouse OrderType = "warehouse"
)

// Valid reports whether the order type is a recognized value.
func (t OrderType) Valid() bool {
	return t == OrderTypeShip || t == OrderTypeWarehouse
}

// OrderStatus is the closed set of order lifecycle states.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderInTransit OrderStatus = "in_transit"
	OrderDelivered OrderStatus = "delivered"
	OrderStored    OrderStatus = "stored"
)

// Valid reports whether the status is a recognized value.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderInTransit, OrderDelivered, OrderStored:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are allowed.
func (s OrderStatus) Terminal() bool {
	return s == OrderDelivered || s == OrderStored
}

// CanTransition reports whether moving from s to next is legal.
// pending → confirmed → in_transit → {delivered, stored}.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	switch s {
	case OrderPending:
		return next == OrderConfirmed
	case OrderConfirmed:
		return next == OrderInTransit
	case OrderInTransit:
		return next == OrderDelivered || next == OrderStored
	}
	return false
}

// Order is a customer's request to ship or warehouse a package. The tracking
// ID is the public lookup key for guests.
type Order struct {
	BaseModel
	CustomerID        uuid.UUID   `gorm:"type:uuid;index" json:"customer_id"`
	Customer          *User       `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	OrderType         OrderType   `gorm:"size:16" json:"order_type"`
	TrackingID        string      `gorm:"uniqueIndex;size:32" json:"tracking_id"`
	Status            OrderStatus `gorm:"size:16;default:pending" json:"status"`
	PickupLocation    string      `json:"pickup_location"`
	DeliveryLocation  string      `json:"delivery_location"`
	PackageWeight     string      `gorm:"size:50" json:"package_weight"`
	PackageDimensions string      `gorm:"size:100" json:"package_dimensions"`
	Description       string      `json:"description"`
	EstimatedDelivery *time.Time  `json:"estimated_delivery"`
	ActualDelivery    *time.Time  `json:"actual_delivery"`
	Shipment          *Shipment   `json:"shipment,omitempty"`
	Invoice           *Invoice    `json:"invoice,omitempty"`
}
