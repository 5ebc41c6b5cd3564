package models

import (
	"time"

	"github.com/google/uuid"
)

// ShipmentStatus is the closed set of shipment lifecycle states.
type ShipmentStatus string

const (
	ShipmentAssigned  ShipmentStatus = "assigned"
	ShipmentPickedUp  ShipmentStatus = "picked_up"
	ShipmentInTransit ShipmentStatus = "in_transit"
	ShipmentDelivered ShipmentStatus = "delivered"
	ShipmentFailed    ShipmentStatus = "failed"
)

// Valid reports whether the status is a recognized value.
func (s ShipmentStatus) Valid() bool {
	switch s {
	case ShipmentAssigned, ShipmentPickedUp, ShipmentInTransit, ShipmentDelivered, ShipmentFailed:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are allowed.
func (s ShipmentStatus) Terminal() bool {
	return s == ShipmentDelivered || s == ShipmentFailed
}

// CanTransition reports whether moving from s to next is legal.
// assigned → picked_up → in_transit → delivered; failed is reachable from
// any non-terminal state.
func (s ShipmentStatus) CanTransition(next ShipmentStatus) bool {
	if s.Terminal() {
		return false
	}
	if next == ShipmentFailed {
		return true
	}
	switch s {
	case ShipmentAssigned:
		return next == ShipmentPickedUp
	case ShipmentPickedUp:
		return next == ShipmentInTransit
	case ShipmentInTransit:
		return next == ShipmentDelivered
	}
	return false
}

// Shipment is the operational record of an order's movement. One shipment
// exists per dispatched order.
type Shipment struct {
	BaseModel
	OrderID          uuid.UUID      `gorm:"type:uuid;uniqueIndex" json:"order_id"`
	Order            *Order         `json:"order,omitempty"`
	DriverID         *uuid.UUID     `gorm:"type:uuid;index" json:"driver_id"`
	Driver           *Driver        `json:"driver,omitempty"`
	CurrentLocation  string         `json:"current_location"`
	CurrentLatitude  string         `gorm:"size:50" json:"current_latitude"`
	CurrentLongitude string         `gorm:"size:50" json:"current_longitude"`
	Status           ShipmentStatus `gorm:"size:16;default:assigned" json:"status"`
	LastUpdated      time.Time      `json:"last_updated"`
}
