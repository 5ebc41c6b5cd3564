package models

import "github.com/google/uuid"

// PaymentStatus is the closed set of invoice payment states.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// Valid reports whether the payment status is a recognized value.
func (s PaymentStatus) Valid() bool {
	return s == PaymentPending || s == PaymentPaid || s == PaymentFailed
}

// Invoice is the billing record for an order. One invoice exists per order.
type Invoice struct {
	BaseModel
	OrderID       uuid.UUID     `gorm:"type:uuid;uniqueIndex" json:"order_id"`
	Order         *Order        `json:"order,omitempty"`
	InvoiceNumber string        `gorm:"uniqueIndex;size:50" json:"invoice_number"`
	TotalAmount   string        `gorm:"size:20" json:"total_amount"`
	Tax           string        `gorm:"size:20" json:"tax"`
	Discount      string        `gorm:"size:20;default:0" json:"discount"`
	FinalAmount   string        `gorm:"size:20" json:"final_amount"`
	PaymentStatus PaymentStatus `gorm:"size:16;default:pending" json:"payment_status"`
	InvoiceURL    string        `json:"invoice_url"`
}
