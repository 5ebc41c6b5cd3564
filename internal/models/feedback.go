package models

import "github.com/google/uuid"

// Feedback is a customer rating, optionally tied to an order. Anonymous
// submissions carry a nil customer reference.
type Feedback struct {
	BaseModel
	CustomerID *uuid.UUID `gorm:"type:uuid;index" json:"customer_id"`
	OrderID    *uuid.UUID `gorm:"type:uuid;index" json:"order_id"`
	Rating     int        `json:"rating"`
	Comment    string     `json:"comment"`
}
