package models

import "github.com/google/uuid"

// Driver is the operational profile backing a user with the driver role.
type Driver struct {
	BaseModel
	UserID           uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"user_id"`
	User             *User     `json:"user,omitempty"`
	DriverLicense    string    `gorm:"uniqueIndex;size:50" json:"driver_license"`
	Phone            string    `gorm:"size:20" json:"phone"`
	Vehicle          string    `gorm:"size:100" json:"vehicle"`
	CurrentLatitude  string    `gorm:"size:50" json:"current_latitude"`
	CurrentLongitude string    `gorm:"size:50" json:"current_longitude"`
	IsActive         bool      `gorm:"default:true" json:"is_active"`
	TotalDeliveries  int       `gorm:"default:0" json:"total_deliveries"`
	Rating           string    `gorm:"size:5;default:0" json:"rating"`
}
