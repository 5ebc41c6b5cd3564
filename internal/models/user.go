package models

import "time"

// Roles recognized by the authorization boundary.
const (
	RoleUser   = "user"
	RoleDriver = "driver"
	RoleAdmin  = "admin"
)

// User represents an authenticated account. OpenID is the external identity
// key; locally registered accounts get a generated one.
type User struct {
	BaseModel
	OpenID       string    `gorm:"uniqueIndex;size:64" json:"open_id"`
	Name         string    `json:"name"`
	Email        string    `gorm:"uniqueIndex;size:320" json:"email"`
	LoginMethod  string    `gorm:"size:64" json:"login_method"`
	Role         string    `gorm:"size:16;default:user" json:"role"`
	PasswordHash string    `json:"-"`
	LastSignedIn time.Time `json:"last_signed_in"`
	Driver       *Driver   `json:"driver,omitempty"`
	Orders       []Order   `gorm:"foreignKey:CustomerID" json:"orders,omitempty"`
}

// IsAdmin reports whether the user may access admin operations.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
