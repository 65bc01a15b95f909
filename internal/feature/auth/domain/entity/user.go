// Package entity defines the domain entities for the auth feature.
package entity

import "time"

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User represents a registered user in the system.
// It contains authentication credentials and profile data shown on orders.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Name is the display name; order listings show it as the customer name.
	Name string `gorm:"size:255;not null;default:''"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash. Plaintext is never stored.
	Password string `gorm:"size:255;not null"`

	Phone    string `gorm:"size:32"`
	Location string `gorm:"size:255"`

	// Avatar is a reference to an externally stored image; nil until uploaded.
	Avatar *string `gorm:"size:512"`

	Role string `gorm:"size:32;not null;default:customer"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string { return "users" }

// IsAdmin reports whether the user may use administrative endpoints.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
