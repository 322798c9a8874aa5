package models

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	FirstName string    `gorm:"type:varchar(50);not null" json:"first_name"`
	LastName  string    `gorm:"type:varchar(50)" json:"last_name"`
	Address   string    `gorm:"type:varchar(255)" json:"address,omitempty"`
	Phone     string    `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Role      string    `gorm:"type:varchar(20);not null;default:'customer'" json:"role"` // customer, staff, admin
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// SessionProfile is the profile snapshot written to the storage backend on
// login. Checkout reads it back to prefill the customer info form.
type SessionProfile struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// Profile strips the credentials off a stored user.
func (u User) Profile() SessionProfile {
	return SessionProfile{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Address:   u.Address,
		Phone:     u.Phone,
	}
}
