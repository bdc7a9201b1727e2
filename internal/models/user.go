package models

import "time"

// User owns one or more wallet accounts. The payment provider is keyed
// by the user id, not the account number.
type User struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	Name      string `gorm:"not null" json:"name"`
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
