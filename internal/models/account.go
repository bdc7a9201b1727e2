package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is a user's wallet account. Balance is stored as an exact
// decimal; all arithmetic on it goes through the operation strategies.
type Account struct {
	ID            uint            `gorm:"primarykey" json:"id"`
	AccountNumber int64           `gorm:"uniqueIndex;not null" json:"account_number"`
	UserID        uint            `gorm:"not null" json:"user_id"`
	User          *User           `gorm:"foreignKey:UserID" json:"-"`
	Balance       decimal.Decimal `gorm:"type:numeric(20,2);not null" json:"balance"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
