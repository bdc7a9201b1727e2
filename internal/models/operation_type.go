package models

// Operation type identifiers. These are reference data seeded at
// migration time; the strategy registry maps them to arithmetic variants.
const (
	OperationTypeTopup      uint = 1
	OperationTypeWithdrawal uint = 2
)

// OperationType classifies a wallet transaction (top-up, withdrawal).
// Read-only reference data.
type OperationType struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Description string `gorm:"uniqueIndex;not null" json:"description"`
}
