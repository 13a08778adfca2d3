package models

import "time"

// Transaction is a single signed money movement on an account. Amounts are
// minor currency units: zero or positive is income, negative is an expense.
type Transaction struct {
	Base
	Date       time.Time `gorm:"not null;index" json:"date"`
	AccountID  string    `gorm:"type:uuid;not null;index" json:"accountId"`
	CategoryID *string   `gorm:"type:uuid;index" json:"categoryId"`
	Payee      string    `gorm:"not null" json:"payee"`
	Amount     int64     `gorm:"type:bigint;not null" json:"amount"`
	Notes      *string   `json:"notes"`

	// Relationships
	Account  Account   `gorm:"foreignKey:AccountID" json:"-"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"-"`
}
