package models

// Account is a named bucket of transactions, e.g. a bank or card account.
type Account struct {
	Base
	UserID  string  `gorm:"not null;index;size:32" json:"-"`
	Name    string  `gorm:"not null" json:"name"`
	PlaidID *string `json:"-"`

	Transactions []Transaction `gorm:"foreignKey:AccountID" json:"-"`
}
