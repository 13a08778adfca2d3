package models

// Category is an optional label on transactions used for the spending rollup.
type Category struct {
	Base
	UserID  string  `gorm:"not null;index;size:32" json:"-"`
	Name    string  `gorm:"not null" json:"name"`
	PlaidID *string `json:"-"`

	Transactions []Transaction `gorm:"foreignKey:CategoryID" json:"-"`
}
