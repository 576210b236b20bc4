package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CryptoAsset represents a single cryptocurrency position held by a user.
// Quantity carries 8 fractional digits and PurchasePrice 2, matching the
// numeric columns; both are stored and summed as decimals so aggregate
// computations never go through floats.
type CryptoAsset struct {
	Base
	UserID        uint            `gorm:"not null;index" json:"user_id"`
	Symbol        string          `gorm:"size:10;not null" json:"symbol"`
	Name          string          `gorm:"size:100;not null" json:"name"`
	Quantity      decimal.Decimal `gorm:"type:numeric(20,8);not null" json:"quantity"`
	PurchasePrice decimal.Decimal `gorm:"type:numeric(20,2);not null" json:"purchase_price"`
	PurchaseDate  time.Time       `gorm:"not null" json:"purchase_date"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// Invested returns the cost basis of the position (quantity x purchase price).
func (a *CryptoAsset) Invested() decimal.Decimal {
	return a.Quantity.Mul(a.PurchasePrice)
}
