package services

import (
	"github.com/shopspring/decimal"

	"cryptofolio/internal/models"
)

// AssetInput carries the decoded fields of a create or update request.
// Pointer fields distinguish "absent" from "present" so updates can apply
// partial patches without clearing untouched fields.
type AssetInput struct {
	Symbol        *string          `json:"symbol" binding:"omitempty,crypto_symbol"`
	Name          *string          `json:"name"`
	Quantity      *decimal.Decimal `json:"quantity"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice"`
	PurchaseDate  *string          `json:"purchaseDate"`
}

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// PortfolioServicer defines the contract for crypto asset CRUD logic.
// Every operation takes the authenticated caller's user ID so ownership
// is enforced at the query boundary.
type PortfolioServicer interface {
	ListAssets(userID uint) ([]models.CryptoAsset, error)
	GetAsset(userID, assetID uint) (*models.CryptoAsset, error)
	CreateAsset(userID uint, input AssetInput) (*models.CryptoAsset, error)
	UpdateAsset(userID, assetID uint, input AssetInput) (*models.CryptoAsset, error)
	DeleteAsset(userID, assetID uint) error
}

// StatsServicer defines the contract for portfolio statistics.
type StatsServicer interface {
	PortfolioValue(userID uint) (*PortfolioValueStats, error)
	PortfolioSummary(userID uint) (*PortfolioSummaryStats, error)
	PortfolioHistory(userID uint) (*PortfolioHistoryStats, error)
	PortfolioDistribution(userID uint) (*PortfolioDistributionStats, error)
}
