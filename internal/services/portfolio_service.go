package services

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"

	apperrors "cryptofolio/internal/errors"
	"cryptofolio/internal/models"
)

// PurchaseDateLayout is the accepted layout for purchase dates in request
// payloads and the layout used when rendering them in responses.
const PurchaseDateLayout = "2006-01-02 15:04:05"

const (
	maxSymbolLen = 10
	maxNameLen   = 100
)

// portfolioService handles crypto asset CRUD logic.
type portfolioService struct {
	db *gorm.DB
}

// NewPortfolioService creates a new PortfolioServicer.
func NewPortfolioService(db *gorm.DB) PortfolioServicer {
	return &portfolioService{db: db}
}

// ListAssets returns all assets owned by the user, newest first.
func (s *portfolioService) ListAssets(userID uint) ([]models.CryptoAsset, error) {
	var assets []models.CryptoAsset
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&assets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return assets, nil
}

// GetAsset returns the asset with the given ID if it belongs to the user.
// The combined id+user lookup means a foreign asset is indistinguishable
// from a missing one: both yield ASSET_NOT_FOUND.
func (s *portfolioService) GetAsset(userID, assetID uint) (*models.CryptoAsset, error) {
	var asset models.CryptoAsset
	if err := s.db.Where("id = ? AND user_id = ?", assetID, userID).
		First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &asset, nil
}

// CreateAsset validates the input and persists a new asset for the user.
func (s *portfolioService) CreateAsset(userID uint, input AssetInput) (*models.CryptoAsset, error) {
	var missing []string
	if input.Symbol == nil {
		missing = append(missing, "symbol")
	}
	if input.Name == nil {
		missing = append(missing, "name")
	}
	if input.Quantity == nil {
		missing = append(missing, "quantity")
	}
	if input.PurchasePrice == nil {
		missing = append(missing, "purchasePrice")
	}
	if len(missing) > 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput,
			"Missing required fields: "+strings.Join(missing, ", "))
	}

	asset := &models.CryptoAsset{
		UserID:        userID,
		Symbol:        strings.ToUpper(*input.Symbol),
		Name:          *input.Name,
		Quantity:      *input.Quantity,
		PurchasePrice: *input.PurchasePrice,
		PurchaseDate:  time.Now(),
	}

	if input.PurchaseDate != nil {
		date, err := time.Parse(PurchaseDateLayout, *input.PurchaseDate)
		if err != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput,
				"Invalid date format (expected format: "+PurchaseDateLayout+")")
		}
		asset.PurchaseDate = date
	}

	if details := validateAsset(asset); len(details) > 0 {
		return nil, apperrors.WithDetails(apperrors.ErrInvalidInput, "Invalid data", details)
	}

	if err := s.db.Create(asset).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return asset, nil
}

// UpdateAsset applies a partial patch to an existing asset owned by the user.
// Absent fields are left untouched; the patched record is re-validated before
// it is persisted.
func (s *portfolioService) UpdateAsset(userID, assetID uint, input AssetInput) (*models.CryptoAsset, error) {
	asset, err := s.GetAsset(userID, assetID)
	if err != nil {
		return nil, err
	}

	if input.Symbol != nil {
		asset.Symbol = strings.ToUpper(*input.Symbol)
	}
	if input.Name != nil {
		asset.Name = *input.Name
	}
	if input.Quantity != nil {
		asset.Quantity = *input.Quantity
	}
	if input.PurchasePrice != nil {
		asset.PurchasePrice = *input.PurchasePrice
	}
	if input.PurchaseDate != nil {
		date, err := time.Parse(PurchaseDateLayout, *input.PurchaseDate)
		if err != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput,
				"Invalid date format (expected format: "+PurchaseDateLayout+")")
		}
		asset.PurchaseDate = date
	}

	if details := validateAsset(asset); len(details) > 0 {
		return nil, apperrors.WithDetails(apperrors.ErrInvalidInput, "Invalid data", details)
	}

	if err := s.db.Save(asset).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return asset, nil
}

// DeleteAsset permanently removes an asset owned by the user.
func (s *portfolioService) DeleteAsset(userID, assetID uint) error {
	asset, err := s.GetAsset(userID, assetID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(asset).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// validateAsset runs field-level validation on a fully populated asset and
// returns one "<field>: <message>" entry per violation. Negative quantities
// and prices are rejected: a disposal is expected to be modelled as an
// update or delete, not a negative position.
func validateAsset(asset *models.CryptoAsset) []string {
	var details []string

	if strings.TrimSpace(asset.Symbol) == "" {
		details = append(details, "symbol: must not be blank")
	} else if utf8.RuneCountInString(asset.Symbol) > maxSymbolLen {
		details = append(details, fmt.Sprintf("symbol: must be at most %d characters", maxSymbolLen))
	}

	if strings.TrimSpace(asset.Name) == "" {
		details = append(details, "name: must not be blank")
	} else if utf8.RuneCountInString(asset.Name) > maxNameLen {
		details = append(details, fmt.Sprintf("name: must be at most %d characters", maxNameLen))
	}

	if asset.Quantity.IsNegative() {
		details = append(details, "quantity: must not be negative")
	}
	if asset.PurchasePrice.IsNegative() {
		details = append(details, "purchasePrice: must not be negative")
	}

	if asset.PurchaseDate.IsZero() {
		details = append(details, "purchaseDate: must be a valid date")
	}

	return details
}
