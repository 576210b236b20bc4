package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"cryptofolio/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestAsset creates an asset with the given symbol, quantity, and
// purchase price, dated now.
func CreateTestAsset(t *testing.T, db *gorm.DB, userID uint, symbol, quantity, price string) *models.CryptoAsset {
	t.Helper()
	return CreateTestAssetAt(t, db, userID, symbol, quantity, price, time.Now())
}

// CreateTestAssetAt creates an asset purchased at the given date.
func CreateTestAssetAt(t *testing.T, db *gorm.DB, userID uint, symbol, quantity, price string, purchaseDate time.Time) *models.CryptoAsset {
	t.Helper()

	q, err := decimal.NewFromString(quantity)
	if err != nil {
		t.Fatalf("invalid test quantity %q: %v", quantity, err)
	}
	p, err := decimal.NewFromString(price)
	if err != nil {
		t.Fatalf("invalid test price %q: %v", price, err)
	}

	asset := &models.CryptoAsset{
		UserID:        userID,
		Symbol:        symbol,
		Name:          fmt.Sprintf("Test Coin %d", nextID()),
		Quantity:      q,
		PurchasePrice: p,
		PurchaseDate:  purchaseDate,
	}
	if err := db.Create(asset).Error; err != nil {
		t.Fatalf("failed to create test asset: %v", err)
	}
	return asset
}
