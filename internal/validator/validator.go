// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Ticker symbols are short alphanumeric codes (BTC, ETH, DOGE). Case is not
// enforced here; symbols are normalized to uppercase before storage.
var symbolRegex = regexp.MustCompile(`^[A-Za-z0-9]{1,10}$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("crypto_symbol", validateCryptoSymbol)
	}
}

func validateCryptoSymbol(fl validator.FieldLevel) bool {
	return symbolRegex.MatchString(fl.Field().String())
}
