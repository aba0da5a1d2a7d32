// Package services holds stateless rules for catalogue entries. They operate
// on domain types only.
package services

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	pkgvalidator "github.com/daouest/factureme/pkg/validator"
	"github.com/daouest/factureme/services/catalog/domain"
	"github.com/daouest/factureme/services/catalog/domain/models"
)

// ValidateName rejects control characters and runs of spaces. Length and
// trimming are enforced by models.NewName.
func ValidateName(name models.Name) error {
	s := name.String()
	for _, r := range s {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: name must not contain control characters", domain.ErrInvalidEntry)
		}
	}
	if strings.Contains(s, "  ") {
		return fmt.Errorf("%w: name must not contain consecutive spaces", domain.ErrInvalidEntry)
	}
	return nil
}

// ValidateAmount rejects negative prices and rates.
func ValidateAmount(field string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: %s must not be negative", domain.ErrInvalidEntry, field)
	}
	return nil
}

// ValidateProvince accepts an empty code (no override) or one of the thirteen
// province and territory codes.
func ValidateProvince(code string) error {
	if code == "" || pkgvalidator.IsProvince(code) {
		return nil
	}
	return fmt.Errorf("%w: %q", domain.ErrInvalidProvince, code)
}

// ParseName builds and checks a Name in one step.
func ParseName(s string) (models.Name, error) {
	name, err := models.NewName(s)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrInvalidEntry, err)
	}
	if err := ValidateName(name); err != nil {
		return "", err
	}
	return name, nil
}
