// Package validator centralizes the field checks shared by entities and use cases.
package validator

import (
	"strings"

	"meditrack/internal/domain/errs"

	"github.com/shopspring/decimal"
)

// RequireNonBlank returns the trimmed value.
func RequireNonBlank(value, field string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", errs.Invalid(field, "must not be blank")
	}
	return v, nil
}

func RequirePositive(value int, field string) (int, error) {
	if value <= 0 {
		return 0, errs.Invalid(field, "must be > 0")
	}
	return value, nil
}

func RequireRangeInclusive(value, min, max int, field string) (int, error) {
	if value < min || value > max {
		return 0, errs.Invalid(field, "must be in range [%d, %d]", min, max)
	}
	return value, nil
}

func RequireNonNegative(value decimal.Decimal, field string) (decimal.Decimal, error) {
	if value.IsNegative() {
		return decimal.Zero, errs.Invalid(field, "must be >= 0")
	}
	return value, nil
}

// RequireFraction accepts decimals in [0, 1].
func RequireFraction(value decimal.Decimal, field string) (decimal.Decimal, error) {
	if value.IsNegative() || value.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.Zero, errs.Invalid(field, "must be in range [0, 1]")
	}
	return value, nil
}
