// Package billing turns a base amount into a payable bill.
//
// A Strategy is a pure computation from a base amount to a final total. The
// Factory either applies the default flat tax itself or routes the amount
// through a Strategy and stores the result with a zero tax rate, so the
// strategy total is never taxed a second time.
package billing

import (
	"meditrack/internal/domain/entities"
	"meditrack/internal/domain/validator"

	"github.com/shopspring/decimal"
)

const (
	StrategyFlatTax        = "flat_tax"
	StrategySeniorDiscount = "senior_discount"
)

// DefaultTaxRate applies when no rate is configured.
var DefaultTaxRate = decimal.RequireFromString("0.18")

// DefaultSeniorDiscountRate applies when no discount is configured.
var DefaultSeniorDiscountRate = decimal.RequireFromString("0.10")

type Strategy interface {
	Name() string
	// ComputeTotal fails with a validation error on a negative base.
	ComputeTotal(base decimal.Decimal) (decimal.Decimal, error)
}

// StrategyFunc adapts a closure to Strategy. Negative input is rejected
// before fn runs.
type StrategyFunc struct {
	Label string
	Fn    func(base decimal.Decimal) decimal.Decimal
}

func (f StrategyFunc) Name() string { return f.Label }

func (f StrategyFunc) ComputeTotal(base decimal.Decimal) (decimal.Decimal, error) {
	if _, err := validator.RequireNonNegative(base, "base_amount"); err != nil {
		return decimal.Zero, err
	}
	return f.Fn(base), nil
}

type FlatTax struct {
	Rate decimal.Decimal
}

func NewFlatTax(rate decimal.Decimal) FlatTax { return FlatTax{Rate: rate} }

func (FlatTax) Name() string { return StrategyFlatTax }

// ComputeTotal returns round2(base + base*rate).
func (s FlatTax) ComputeTotal(base decimal.Decimal) (decimal.Decimal, error) {
	if _, err := validator.RequireNonNegative(base, "base_amount"); err != nil {
		return decimal.Zero, err
	}
	if _, err := validator.RequireNonNegative(s.Rate, "tax_rate"); err != nil {
		return decimal.Zero, err
	}
	return applyTax(base, s.Rate), nil
}

// SeniorDiscountThenTax discounts first and taxes the discounted amount.
// Reversing the two steps gives a different total.
type SeniorDiscountThenTax struct {
	DiscountRate decimal.Decimal
	TaxRate      decimal.Decimal
}

func NewSeniorDiscountThenTax(discountRate, taxRate decimal.Decimal) SeniorDiscountThenTax {
	return SeniorDiscountThenTax{DiscountRate: discountRate, TaxRate: taxRate}
}

func (SeniorDiscountThenTax) Name() string { return StrategySeniorDiscount }

// ComputeTotal rejects a discount outside [0, 1] or a negative tax rate, so
// the total is never negative.
func (s SeniorDiscountThenTax) ComputeTotal(base decimal.Decimal) (decimal.Decimal, error) {
	if _, err := validator.RequireNonNegative(base, "base_amount"); err != nil {
		return decimal.Zero, err
	}
	if _, err := validator.RequireFraction(s.DiscountRate, "discount_rate"); err != nil {
		return decimal.Zero, err
	}
	if _, err := validator.RequireNonNegative(s.TaxRate, "tax_rate"); err != nil {
		return decimal.Zero, err
	}
	return applyTax(s.Discounted(base), s.TaxRate), nil
}

// Discounted is base - base*discountRate, unrounded.
func (s SeniorDiscountThenTax) Discounted(base decimal.Decimal) decimal.Decimal {
	return base.Sub(base.Mul(s.DiscountRate))
}

func applyTax(base, rate decimal.Decimal) decimal.Decimal {
	return base.Add(base.Mul(rate)).Round(entities.MoneyScale)
}
