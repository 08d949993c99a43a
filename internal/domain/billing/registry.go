package billing

import (
	"sort"
	"strings"

	"meditrack/internal/domain/errs"

	"github.com/shopspring/decimal"
)

// Registry resolves strategy names sent by callers.
type Registry struct {
	strategies map[string]Strategy
	fallback   string
}

// NewRegistry registers flat tax (the default) and the senior discount.
func NewRegistry(taxRate, seniorDiscountRate decimal.Decimal) *Registry {
	r := &Registry{strategies: map[string]Strategy{}, fallback: StrategyFlatTax}
	r.Register(NewFlatTax(taxRate))
	r.Register(NewSeniorDiscountThenTax(seniorDiscountRate, taxRate))
	return r
}

func (r *Registry) Register(s Strategy) {
	r.strategies[s.Name()] = s
}

// Resolve returns the default strategy for a blank name.
func (r *Registry) Resolve(name string) (Strategy, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = r.fallback
	}
	s, ok := r.strategies[key]
	if !ok {
		return nil, errs.Invalid("strategy", "unknown billing strategy %q", name)
	}
	return s, nil
}

func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.strategies))
	for k := range r.strategies {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
