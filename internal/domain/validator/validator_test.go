package validator

import (
	"errors"
	"testing"

	"meditrack/internal/domain/errs"

	"github.com/shopspring/decimal"
)

func TestRequireNonBlank(t *testing.T) {
	if v, err := RequireNonBlank("  DOC-1 ", "id"); err != nil || v != "DOC-1" {
		t.Fatalf("expected trimmed value, got %q err=%v", v, err)
	}
	for _, in := range []string{"", "   ", "\t\n"} {
		if _, err := RequireNonBlank(in, "id"); !errors.Is(err, errs.ErrValidation) {
			t.Fatalf("expected validation error for %q, got %v", in, err)
		}
	}
}

func TestRequireRangeInclusive(t *testing.T) {
	cases := []struct {
		in      int
		wantErr bool
	}{
		{0, false}, {130, false}, {65, false}, {-1, true}, {131, true},
	}
	for _, tc := range cases {
		_, err := RequireRangeInclusive(tc.in, 0, 130, "age")
		if (err != nil) != tc.wantErr {
			t.Fatalf("age=%d expected err=%v got %v", tc.in, tc.wantErr, err)
		}
	}
}

func TestRequirePositive(t *testing.T) {
	if _, err := RequirePositive(0, "n"); err == nil {
		t.Fatalf("expected error for zero")
	}
	if v, err := RequirePositive(3, "n"); err != nil || v != 3 {
		t.Fatalf("unexpected result %d err=%v", v, err)
	}
}

func TestRequireNonNegative(t *testing.T) {
	if _, err := RequireNonNegative(decimal.NewFromInt(-1), "fee"); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if v, err := RequireNonNegative(decimal.Zero, "fee"); err != nil || !v.IsZero() {
		t.Fatalf("zero must be accepted, got %s err=%v", v, err)
	}
}

func TestRequireFraction(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
	}{
		{"0", true},
		{"0.1", true},
		{"1", true},
		{"-0.01", false},
		{"1.5", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			_, err := RequireFraction(decimal.RequireFromString(tt.value), "discount_rate")
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, errs.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}
