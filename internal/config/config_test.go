package config

import "testing"

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"PORT", "MEDITRACK_TAX_RATE", "MEDITRACK_SENIOR_DISCOUNT_RATE", "MEDITRACK_CURRENCY",
		"MEDITRACK_ID_START", "BILLING_ARCHIVE_ENABLED", "BILLS_TABLE", "BILL_PAYMENTS_TABLE",
		"DYNAMODB_ENDPOINT", "MERCADOPAGO_ACCESS_TOKEN", "PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.DefaultTaxRate.String() != "0.18" {
		t.Fatalf("expected default tax rate 0.18, got %s", cfg.DefaultTaxRate)
	}
	if cfg.SeniorDiscountRate.String() != "0.1" {
		t.Fatalf("expected default discount 0.1, got %s", cfg.SeniorDiscountRate)
	}
	if cfg.DefaultCurrency != "INR" {
		t.Fatalf("expected INR, got %s", cfg.DefaultCurrency)
	}
	if cfg.IDStart != 1000 {
		t.Fatalf("expected id start 1000, got %d", cfg.IDStart)
	}
	if cfg.Archive.Enabled {
		t.Fatalf("expected archive disabled by default")
	}
	if cfg.Archive.BillsTable != "bills" || cfg.Archive.PaymentsTable != "bill_payments" {
		t.Fatalf("unexpected default tables %+v", cfg.Archive)
	}
	if cfg.Payments.MockMode {
		t.Fatalf("expected mock mode disabled by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("MEDITRACK_TAX_RATE", "0.05")
	t.Setenv("MEDITRACK_CURRENCY", "usd")
	t.Setenv("MEDITRACK_ID_START", "5000")
	t.Setenv("BILLING_ARCHIVE_ENABLED", "true")
	t.Setenv("MERCADOPAGO_MOCK", "yes")
	t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "TEST-123")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected port override, got %s", cfg.Port)
	}
	if cfg.DefaultTaxRate.String() != "0.05" {
		t.Fatalf("expected tax override, got %s", cfg.DefaultTaxRate)
	}
	if cfg.DefaultCurrency != "USD" {
		t.Fatalf("expected upper-cased currency, got %s", cfg.DefaultCurrency)
	}
	if cfg.IDStart != 5000 {
		t.Fatalf("expected id start override, got %d", cfg.IDStart)
	}
	if !cfg.Archive.Enabled || !cfg.Payments.MockMode || !cfg.Payments.Sandbox() {
		t.Fatalf("expected archive, mock and sandbox on, got %+v", cfg)
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("MEDITRACK_TAX_RATE", "abc")
	t.Setenv("MEDITRACK_SENIOR_DISCOUNT_RATE", "-0.5")
	t.Setenv("MEDITRACK_ID_START", "not-a-number")

	cfg := Load()
	if cfg.DefaultTaxRate.String() != "0.18" {
		t.Fatalf("expected fallback tax rate, got %s", cfg.DefaultTaxRate)
	}
	if cfg.SeniorDiscountRate.String() != "0.1" {
		t.Fatalf("expected fallback discount, got %s", cfg.SeniorDiscountRate)
	}
	if cfg.IDStart != 1000 {
		t.Fatalf("expected fallback id start, got %d", cfg.IDStart)
	}
}

func TestLoadOutOfRangeValuesFallBack(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "negative id start", key: "MEDITRACK_ID_START", value: "-5"},
		{name: "discount above one", key: "MEDITRACK_SENIOR_DISCOUNT_RATE", value: "1.5"},
		{name: "negative tax rate", key: "MEDITRACK_TAX_RATE", value: "-0.01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			cfg := Load()
			if cfg.IDStart != 1000 {
				t.Fatalf("expected fallback id start, got %d", cfg.IDStart)
			}
			if cfg.SeniorDiscountRate.String() != "0.1" {
				t.Fatalf("expected fallback discount, got %s", cfg.SeniorDiscountRate)
			}
			if cfg.DefaultTaxRate.String() != "0.18" {
				t.Fatalf("expected fallback tax rate, got %s", cfg.DefaultTaxRate)
			}
		})
	}
}

func TestLoadFullDiscountAccepted(t *testing.T) {
	clearEnv(t)
	t.Setenv("MEDITRACK_SENIOR_DISCOUNT_RATE", "1")

	if got := Load().SeniorDiscountRate.String(); got != "1" {
		t.Fatalf("expected discount 1 to be kept, got %s", got)
	}
}
