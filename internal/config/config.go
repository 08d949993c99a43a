// Package config reads the service settings from the environment once at startup.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	defaultTaxRate            = "0.18"
	defaultSeniorDiscountRate = "0.10"
	defaultCurrency           = "INR"
	defaultIDStart            = int64(1000)
)

type Config struct {
	Port string

	// Billing
	DefaultTaxRate     decimal.Decimal
	SeniorDiscountRate decimal.Decimal
	DefaultCurrency    string
	IDStart            int64

	Archive  ArchiveConfig
	Dynamo   DynamoConfig
	Payments PaymentConfig
}

// ArchiveConfig controls the DynamoDB export of issued bills and payments.
type ArchiveConfig struct {
	Enabled       bool
	BillsTable    string
	PaymentsTable string
}

type DynamoConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
}

type PaymentConfig struct {
	MercadoPagoAccessToken string
	MockMode               bool
	TestPayerEmail         string
	TestPayerUserID        string
}

// Sandbox reports whether the access token belongs to a Mercado Pago test account.
func (p PaymentConfig) Sandbox() bool {
	return strings.HasPrefix(p.MercadoPagoAccessToken, "TEST-")
}

func Load() *Config {
	return &Config{
		Port:               getenvDefault("PORT", "8080"),
		DefaultTaxRate:     getenvRate("MEDITRACK_TAX_RATE", defaultTaxRate),
		SeniorDiscountRate: getenvFraction("MEDITRACK_SENIOR_DISCOUNT_RATE", defaultSeniorDiscountRate),
		DefaultCurrency:    strings.ToUpper(getenvDefault("MEDITRACK_CURRENCY", defaultCurrency)),
		IDStart:            getenvInt64("MEDITRACK_ID_START", defaultIDStart),
		Archive: ArchiveConfig{
			Enabled:       getenvBool("BILLING_ARCHIVE_ENABLED", false),
			BillsTable:    getenvDefault("BILLS_TABLE", "bills"),
			PaymentsTable: getenvDefault("BILL_PAYMENTS_TABLE", "bill_payments"),
		},
		Dynamo: DynamoConfig{
			Region:          getenvDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
		},
		Payments: PaymentConfig{
			MercadoPagoAccessToken: strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
			MockMode:               getenvMock("PAYMENT_GATEWAY_MOCK") || getenvMock("MERCADOPAGO_MOCK"),
			TestPayerEmail:         strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")),
			TestPayerUserID:        strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID")),
		},
	}
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// getenvInt64 parses a non-negative integer, falling back to def.
func getenvInt64(key string, def int64) int64 {
	raw := getenvDefault(key, "")
	if raw == "" {
		return def
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		log.Printf("[config] invalid %s=%q, using %d", key, raw, def)
		return def
	}
	return v
}

func getenvBool(key string, def bool) bool {
	if v, err := strconv.ParseBool(getenvDefault(key, "")); err == nil {
		return v
	}
	return def
}

// getenvMock also accepts "yes", "on" and "mock".
func getenvMock(key string) bool {
	switch strings.ToLower(getenvDefault(key, "")) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

// getenvRate parses a non-negative decimal fraction, falling back to def.
func getenvRate(key, def string) decimal.Decimal {
	fallback := decimal.RequireFromString(def)
	raw := getenvDefault(key, "")
	if raw == "" {
		return fallback
	}
	v, err := decimal.NewFromString(raw)
	if err != nil || v.IsNegative() {
		log.Printf("[config] invalid %s=%q, using %s", key, raw, def)
		return fallback
	}
	return v
}

// getenvFraction is getenvRate bounded to [0,1].
func getenvFraction(key, def string) decimal.Decimal {
	v := getenvRate(key, def)
	if v.GreaterThan(decimal.NewFromInt(1)) {
		log.Printf("[config] invalid %s=%s, using %s", key, v, def)
		return decimal.RequireFromString(def)
	}
	return v
}
