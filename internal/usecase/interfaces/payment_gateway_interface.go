package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts the payment provider (Mercado Pago).
//
// The provider response is kept on the payment record for traceability.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
