package request

import "encoding/json"

// BillPaymentCreateRequest documents the body of the pay route.
//
// `provider_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago schemas.
// A bare Mercado Pago payment body is accepted too.
type BillPaymentCreateRequest struct {
	ProviderPayload json.RawMessage `json:"provider_payload"`
}
