package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	response "meditrack/internal/adapter/http/dto/response"
	"meditrack/internal/usecase"

	"github.com/gin-gonic/gin"
)

const providerPayloadKey = "provider_payload"

// BillHandler handles HTTP requests for bills and their payments.
type BillHandler struct {
	usecase usecase.IBillingUseCase
	// mockMode tolerates malformed pay bodies, mirroring the mock payment gateway.
	mockMode bool
}

func NewBillHandler(uc usecase.IBillingUseCase, mockMode bool) *BillHandler {
	return &BillHandler{usecase: uc, mockMode: mockMode}
}

// GetBill godoc
// @Summary Get a bill
// @Tags bills
// @Produce json
// @Param id path string true "Bill ID"
// @Success 200 {object} response.BillResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /bills/{id} [get]
func (h *BillHandler) GetBill(c *gin.Context) {
	b, err := h.usecase.GetBill(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBill(b))
}

// PayBill godoc
// @Summary Settle a bill through the payment provider
// @Description Accepts {"provider_payload": {...}} or a bare Mercado Pago payment body. The amount charged is always the bill's amount due.
// @Tags bills
// @Accept json
// @Produce json
// @Param id path string true "Bill ID"
// @Param payment body request.BillPaymentCreateRequest false "Provider payload"
// @Success 200 {object} response.BillPaymentResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /bills/{id}/payments [post]
func (h *BillHandler) PayBill(c *gin.Context) {
	billID := c.Param("id")
	log.Printf("[payment][handler] create start bill_id=%s", billID)
	payload, err := readProviderPayload(c)
	if err != nil {
		if h.mockMode {
			log.Printf("[payment][handler] payload invalid in mock mode; fallback to empty payload bill_id=%s err=%v", billID, err)
			payload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][handler] invalid payload bill_id=%s err=%v", billID, err)
			abortInvalidPayload(c)
			return
		}
	}

	created, err := h.usecase.Pay(c.Request.Context(), billID, payload)
	if err != nil {
		log.Printf("[payment][handler] create failed bill_id=%s err=%v", billID, err)
		abortWithError(c, err)
		return
	}
	log.Printf("[payment][handler] create success bill_id=%s payment_id=%s status=%s", billID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromBillPayment(created))
}

// ListBillPayments godoc
// @Summary List the payments recorded for a bill
// @Tags bills
// @Produce json
// @Param id path string true "Bill ID"
// @Success 200 {array} response.BillPaymentResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /bills/{id}/payments [get]
func (h *BillHandler) ListBillPayments(c *gin.Context) {
	billID := c.Param("id")
	payments, err := h.usecase.ListPayments(c.Request.Context(), billID)
	if err != nil {
		log.Printf("[payment][handler] list failed bill_id=%s err=%v", billID, err)
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBillPayments(payments))
}

// GetPayment godoc
// @Summary Get a payment
// @Tags bills
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} response.BillPaymentResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /payments/{id} [get]
func (h *BillHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetPayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBillPayment(p))
}

func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope[providerPayloadKey]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("provider_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}
