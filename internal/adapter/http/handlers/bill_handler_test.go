package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"meditrack/internal/adapter/http/handlers/mocks"
	"meditrack/internal/domain/entities"
	"meditrack/internal/domain/errs"
	"meditrack/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func newBillRouter(t *testing.T, mockMode bool) (*gin.Engine, *mocks.MockIBillingUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIBillingUseCase(ctrl)
	h := NewBillHandler(uc, mockMode)

	r := gin.New()
	r.GET("/v1/bills/:id", h.GetBill)
	r.POST("/v1/bills/:id/payments", h.PayBill)
	r.GET("/v1/bills/:id/payments", h.ListBillPayments)
	r.GET("/v1/payments/:id", h.GetPayment)
	return r, uc
}

func paymentFixture(id string, status entities.PaymentStatus) entities.BillPayment {
	return entities.BillPayment{
		ID:       id,
		BillID:   "BILL-1003",
		Amount:   decimal.RequireFromString("1180"),
		Currency: "INR",
		Date:     time.Date(2024, 5, 11, 11, 5, 0, 0, time.UTC),
		Status:   status,
	}
}

func TestBillHandler_PayBill(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		r, _ := newBillRouter(t, false)

		req := httptest.NewRequest(http.MethodPost, "/v1/bills/BILL-1003/payments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid payload in mock mode falls back to empty", func(t *testing.T) {
		r, uc := newBillRouter(t, true)
		uc.EXPECT().Pay(gomock.Any(), "BILL-1003", json.RawMessage("{}")).Return(paymentFixture("mock-1", entities.PaymentStatusApproved), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/bills/BILL-1003/payments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		r, uc := newBillRouter(t, false)
		uc.EXPECT().Pay(gomock.Any(), "BILL-1003", gomock.Any()).Return(entities.BillPayment{}, usecase.ErrBillAlreadyPaid)

		req := httptest.NewRequest(http.MethodPost, "/v1/bills/BILL-1003/payments", bytes.NewBufferString(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newBillRouter(t, false)
		uc.EXPECT().Pay(gomock.Any(), "BILL-1003", json.RawMessage(`{"payment_method_id":"pix"}`)).Return(paymentFixture("pay-1", entities.PaymentStatusApproved), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/bills/BILL-1003/payments", bytes.NewBufferString(`{"provider_payload":{"payment_method_id":"pix"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "pay-1" || body["amount"] != "1180.00" || body["status"] != "approved" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestBillHandler_Reads(t *testing.T) {
	t.Run("get bill not found", func(t *testing.T) {
		r, uc := newBillRouter(t, false)
		uc.EXPECT().GetBill(gomock.Any(), "BILL-9").Return(entities.Bill{}, errs.NotFound("bill", "BILL-9", usecase.ErrBillNotFound))

		req := httptest.NewRequest(http.MethodGet, "/v1/bills/BILL-9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("get bill", func(t *testing.T) {
		r, uc := newBillRouter(t, false)
		uc.EXPECT().GetBill(gomock.Any(), "BILL-1003").Return(entities.Bill{
			Entity:     entities.NewEntity("BILL-1003", time.Now()),
			BaseAmount: decimal.RequireFromString("1062"),
			TaxRate:    decimal.Zero,
			Currency:   "INR",
			Strategy:   "senior_discount",
			Status:     entities.BillStatusPaid,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/bills/BILL-1003", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusOK || body["amount_due"] != "1062.00" || body["status"] != "paid" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("list payments", func(t *testing.T) {
		r, uc := newBillRouter(t, false)
		uc.EXPECT().ListPayments(gomock.Any(), "BILL-1003").Return([]entities.BillPayment{
			paymentFixture("pay-1", entities.PaymentStatusRejected),
			paymentFixture("pay-2", entities.PaymentStatusApproved),
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/bills/BILL-1003/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || len(body) != 2 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("get payment not found", func(t *testing.T) {
		r, uc := newBillRouter(t, false)
		uc.EXPECT().GetPayment(gomock.Any(), "nope").Return(entities.BillPayment{}, errs.NotFound("bill payment", "nope", usecase.ErrBillPaymentNotFound))

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/nope", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestReadProviderPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	makeCtx := func(raw string) *gin.Context {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(raw))
		c.Request.Header.Set("Content-Type", "application/json")
		return c
	}

	ctxReadErr := makeCtx("{}")
	ctxReadErr.Request.Body = failingReadCloser{}
	if _, err := readProviderPayload(ctxReadErr); err == nil {
		t.Fatalf("expected read body error")
	}

	if _, err := readProviderPayload(makeCtx("{invalid")); err == nil {
		t.Fatalf("expected invalid json error")
	}

	payload, err := readProviderPayload(makeCtx("   "))
	if err != nil || string(payload) != "{}" {
		t.Fatalf("expected {}, got payload=%s err=%v", string(payload), err)
	}

	if _, err := readProviderPayload(makeCtx(`{"provider_payload":null}`)); err == nil {
		t.Fatalf("expected provider_payload empty error")
	}

	payload, err = readProviderPayload(makeCtx(`{"provider_payload":{"a":1}}`))
	if err != nil || string(payload) != `{"a":1}` {
		t.Fatalf("expected wrapped payload, got %s err=%v", payload, err)
	}

	payload, err = readProviderPayload(makeCtx(`{"payment_method_id":"pix"}`))
	if err != nil || string(payload) != `{"payment_method_id":"pix"}` {
		t.Fatalf("expected raw body payload, got %s err=%v", payload, err)
	}

	payload, err = readProviderPayload(makeCtx(`[1,2]`))
	if err != nil || string(payload) != `[1,2]` {
		t.Fatalf("expected non-object body passed through, got %s err=%v", payload, err)
	}
}
