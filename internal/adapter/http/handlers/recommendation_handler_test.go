package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"meditrack/internal/adapter/http/handlers/mocks"
	"meditrack/internal/domain/entities"
	"meditrack/internal/domain/errs"
	"meditrack/internal/domain/recommendation"
	"meditrack/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newRecommendationRouter(t *testing.T) (*gin.Engine, *mocks.MockIRecommendationUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIRecommendationUseCase(ctrl)
	h := NewRecommendationHandler(uc)

	r := gin.New()
	r.POST("/v1/recommendations", h.Recommend)
	r.GET("/v1/recommendations/slots", h.Slots)
	r.GET("/v1/ping", Ping)
	return r, uc
}

func TestRecommendationHandler_Recommend(t *testing.T) {
	t.Run("symptoms from list and description", func(t *testing.T) {
		r, uc := newRecommendationRouter(t)
		d := doctorFixture("DOC-1000", "Ravi", "1000")
		uc.EXPECT().Recommend(gomock.Any(), []string{"chest pain", "palpitations"}, "2024-05-10").Return(usecase.Recommendation{
			Specialization: entities.SpecializationCardiology,
			Score:          2,
			Scores:         []recommendation.SpecializationScore{{Specialization: entities.SpecializationCardiology, Score: 2}},
			Doctor:         &d,
			Slots:          []time.Time{time.Date(2024, 5, 10, 10, 0, 0, 0, time.UTC)},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/recommendations", bytes.NewBufferString(`{"symptoms":["chest pain"],"description":"palpitations","date":"2024-05-10"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["specialization"] != "cardiology" || body["doctor"] == nil {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("bad date", func(t *testing.T) {
		r, uc := newRecommendationRouter(t)
		uc.EXPECT().Recommend(gomock.Any(), []string{"rash"}, "10/05/2024").Return(usecase.Recommendation{}, errs.Invalid("date", "must match yyyy-MM-dd"))

		req := httptest.NewRequest(http.MethodPost, "/v1/recommendations", bytes.NewBufferString(`{"symptoms":["rash"],"date":"10/05/2024"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestRecommendationHandler_Slots(t *testing.T) {
	r, uc := newRecommendationRouter(t)
	slots := []time.Time{
		time.Date(2024, 5, 10, 10, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 10, 10, 30, 0, 0, time.UTC),
	}
	uc.EXPECT().Slots(gomock.Any(), "2024-05-10").Return(slots, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/recommendations/slots?date=2024-05-10", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Date  string      `json:"date"`
		Slots []time.Time `json:"slots"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body.Date != "2024-05-10" || len(body.Slots) != 2 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestPing(t *testing.T) {
	r, _ := newRecommendationRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK || w.Body.String() != `{"message":"pong"}` {
		t.Fatalf("unexpected ping response %d %s", w.Code, w.Body.String())
	}
}
