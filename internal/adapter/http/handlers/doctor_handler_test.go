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
	"meditrack/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newDoctorRouter(t *testing.T) (*gin.Engine, *mocks.MockIDoctorUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIDoctorUseCase(ctrl)
	h := NewDoctorHandler(uc)

	r := gin.New()
	r.POST("/v1/doctors", h.CreateDoctor)
	r.GET("/v1/doctors", h.ListDoctors)
	r.GET("/v1/doctors/:id", h.GetDoctor)
	r.PUT("/v1/doctors/:id", h.UpdateDoctor)
	r.DELETE("/v1/doctors/:id", h.DeleteDoctor)
	return r, uc
}

func doctorFixture(id, name string, fee string) entities.Doctor {
	return entities.Doctor{
		Entity:          entities.NewEntity(id, time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)),
		Person:          entities.Person{Name: name, Age: 45},
		Specialization:  entities.SpecializationCardiology,
		ConsultationFee: decimal.RequireFromString(fee),
	}
}

func TestDoctorHandler_CreateDoctor(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		r, _ := newDoctorRouter(t)
		req := httptest.NewRequest(http.MethodPost, "/v1/doctors", bytes.NewBufferString(`{"age":40}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("domain validation error", func(t *testing.T) {
		r, uc := newDoctorRouter(t)
		uc.EXPECT().Add(gomock.Any(), gomock.Any()).Return(entities.Doctor{}, errs.Invalid("specialization", "unknown specialization %q", "astrology"))

		req := httptest.NewRequest(http.MethodPost, "/v1/doctors", bytes.NewBufferString(`{"name":"Ravi","specialization":"astrology","consultation_fee":100}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "VALIDATION_ERROR" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newDoctorRouter(t)
		uc.EXPECT().Add(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.DoctorInput) (entities.Doctor, error) {
			if in.Name != "Ravi" || !in.ConsultationFee.Equal(decimal.RequireFromString("1000.50")) {
				t.Fatalf("unexpected input %+v", in)
			}
			return doctorFixture("DOC-1000", "Ravi", "1000.5"), nil
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/doctors", bytes.NewBufferString(`{"name":"Ravi","age":45,"specialization":"cardiology","consultation_fee":"1000.50"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "DOC-1000" || body["consultation_fee"] != "1000.50" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestDoctorHandler_ListDoctors(t *testing.T) {
	cases := []struct {
		name  string
		query string
		setup func(uc *mocks.MockIDoctorUseCase)
	}{
		{"all", "", func(uc *mocks.MockIDoctorUseCase) {
			uc.EXPECT().List(gomock.Any()).Return([]entities.Doctor{doctorFixture("DOC-1", "A", "1")}, nil)
		}},
		{"by specialization", "?specialization=cardiology", func(uc *mocks.MockIDoctorUseCase) {
			uc.EXPECT().FindBySpecialization(gomock.Any(), "cardiology").Return([]entities.Doctor{doctorFixture("DOC-1", "A", "1")}, nil)
		}},
		{"by name", "?name=ra", func(uc *mocks.MockIDoctorUseCase) {
			uc.EXPECT().SearchByName(gomock.Any(), "ra").Return([]entities.Doctor{doctorFixture("DOC-1", "A", "1")}, nil)
		}},
		{"sorted by fee", "?sort=fee", func(uc *mocks.MockIDoctorUseCase) {
			uc.EXPECT().SortByFee(gomock.Any()).Return([]entities.Doctor{doctorFixture("DOC-1", "A", "1")}, nil)
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, uc := newDoctorRouter(t)
			tc.setup(uc)

			req := httptest.NewRequest(http.MethodGet, "/v1/doctors"+tc.query, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			var body []map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || len(body) != 1 {
				t.Fatalf("unexpected body: %s", w.Body.String())
			}
		})
	}

	t.Run("empty list renders as array", func(t *testing.T) {
		r, uc := newDoctorRouter(t)
		uc.EXPECT().List(gomock.Any()).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/doctors", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Body.String() != "[]" {
			t.Fatalf("expected [], got %s", w.Body.String())
		}
	})
}

func TestDoctorHandler_GetUpdateDelete(t *testing.T) {
	t.Run("get not found", func(t *testing.T) {
		r, uc := newDoctorRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "DOC-9").Return(entities.Doctor{}, errs.NotFound("doctor", "DOC-9", usecase.ErrDoctorNotFound))

		req := httptest.NewRequest(http.MethodGet, "/v1/doctors/DOC-9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("update success", func(t *testing.T) {
		r, uc := newDoctorRouter(t)
		uc.EXPECT().Update(gomock.Any(), "DOC-1", gomock.Any()).Return(doctorFixture("DOC-1", "Ravi K", "1200"), nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/doctors/DOC-1", bytes.NewBufferString(`{"name":"Ravi K","specialization":"cardiology","consultation_fee":1200}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		r, uc := newDoctorRouter(t)
		uc.EXPECT().Remove(gomock.Any(), "DOC-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/doctors/DOC-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
