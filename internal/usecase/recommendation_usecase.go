package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"meditrack/internal/domain/datetime"
	"meditrack/internal/domain/entities"
	"meditrack/internal/domain/recommendation"
	"meditrack/internal/infrastructure/metrics"
	"meditrack/internal/usecase/interfaces"
)

// Recommendation is the answer to one symptom query.
type Recommendation struct {
	Specialization entities.Specialization
	Score          int
	Scores         []recommendation.SpecializationScore
	Doctor         *entities.Doctor
	// Slots is filled only when a date was given and a doctor was found.
	Slots []time.Time
}

type IRecommendationUseCase interface {
	Recommend(ctx context.Context, symptoms []string, date string) (Recommendation, error)
	Slots(ctx context.Context, date string) ([]time.Time, error)
}

type RecommendationUseCase struct {
	doctors interfaces.IDoctorRepository
	metrics *metrics.ClinicMetrics
}

var _ IRecommendationUseCase = (*RecommendationUseCase)(nil)

func NewRecommendationUseCase(doctors interfaces.IDoctorRepository, m *metrics.ClinicMetrics) *RecommendationUseCase {
	return &RecommendationUseCase{doctors: doctors, metrics: m}
}

func (u *RecommendationUseCase) Recommend(ctx context.Context, symptoms []string, date string) (Recommendation, error) {
	var day time.Time
	withSlots := strings.TrimSpace(date) != ""
	if withSlots {
		var err error
		if day, err = datetime.ParseDate(date, "date"); err != nil {
			return Recommendation{}, err
		}
	}

	spec, score := recommendation.Recommend(symptoms)
	out := Recommendation{
		Specialization: spec,
		Score:          score,
		Scores:         recommendation.Score(symptoms),
	}

	candidates, err := u.doctors.FindBySpecialization(ctx, spec)
	if err != nil {
		return Recommendation{}, err
	}
	ptrs := make([]*entities.Doctor, len(candidates))
	for i := range candidates {
		ptrs[i] = &candidates[i]
	}
	if d, ok := recommendation.SuggestDoctor(ptrs, spec); ok {
		out.Doctor = d
		if withSlots {
			out.Slots = recommendation.SuggestSlots(day)
		}
	}

	u.metrics.ObserveRecommendation(string(spec), out.Doctor != nil)
	doctorID := ""
	if out.Doctor != nil {
		doctorID = out.Doctor.ID
	}
	log.Printf("[recommendation][usecase] symptoms=%d specialization=%s score=%d doctor_id=%q", len(symptoms), spec, score, doctorID)
	return out, nil
}

func (u *RecommendationUseCase) Slots(_ context.Context, date string) ([]time.Time, error) {
	day, err := datetime.ParseDate(date, "date")
	if err != nil {
		return nil, err
	}
	return recommendation.SuggestSlots(day), nil
}
