package recommendation

import (
	"testing"
	"time"

	"meditrack/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestRecommendSpecialization(t *testing.T) {
	cases := []struct {
		name      string
		symptoms  []string
		want      entities.Specialization
		wantScore int
	}{
		{"dermatology", []string{"rash", "itch"}, entities.SpecializationDermatology, 6},
		{"empty", nil, entities.SpecializationGeneralPhysician, 0},
		{"unknown", []string{"unknown-term"}, entities.SpecializationGeneralPhysician, 0},
		{"blank entries skipped", []string{"  ", ""}, entities.SpecializationGeneralPhysician, 0},
		{"normalized", []string{"  MIGRAINE  "}, entities.SpecializationNeurology, 3},
		{"general wins alone", []string{"fever", "cough"}, entities.SpecializationGeneralPhysician, 4},
		{"tie falls back to default", []string{"rash", "knee"}, entities.SpecializationGeneralPhysician, 3},
		{"cardiology beats general", []string{"fever", "chest pain"}, entities.SpecializationCardiology, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for i := 0; i < 20; i++ {
				got, score := Recommend(tc.symptoms)
				if got != tc.want || score != tc.wantScore {
					t.Fatalf("Recommend(%v) = %s/%d, want %s/%d", tc.symptoms, got, score, tc.want, tc.wantScore)
				}
			}
			if got := RecommendSpecialization(tc.symptoms); got != tc.want {
				t.Fatalf("RecommendSpecialization(%v) = %s, want %s", tc.symptoms, got, tc.want)
			}
		})
	}
}

func TestScoreOneSymptomFeedsSeveralRules(t *testing.T) {
	// "child ear pain" hits pediatrics and ENT.
	table := Score([]string{"child ear pain"})
	got := map[entities.Specialization]int{}
	for _, row := range table {
		got[row.Specialization] = row.Score
	}
	if got[entities.SpecializationPediatrics] != 3 || got[entities.SpecializationENT] != 3 {
		t.Fatalf("expected pediatrics and ENT to score 3, got %v", got)
	}
	if len(table) != len(entities.AllSpecializations()) {
		t.Fatalf("expected a row per specialization, got %d", len(table))
	}
	for i, s := range entities.AllSpecializations() {
		if table[i].Specialization != s {
			t.Fatalf("row %d is %s, want %s", i, table[i].Specialization, s)
		}
	}
}

func doctor(id string, spec entities.Specialization, fee int64) *entities.Doctor {
	return &entities.Doctor{
		Entity:          entities.Entity{ID: id},
		Specialization:  spec,
		ConsultationFee: decimal.NewFromInt(fee),
	}
}

func TestSuggestDoctor(t *testing.T) {
	doctors := []*entities.Doctor{
		doctor("DOC-1", entities.SpecializationCardiology, 100),
		doctor("DOC-2", entities.SpecializationDermatology, 700),
		doctor("DOC-3", entities.SpecializationDermatology, 500),
		nil,
		doctor("DOC-4", entities.SpecializationDermatology, 500),
	}

	for i := 0; i < 10; i++ {
		got, ok := SuggestDoctor(doctors, entities.SpecializationDermatology)
		if !ok || got.ID != "DOC-3" {
			t.Fatalf("expected DOC-3 on fee tie, got %+v", got)
		}
	}

	if _, ok := SuggestDoctor(doctors, entities.SpecializationNeurology); ok {
		t.Fatalf("expected no match for neurology")
	}
	if _, ok := SuggestDoctor(nil, entities.SpecializationDermatology); ok {
		t.Fatalf("expected no match for empty input")
	}
}

func TestSuggestSlots(t *testing.T) {
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	slots := SuggestSlots(date)
	if len(slots) != 13 {
		t.Fatalf("expected 13 slots, got %d", len(slots))
	}
	if !slots[0].Equal(time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected first slot %v", slots[0])
	}
	if !slots[12].Equal(time.Date(2024, 1, 1, 16, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected last slot %v", slots[12])
	}
	for i := 1; i < len(slots); i++ {
		if slots[i].Sub(slots[i-1]) != 30*time.Minute {
			t.Fatalf("slot %d is not 30 minutes after the previous one", i)
		}
	}

	again := SuggestSlots(date.Add(15 * time.Hour))
	for i := range slots {
		if !slots[i].Equal(again[i]) {
			t.Fatalf("slots differ on repeated call at %d", i)
		}
	}
}
