// Package recommendation maps free-text symptoms to a specialization, picks
// the cheapest matching doctor and lists the day's appointment slots.
//
// Matching is keyword containment, not language understanding.
package recommendation

import (
	"strings"
	"time"

	"meditrack/internal/domain/entities"
)

type rule struct {
	specialization entities.Specialization
	weight         int
	keywords       []string
}

// Rules run in specialization declaration order.
var rules = []rule{
	{entities.SpecializationGeneralPhysician, 2, []string{"fever", "cold", "cough", "flu", "body ache"}},
	{entities.SpecializationDermatology, 3, []string{"rash", "acne", "itch", "eczema", "psoriasis"}},
	{entities.SpecializationCardiology, 3, []string{"chest pain", "palpitation", "bp", "blood pressure", "hypertension"}},
	{entities.SpecializationOrthopedics, 3, []string{"joint pain", "knee", "back pain", "fracture", "sprain"}},
	{entities.SpecializationPediatrics, 3, []string{"child", "pediatric", "newborn", "vaccination"}},
	{entities.SpecializationNeurology, 3, []string{"headache", "migraine", "seizure", "numbness", "stroke"}},
	{entities.SpecializationENT, 3, []string{"ear", "throat", "nose", "sinus", "tonsil"}},
}

// DefaultSpecialization is returned when no single specialization leads.
const DefaultSpecialization = entities.SpecializationGeneralPhysician

// SpecializationScore is one row of a score table.
type SpecializationScore struct {
	Specialization entities.Specialization `json:"specialization"`
	Score          int                     `json:"score"`
}

// Score builds a fresh score table, one row per specialization in declared
// order. A symptom adds a rule's weight once when it contains any of the
// rule's keywords, and may feed several rules.
func Score(symptoms []string) []SpecializationScore {
	table := make([]SpecializationScore, len(rules))
	for i, r := range rules {
		table[i].Specialization = r.specialization
	}
	for _, raw := range symptoms {
		s := strings.ToLower(strings.TrimSpace(raw))
		if s == "" {
			continue
		}
		for i, r := range rules {
			if containsAny(s, r.keywords) {
				table[i].Score += r.weight
			}
		}
	}
	return table
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// RecommendSpecialization returns the single top-scoring specialization, or
// DefaultSpecialization on any tie at the top (including all zeros).
func RecommendSpecialization(symptoms []string) entities.Specialization {
	s, _ := Recommend(symptoms)
	return s
}

// Recommend is RecommendSpecialization plus the winning score.
func Recommend(symptoms []string) (entities.Specialization, int) {
	best, bestScore, leaders := DefaultSpecialization, 0, 0
	for _, row := range Score(symptoms) {
		switch {
		case row.Score > bestScore:
			best, bestScore, leaders = row.Specialization, row.Score, 1
		case row.Score == bestScore:
			leaders++
		}
	}
	if bestScore == 0 || leaders > 1 {
		return DefaultSpecialization, bestScore
	}
	return best, bestScore
}

// SuggestDoctor returns the cheapest doctor with exactly this specialization.
// On equal fees the earliest in doctors wins.
func SuggestDoctor(doctors []*entities.Doctor, spec entities.Specialization) (*entities.Doctor, bool) {
	var best *entities.Doctor
	for _, d := range doctors {
		if d == nil || d.Specialization != spec {
			continue
		}
		if best == nil || d.ConsultationFee.LessThan(best.ConsultationFee) {
			best = d
		}
	}
	return best, best != nil
}

const (
	slotStartHour = 10
	slotEndHour   = 16
	SlotStep      = 30 * time.Minute
)

// SuggestSlots returns 10:00 to 16:00 inclusive on date's calendar day, every
// 30 minutes, in date's location.
func SuggestSlots(date time.Time) []time.Time {
	y, m, d := date.Date()
	start := time.Date(y, m, d, slotStartHour, 0, 0, 0, date.Location())
	end := time.Date(y, m, d, slotEndHour, 0, 0, 0, date.Location())

	slots := make([]time.Time, 0, int(end.Sub(start)/SlotStep)+1)
	for t := start; !t.After(end); t = t.Add(SlotStep) {
		slots = append(slots, t)
	}
	return slots
}
