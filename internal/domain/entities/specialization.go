package entities

import (
	"strings"

	"meditrack/internal/domain/errs"
)

type Specialization string

const (
	SpecializationGeneralPhysician Specialization = "general_physician"
	SpecializationDermatology      Specialization = "dermatology"
	SpecializationCardiology       Specialization = "cardiology"
	SpecializationOrthopedics      Specialization = "orthopedics"
	SpecializationPediatrics       Specialization = "pediatrics"
	SpecializationNeurology        Specialization = "neurology"
	SpecializationENT              Specialization = "ent"
)

var allSpecializations = []Specialization{
	SpecializationGeneralPhysician,
	SpecializationDermatology,
	SpecializationCardiology,
	SpecializationOrthopedics,
	SpecializationPediatrics,
	SpecializationNeurology,
	SpecializationENT,
}

// AllSpecializations returns the closed set in declaration order.
func AllSpecializations() []Specialization {
	out := make([]Specialization, len(allSpecializations))
	copy(out, allSpecializations)
	return out
}

func (s Specialization) Valid() bool {
	for _, v := range allSpecializations {
		if v == s {
			return true
		}
	}
	return false
}

// ParseSpecialization accepts the canonical names case-insensitively,
// with either '_' or '-' or ' ' as the word separator.
func ParseSpecialization(raw string) (Specialization, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	v = strings.NewReplacer("-", "_", " ", "_").Replace(v)
	s := Specialization(v)
	if !s.Valid() {
		return "", errs.Invalid("specialization", "unknown value %q", raw)
	}
	return s, nil
}
