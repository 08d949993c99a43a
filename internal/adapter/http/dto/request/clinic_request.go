package request

import (
	"strings"

	"meditrack/internal/usecase"

	"github.com/shopspring/decimal"
)

// DoctorRequest is the payload for creating or replacing a doctor.
// Range checks are left to the domain so the error carries the field name.
type DoctorRequest struct {
	Name            string          `json:"name" binding:"required"`
	Age             int             `json:"age"`
	Phone           string          `json:"phone"`
	Specialization  string          `json:"specialization" binding:"required"`
	ConsultationFee decimal.Decimal `json:"consultation_fee"`
}

func (r DoctorRequest) ToInput() usecase.DoctorInput {
	return usecase.DoctorInput{
		Name:            r.Name,
		Age:             r.Age,
		Phone:           r.Phone,
		Specialization:  r.Specialization,
		ConsultationFee: r.ConsultationFee,
	}
}

type PatientRequest struct {
	Name      string   `json:"name" binding:"required"`
	Age       int      `json:"age"`
	Phone     string   `json:"phone"`
	Address   string   `json:"address"`
	Allergies []string `json:"allergies"`
}

func (r PatientRequest) ToInput() usecase.PatientInput {
	return usecase.PatientInput{
		Name:      r.Name,
		Age:       r.Age,
		Phone:     r.Phone,
		Address:   r.Address,
		Allergies: r.Allergies,
	}
}

type AppointmentRequest struct {
	DoctorID    string `json:"doctor_id" binding:"required"`
	PatientID   string `json:"patient_id" binding:"required"`
	ScheduledAt string `json:"scheduled_at" binding:"required" example:"2024-05-10 10:30"`
}

func (r AppointmentRequest) ToInput() usecase.AppointmentInput {
	return usecase.AppointmentInput{
		DoctorID:    strings.TrimSpace(r.DoctorID),
		PatientID:   strings.TrimSpace(r.PatientID),
		ScheduledAt: strings.TrimSpace(r.ScheduledAt),
	}
}

// BillRequest selects the pricing strategy. An empty body issues an itemized
// consultation bill at the default tax rate.
type BillRequest struct {
	Strategy string `json:"strategy" example:"senior_discount"`
}

// RecommendationRequest accepts symptoms either as a list or as a single
// comma separated description, or both.
type RecommendationRequest struct {
	Symptoms    []string `json:"symptoms"`
	Description string   `json:"description" example:"fever, cough"`
	Date        string   `json:"date" example:"2024-05-10"`
}

func (r RecommendationRequest) ResolveSymptoms() []string {
	out := make([]string, 0, len(r.Symptoms))
	for _, s := range r.Symptoms {
		if v := strings.TrimSpace(s); v != "" {
			out = append(out, v)
		}
	}
	for _, s := range strings.Split(r.Description, ",") {
		if v := strings.TrimSpace(s); v != "" {
			out = append(out, v)
		}
	}
	return out
}
