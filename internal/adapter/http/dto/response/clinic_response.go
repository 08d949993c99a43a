package response

import (
	"time"

	"meditrack/internal/domain/entities"
	"meditrack/internal/usecase"
)

type DoctorResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Age             int       `json:"age"`
	Phone           string    `json:"phone"`
	Specialization  string    `json:"specialization"`
	ConsultationFee string    `json:"consultation_fee" example:"1000.00"`
	CreatedAt       time.Time `json:"created_at"`
	Description     string    `json:"description"`
}

func FromDoctor(d entities.Doctor) DoctorResponse {
	return DoctorResponse{
		ID:              d.ID,
		Name:            d.Name,
		Age:             d.Age,
		Phone:           d.Phone,
		Specialization:  string(d.Specialization),
		ConsultationFee: d.ConsultationFee.StringFixed(entities.MoneyScale),
		CreatedAt:       d.CreatedAt,
		Description:     d.Describe(),
	}
}

func FromDoctors(list []entities.Doctor) []DoctorResponse {
	out := make([]DoctorResponse, 0, len(list))
	for _, d := range list {
		out = append(out, FromDoctor(d))
	}
	return out
}

type PatientResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Age         int       `json:"age"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	Allergies   []string  `json:"allergies"`
	CreatedAt   time.Time `json:"created_at"`
	Description string    `json:"description"`
}

func FromPatient(p entities.Patient) PatientResponse {
	res := PatientResponse{
		ID:          p.ID,
		Name:        p.Name,
		Age:         p.Age,
		Phone:       p.Phone,
		Allergies:   []string{},
		CreatedAt:   p.CreatedAt,
		Description: p.Describe(),
	}
	if p.Profile != nil {
		res.Address = p.Profile.Address
		res.Allergies = append(res.Allergies, p.Profile.Allergies...)
	}
	return res
}

func FromPatients(list []entities.Patient) []PatientResponse {
	out := make([]PatientResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromPatient(p))
	}
	return out
}

type AppointmentResponse struct {
	ID          string    `json:"id"`
	DoctorID    string    `json:"doctor_id"`
	DoctorName  string    `json:"doctor_name,omitempty"`
	PatientID   string    `json:"patient_id"`
	PatientName string    `json:"patient_name,omitempty"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromAppointment(a entities.Appointment) AppointmentResponse {
	res := AppointmentResponse{
		ID:          a.ID,
		DoctorID:    a.DoctorID(),
		PatientID:   a.PatientID(),
		ScheduledAt: a.ScheduledAt,
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt,
	}
	if a.Doctor != nil {
		res.DoctorName = a.Doctor.Name
	}
	if a.Patient != nil {
		res.PatientName = a.Patient.Name
	}
	return res
}

func FromAppointments(list []entities.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(list))
	for _, a := range list {
		out = append(out, FromAppointment(a))
	}
	return out
}

type RecommendationScoreResponse struct {
	Specialization string `json:"specialization"`
	Score          int    `json:"score"`
}

type RecommendationResponse struct {
	Specialization string                        `json:"specialization"`
	Score          int                           `json:"score"`
	Scores         []RecommendationScoreResponse `json:"scores"`
	Doctor         *DoctorResponse               `json:"doctor,omitempty"`
	Slots          []time.Time                   `json:"slots,omitempty"`
}

func FromRecommendation(r usecase.Recommendation) RecommendationResponse {
	res := RecommendationResponse{
		Specialization: string(r.Specialization),
		Score:          r.Score,
		Scores:         make([]RecommendationScoreResponse, 0, len(r.Scores)),
		Slots:          r.Slots,
	}
	for _, s := range r.Scores {
		res.Scores = append(res.Scores, RecommendationScoreResponse{Specialization: string(s.Specialization), Score: s.Score})
	}
	if r.Doctor != nil {
		d := FromDoctor(*r.Doctor)
		res.Doctor = &d
	}
	return res
}

type SlotsResponse struct {
	Date  string      `json:"date" example:"2024-05-10"`
	Slots []time.Time `json:"slots"`
}
