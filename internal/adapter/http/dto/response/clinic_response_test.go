package response

import (
	"strings"
	"testing"
	"time"

	"meditrack/internal/domain/entities"
	"meditrack/internal/domain/recommendation"
	"meditrack/internal/usecase"

	"github.com/shopspring/decimal"
)

var createdAt = time.Date(2024, 5, 10, 9, 15, 0, 0, time.UTC)

func sampleDoctor() entities.Doctor {
	return entities.Doctor{
		Entity:          entities.NewEntity("DOC-1000", createdAt),
		Person:          entities.Person{Name: "Ravi", Age: 45, Phone: "999"},
		Specialization:  entities.SpecializationCardiology,
		ConsultationFee: decimal.RequireFromString("1000"),
	}
}

func TestFromDoctor(t *testing.T) {
	res := FromDoctor(sampleDoctor())
	if res.ID != "DOC-1000" || res.ConsultationFee != "1000.00" || res.Specialization != "cardiology" {
		t.Fatalf("unexpected doctor response: %+v", res)
	}
	if !strings.HasPrefix(res.Description, "Doctor { id=DOC-1000, createdAt=2024-05-10 09:15") {
		t.Fatalf("unexpected description: %s", res.Description)
	}
	if got := FromDoctors(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", got)
	}
}

func TestFromPatient(t *testing.T) {
	p := entities.Patient{
		Entity:  entities.NewEntity("PAT-1001", createdAt),
		Person:  entities.Person{Name: "Asha", Age: 30},
		Profile: &entities.PatientProfile{Address: "MG Road", Allergies: []string{"dust"}},
	}
	res := FromPatient(p)
	if res.Address != "MG Road" || len(res.Allergies) != 1 || res.Allergies[0] != "dust" {
		t.Fatalf("unexpected patient response: %+v", res)
	}

	res.Allergies[0] = "pollen"
	if p.Profile.Allergies[0] != "dust" {
		t.Fatalf("response must not alias the patient profile")
	}

	bare := FromPatient(entities.Patient{Entity: entities.NewEntity("PAT-1", createdAt)})
	if bare.Allergies == nil || bare.Address != "" {
		t.Fatalf("unexpected bare patient response: %+v", bare)
	}
}

func TestFromAppointment(t *testing.T) {
	d := sampleDoctor()
	a := entities.Appointment{
		Entity:      entities.NewEntity("APT-1002", createdAt),
		Doctor:      &d,
		Patient:     &entities.Patient{Entity: entities.NewEntity("PAT-1001", createdAt), Person: entities.Person{Name: "Asha"}},
		ScheduledAt: createdAt.Add(time.Hour),
		Status:      entities.AppointmentStatusConfirmed,
	}
	res := FromAppointment(a)
	if res.DoctorID != "DOC-1000" || res.PatientID != "PAT-1001" || res.DoctorName != "Ravi" || res.PatientName != "Asha" {
		t.Fatalf("unexpected appointment response: %+v", res)
	}
	if res.Status != "confirmed" || !res.ScheduledAt.Equal(a.ScheduledAt) {
		t.Fatalf("unexpected appointment response: %+v", res)
	}
}

func TestFromRecommendation(t *testing.T) {
	d := sampleDoctor()
	r := usecase.Recommendation{
		Specialization: entities.SpecializationCardiology,
		Score:          2,
		Scores:         []recommendation.SpecializationScore{{Specialization: entities.SpecializationCardiology, Score: 2}},
		Doctor:         &d,
		Slots:          []time.Time{createdAt},
	}
	res := FromRecommendation(r)
	if res.Specialization != "cardiology" || res.Score != 2 || len(res.Scores) != 1 || len(res.Slots) != 1 {
		t.Fatalf("unexpected recommendation response: %+v", res)
	}
	if res.Doctor == nil || res.Doctor.ID != "DOC-1000" {
		t.Fatalf("expected doctor in response, got %+v", res.Doctor)
	}

	empty := FromRecommendation(usecase.Recommendation{Specialization: recommendation.DefaultSpecialization})
	if empty.Doctor != nil || empty.Scores == nil {
		t.Fatalf("unexpected empty recommendation response: %+v", empty)
	}
}
