package entities

import (
	"fmt"
	"time"

	"meditrack/internal/domain/datetime"
)

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment links a doctor and a patient at a point in time.
type Appointment struct {
	Entity
	Doctor      *Doctor           `json:"doctor"`
	Patient     *Patient          `json:"patient"`
	ScheduledAt time.Time         `json:"scheduled_at"`
	Status      AppointmentStatus `json:"status"`
}

// Clone shares the doctor reference and deep-copies the patient.
func (a *Appointment) Clone() *Appointment {
	if a == nil {
		return nil
	}
	c := *a
	c.Patient = a.Patient.Clone()
	return &c
}

func (a *Appointment) DoctorID() string {
	if a.Doctor == nil {
		return ""
	}
	return a.Doctor.ID
}

func (a *Appointment) PatientID() string {
	if a.Patient == nil {
		return ""
	}
	return a.Patient.ID
}

func (a *Appointment) Describe() string {
	return describe("Appointment", a.Entity, fmt.Sprintf("doctor=%s, patient=%s, scheduledAt=%s, status=%s",
		a.DoctorID(), a.PatientID(), datetime.FormatDateTime(a.ScheduledAt), a.Status))
}
