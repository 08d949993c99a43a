package usecase

import (
	"context"
	"errors"
	"log"

	"meditrack/internal/domain/datetime"
	"meditrack/internal/domain/entities"
	"meditrack/internal/domain/errs"
	"meditrack/internal/domain/validator"
	"meditrack/internal/infrastructure/idgen"
	"meditrack/internal/infrastructure/metrics"
	"meditrack/internal/usecase/interfaces"
)

var ErrAppointmentNotFound = errors.New("appointment not found")

type AppointmentInput struct {
	DoctorID    string
	PatientID   string
	ScheduledAt string // yyyy-MM-dd HH:mm
}

// IAppointmentUseCase books and cancels appointments. Double-booking is not checked.
type IAppointmentUseCase interface {
	Create(ctx context.Context, in AppointmentInput) (entities.Appointment, error)
	GetByID(ctx context.Context, id string) (entities.Appointment, error)
	List(ctx context.Context) ([]entities.Appointment, error)
	ListByDoctorID(ctx context.Context, doctorID string) ([]entities.Appointment, error)
	ListByPatientID(ctx context.Context, patientID string) ([]entities.Appointment, error)
	Cancel(ctx context.Context, id string) (entities.Appointment, error)
}

type AppointmentUseCase struct {
	repo     interfaces.IAppointmentRepository
	doctors  interfaces.IDoctorRepository
	patients interfaces.IPatientRepository
	ids      interfaces.IIDIssuer
	metrics  *metrics.ClinicMetrics
	clock    Clock
}

var _ IAppointmentUseCase = (*AppointmentUseCase)(nil)

func NewAppointmentUseCase(repo interfaces.IAppointmentRepository, doctors interfaces.IDoctorRepository, patients interfaces.IPatientRepository, ids interfaces.IIDIssuer, m *metrics.ClinicMetrics, clock Clock) *AppointmentUseCase {
	return &AppointmentUseCase{repo: repo, doctors: doctors, patients: patients, ids: ids, metrics: m, clock: clockOrDefault(clock)}
}

func (u *AppointmentUseCase) Create(ctx context.Context, in AppointmentInput) (entities.Appointment, error) {
	log.Printf("[appointment][usecase] create start doctor_id=%q patient_id=%q scheduled_at=%q", in.DoctorID, in.PatientID, in.ScheduledAt)
	doctorID, err := validator.RequireNonBlank(in.DoctorID, "doctor_id")
	if err != nil {
		return entities.Appointment{}, err
	}
	patientID, err := validator.RequireNonBlank(in.PatientID, "patient_id")
	if err != nil {
		return entities.Appointment{}, err
	}
	scheduledAt, err := datetime.ParseDateTime(in.ScheduledAt, "scheduled_at")
	if err != nil {
		return entities.Appointment{}, err
	}

	doctor, err := u.doctors.GetByID(ctx, doctorID)
	if err != nil {
		return entities.Appointment{}, err
	}
	if doctor.ID == "" {
		log.Printf("[appointment][usecase] doctor not found doctor_id=%s", doctorID)
		return entities.Appointment{}, errs.NotFound("doctor", doctorID, ErrDoctorNotFound)
	}
	patient, err := u.patients.GetByID(ctx, patientID)
	if err != nil {
		return entities.Appointment{}, err
	}
	if patient.ID == "" {
		log.Printf("[appointment][usecase] patient not found patient_id=%s", patientID)
		return entities.Appointment{}, errs.NotFound("patient", patientID, ErrPatientNotFound)
	}

	id, err := u.ids.NextID(idgen.PrefixAppointment)
	if err != nil {
		return entities.Appointment{}, err
	}
	a := entities.Appointment{
		Entity:      entities.NewEntity(id, u.clock()),
		Doctor:      &doctor,
		Patient:     &patient,
		ScheduledAt: scheduledAt,
		Status:      entities.AppointmentStatusConfirmed,
	}
	saved, err := u.repo.Save(ctx, a)
	if err != nil {
		log.Printf("[appointment][usecase] save failed appointment_id=%s err=%v", id, err)
		return entities.Appointment{}, err
	}
	u.metrics.ObserveAppointment(string(saved.Status))
	log.Printf("[appointment][usecase] create success appointment_id=%s doctor_id=%s patient_id=%s", saved.ID, doctorID, patientID)
	return saved, nil
}

func (u *AppointmentUseCase) GetByID(ctx context.Context, id string) (entities.Appointment, error) {
	id, err := validator.RequireNonBlank(id, "appointment_id")
	if err != nil {
		return entities.Appointment{}, err
	}
	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Appointment{}, err
	}
	if a.ID == "" {
		return entities.Appointment{}, errs.NotFound("appointment", id, ErrAppointmentNotFound)
	}
	return a, nil
}

func (u *AppointmentUseCase) List(ctx context.Context) ([]entities.Appointment, error) {
	return u.repo.List(ctx)
}

func (u *AppointmentUseCase) ListByDoctorID(ctx context.Context, doctorID string) ([]entities.Appointment, error) {
	doctorID, err := validator.RequireNonBlank(doctorID, "doctor_id")
	if err != nil {
		return nil, err
	}
	return u.repo.ListByDoctorID(ctx, doctorID)
}

func (u *AppointmentUseCase) ListByPatientID(ctx context.Context, patientID string) ([]entities.Appointment, error) {
	patientID, err := validator.RequireNonBlank(patientID, "patient_id")
	if err != nil {
		return nil, err
	}
	return u.repo.ListByPatientID(ctx, patientID)
}

// Cancel marks the appointment cancelled. Cancelling twice is a no-op.
func (u *AppointmentUseCase) Cancel(ctx context.Context, id string) (entities.Appointment, error) {
	a, err := u.GetByID(ctx, id)
	if err != nil {
		log.Printf("[appointment][usecase] cancel failed appointment_id=%q err=%v", id, err)
		return entities.Appointment{}, err
	}
	if a.Status == entities.AppointmentStatusCancelled {
		return a, nil
	}
	a.Status = entities.AppointmentStatusCancelled
	saved, err := u.repo.Save(ctx, a)
	if err != nil {
		return entities.Appointment{}, err
	}
	u.metrics.ObserveAppointment(string(saved.Status))
	log.Printf("[appointment][usecase] cancelled appointment_id=%s", saved.ID)
	return saved, nil
}
