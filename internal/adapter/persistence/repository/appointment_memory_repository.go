package repository

import (
	"context"

	"meditrack/internal/domain/entities"
	"meditrack/internal/usecase/interfaces"
)

type AppointmentMemoryRepository struct {
	store *lockedStore[entities.Appointment]
}

var _ interfaces.IAppointmentRepository = (*AppointmentMemoryRepository)(nil)

func NewAppointmentMemoryRepository() *AppointmentMemoryRepository {
	return &AppointmentMemoryRepository{store: newLockedStore((*entities.Appointment).Clone)}
}

func (r *AppointmentMemoryRepository) Save(_ context.Context, a entities.Appointment) (entities.Appointment, error) {
	if err := r.store.upsert(a.ID, a); err != nil {
		return entities.Appointment{}, err
	}
	return *a.Clone(), nil
}

func (r *AppointmentMemoryRepository) GetByID(_ context.Context, id string) (entities.Appointment, error) {
	return r.store.get(id), nil
}

func (r *AppointmentMemoryRepository) List(_ context.Context) ([]entities.Appointment, error) {
	return r.store.list(), nil
}

func (r *AppointmentMemoryRepository) ListByDoctorID(_ context.Context, doctorID string) ([]entities.Appointment, error) {
	return r.store.find(func(a *entities.Appointment) bool { return a.DoctorID() == doctorID }), nil
}

func (r *AppointmentMemoryRepository) ListByPatientID(_ context.Context, patientID string) ([]entities.Appointment, error) {
	return r.store.find(func(a *entities.Appointment) bool { return a.PatientID() == patientID }), nil
}
