package interfaces

import (
	"context"

	"meditrack/internal/domain/entities"
)

type IAppointmentRepository interface {
	Save(ctx context.Context, a entities.Appointment) (entities.Appointment, error)
	GetByID(ctx context.Context, id string) (entities.Appointment, error)
	List(ctx context.Context) ([]entities.Appointment, error)
	ListByDoctorID(ctx context.Context, doctorID string) ([]entities.Appointment, error)
	ListByPatientID(ctx context.Context, patientID string) ([]entities.Appointment, error)
}
