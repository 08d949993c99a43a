package interfaces

import (
	"context"

	"meditrack/internal/domain/entities"
)

// IDoctorRepository stores doctors in first-registration order.
//
// GetByID returns a zero Doctor (ID == "") and a nil error when nothing matches.
type IDoctorRepository interface {
	Save(ctx context.Context, d entities.Doctor) (entities.Doctor, error)
	GetByID(ctx context.Context, id string) (entities.Doctor, error)
	List(ctx context.Context) ([]entities.Doctor, error)
	Delete(ctx context.Context, id string) (bool, error)
	FindBySpecialization(ctx context.Context, spec entities.Specialization) ([]entities.Doctor, error)
	SearchByName(ctx context.Context, fragment string) ([]entities.Doctor, error)
}
