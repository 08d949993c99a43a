package interfaces

import (
	"context"

	"meditrack/internal/domain/entities"
)

// IPatientRepository stores patients. GetByID follows the zero-value
// not-found convention of IDoctorRepository.
type IPatientRepository interface {
	Save(ctx context.Context, p entities.Patient) (entities.Patient, error)
	GetByID(ctx context.Context, id string) (entities.Patient, error)
	List(ctx context.Context) ([]entities.Patient, error)
	Delete(ctx context.Context, id string) (bool, error)
	SearchByName(ctx context.Context, fragment string) ([]entities.Patient, error)
	FindByAge(ctx context.Context, age int) ([]entities.Patient, error)
}
