package repository

import (
	"context"
	"strings"

	"meditrack/internal/domain/entities"
	"meditrack/internal/usecase/interfaces"
)

type DoctorMemoryRepository struct {
	store *lockedStore[entities.Doctor]
}

var _ interfaces.IDoctorRepository = (*DoctorMemoryRepository)(nil)

func NewDoctorMemoryRepository() *DoctorMemoryRepository {
	return &DoctorMemoryRepository{store: newLockedStore((*entities.Doctor).Clone)}
}

func (r *DoctorMemoryRepository) Save(_ context.Context, d entities.Doctor) (entities.Doctor, error) {
	if err := r.store.upsert(d.ID, d); err != nil {
		return entities.Doctor{}, err
	}
	return d, nil
}

func (r *DoctorMemoryRepository) GetByID(_ context.Context, id string) (entities.Doctor, error) {
	return r.store.get(id), nil
}

func (r *DoctorMemoryRepository) List(_ context.Context) ([]entities.Doctor, error) {
	return r.store.list(), nil
}

func (r *DoctorMemoryRepository) Delete(_ context.Context, id string) (bool, error) {
	return r.store.remove(id), nil
}

func (r *DoctorMemoryRepository) FindBySpecialization(_ context.Context, spec entities.Specialization) ([]entities.Doctor, error) {
	return r.store.find(func(d *entities.Doctor) bool { return d.Specialization == spec }), nil
}

// SearchByName matches case-insensitively on a name fragment.
func (r *DoctorMemoryRepository) SearchByName(_ context.Context, fragment string) ([]entities.Doctor, error) {
	needle := strings.ToLower(strings.TrimSpace(fragment))
	return r.store.find(func(d *entities.Doctor) bool {
		return strings.Contains(strings.ToLower(d.Name), needle)
	}), nil
}
