package repository

import (
	"context"
	"strings"

	"meditrack/internal/domain/entities"
	"meditrack/internal/usecase/interfaces"
)

type PatientMemoryRepository struct {
	store *lockedStore[entities.Patient]
}

var _ interfaces.IPatientRepository = (*PatientMemoryRepository)(nil)

func NewPatientMemoryRepository() *PatientMemoryRepository {
	return &PatientMemoryRepository{store: newLockedStore((*entities.Patient).Clone)}
}

func (r *PatientMemoryRepository) Save(_ context.Context, p entities.Patient) (entities.Patient, error) {
	if err := r.store.upsert(p.ID, p); err != nil {
		return entities.Patient{}, err
	}
	return *p.Clone(), nil
}

func (r *PatientMemoryRepository) GetByID(_ context.Context, id string) (entities.Patient, error) {
	return r.store.get(id), nil
}

func (r *PatientMemoryRepository) List(_ context.Context) ([]entities.Patient, error) {
	return r.store.list(), nil
}

func (r *PatientMemoryRepository) Delete(_ context.Context, id string) (bool, error) {
	return r.store.remove(id), nil
}

func (r *PatientMemoryRepository) SearchByName(_ context.Context, fragment string) ([]entities.Patient, error) {
	needle := strings.ToLower(strings.TrimSpace(fragment))
	return r.store.find(func(p *entities.Patient) bool {
		return strings.Contains(strings.ToLower(p.Name), needle)
	}), nil
}

func (r *PatientMemoryRepository) FindByAge(_ context.Context, age int) ([]entities.Patient, error) {
	return r.store.find(func(p *entities.Patient) bool { return p.Age == age }), nil
}
