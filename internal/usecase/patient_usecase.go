package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"meditrack/internal/domain/entities"
	"meditrack/internal/domain/errs"
	"meditrack/internal/domain/validator"
	"meditrack/internal/infrastructure/idgen"
	"meditrack/internal/usecase/interfaces"
)

var ErrPatientNotFound = errors.New("patient not found")

type PatientInput struct {
	Name      string
	Age       int
	Phone     string
	Address   string
	Allergies []string
}

type IPatientUseCase interface {
	Add(ctx context.Context, in PatientInput) (entities.Patient, error)
	Update(ctx context.Context, id string, in PatientInput) (entities.Patient, error)
	GetByID(ctx context.Context, id string) (entities.Patient, error)
	List(ctx context.Context) ([]entities.Patient, error)
	Remove(ctx context.Context, id string) error
	SearchByName(ctx context.Context, fragment string) ([]entities.Patient, error)
	SearchByAge(ctx context.Context, age int) ([]entities.Patient, error)
}

type PatientUseCase struct {
	repo  interfaces.IPatientRepository
	ids   interfaces.IIDIssuer
	clock Clock
}

var _ IPatientUseCase = (*PatientUseCase)(nil)

func NewPatientUseCase(repo interfaces.IPatientRepository, ids interfaces.IIDIssuer, clock Clock) *PatientUseCase {
	return &PatientUseCase{repo: repo, ids: ids, clock: clockOrDefault(clock)}
}

func (u *PatientUseCase) Add(ctx context.Context, in PatientInput) (entities.Patient, error) {
	p, err := buildPatient(in)
	if err != nil {
		log.Printf("[patient][usecase] add rejected err=%v", err)
		return entities.Patient{}, err
	}
	id, err := u.ids.NextID(idgen.PrefixPatient)
	if err != nil {
		return entities.Patient{}, err
	}
	p.Entity = entities.NewEntity(id, u.clock())

	saved, err := u.repo.Save(ctx, p)
	if err != nil {
		log.Printf("[patient][usecase] save failed patient_id=%s err=%v", id, err)
		return entities.Patient{}, err
	}
	log.Printf("[patient][usecase] added patient_id=%s", saved.ID)
	return saved, nil
}

func (u *PatientUseCase) Update(ctx context.Context, id string, in PatientInput) (entities.Patient, error) {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Patient{}, err
	}
	p, err := buildPatient(in)
	if err != nil {
		return entities.Patient{}, err
	}
	p.Entity = existing.Entity
	return u.repo.Save(ctx, p)
}

func (u *PatientUseCase) GetByID(ctx context.Context, id string) (entities.Patient, error) {
	id, err := validator.RequireNonBlank(id, "patient_id")
	if err != nil {
		return entities.Patient{}, err
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Patient{}, err
	}
	if p.ID == "" {
		return entities.Patient{}, errs.NotFound("patient", id, ErrPatientNotFound)
	}
	return p, nil
}

func (u *PatientUseCase) List(ctx context.Context) ([]entities.Patient, error) {
	return u.repo.List(ctx)
}

func (u *PatientUseCase) Remove(ctx context.Context, id string) error {
	id, err := validator.RequireNonBlank(id, "patient_id")
	if err != nil {
		return err
	}
	removed, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return errs.NotFound("patient", id, ErrPatientNotFound)
	}
	log.Printf("[patient][usecase] removed patient_id=%s", id)
	return nil
}

func (u *PatientUseCase) SearchByName(ctx context.Context, fragment string) ([]entities.Patient, error) {
	if strings.TrimSpace(fragment) == "" {
		return u.repo.List(ctx)
	}
	return u.repo.SearchByName(ctx, fragment)
}

func (u *PatientUseCase) SearchByAge(ctx context.Context, age int) ([]entities.Patient, error) {
	if _, err := validator.RequireRangeInclusive(age, entities.MinAge, entities.MaxAge, "age"); err != nil {
		return nil, err
	}
	return u.repo.FindByAge(ctx, age)
}

func buildPatient(in PatientInput) (entities.Patient, error) {
	p := entities.Patient{
		Person: entities.Person{Name: in.Name, Age: in.Age, Phone: in.Phone},
	}
	if err := p.Validate(); err != nil {
		return entities.Patient{}, err
	}
	allergies := make([]string, 0, len(in.Allergies))
	for _, a := range in.Allergies {
		if a = strings.TrimSpace(a); a != "" {
			allergies = append(allergies, a)
		}
	}
	p.Profile = &entities.PatientProfile{Address: strings.TrimSpace(in.Address), Allergies: allergies}
	return p, nil
}
