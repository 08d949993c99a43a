package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"

	"meditrack/internal/domain/entities"
	"meditrack/internal/domain/errs"
	"meditrack/internal/domain/validator"
	"meditrack/internal/infrastructure/idgen"
	"meditrack/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var ErrDoctorNotFound = errors.New("doctor not found")

type DoctorInput struct {
	Name            string
	Age             int
	Phone           string
	Specialization  string
	ConsultationFee decimal.Decimal
}

// IDoctorUseCase manages the doctor registry.
type IDoctorUseCase interface {
	Add(ctx context.Context, in DoctorInput) (entities.Doctor, error)
	Update(ctx context.Context, id string, in DoctorInput) (entities.Doctor, error)
	GetByID(ctx context.Context, id string) (entities.Doctor, error)
	List(ctx context.Context) ([]entities.Doctor, error)
	Remove(ctx context.Context, id string) error
	FindBySpecialization(ctx context.Context, specialization string) ([]entities.Doctor, error)
	SearchByName(ctx context.Context, fragment string) ([]entities.Doctor, error)
	SortByFee(ctx context.Context) ([]entities.Doctor, error)
}

type DoctorUseCase struct {
	repo  interfaces.IDoctorRepository
	ids   interfaces.IIDIssuer
	clock Clock
}

var _ IDoctorUseCase = (*DoctorUseCase)(nil)

func NewDoctorUseCase(repo interfaces.IDoctorRepository, ids interfaces.IIDIssuer, clock Clock) *DoctorUseCase {
	return &DoctorUseCase{repo: repo, ids: ids, clock: clockOrDefault(clock)}
}

func (u *DoctorUseCase) Add(ctx context.Context, in DoctorInput) (entities.Doctor, error) {
	d, err := buildDoctor(in)
	if err != nil {
		log.Printf("[doctor][usecase] add rejected err=%v", err)
		return entities.Doctor{}, err
	}
	id, err := u.ids.NextID(idgen.PrefixDoctor)
	if err != nil {
		return entities.Doctor{}, err
	}
	d.Entity = entities.NewEntity(id, u.clock())

	saved, err := u.repo.Save(ctx, d)
	if err != nil {
		log.Printf("[doctor][usecase] save failed doctor_id=%s err=%v", id, err)
		return entities.Doctor{}, err
	}
	log.Printf("[doctor][usecase] added doctor_id=%s specialization=%s", saved.ID, saved.Specialization)
	return saved, nil
}

// Update replaces the mutable fields; ID and CreatedAt are kept.
func (u *DoctorUseCase) Update(ctx context.Context, id string, in DoctorInput) (entities.Doctor, error) {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Doctor{}, err
	}
	d, err := buildDoctor(in)
	if err != nil {
		return entities.Doctor{}, err
	}
	d.Entity = existing.Entity
	return u.repo.Save(ctx, d)
}

func (u *DoctorUseCase) GetByID(ctx context.Context, id string) (entities.Doctor, error) {
	id, err := validator.RequireNonBlank(id, "doctor_id")
	if err != nil {
		return entities.Doctor{}, err
	}
	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Doctor{}, err
	}
	if d.ID == "" {
		return entities.Doctor{}, errs.NotFound("doctor", id, ErrDoctorNotFound)
	}
	return d, nil
}

func (u *DoctorUseCase) List(ctx context.Context) ([]entities.Doctor, error) {
	return u.repo.List(ctx)
}

func (u *DoctorUseCase) Remove(ctx context.Context, id string) error {
	id, err := validator.RequireNonBlank(id, "doctor_id")
	if err != nil {
		return err
	}
	removed, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return errs.NotFound("doctor", id, ErrDoctorNotFound)
	}
	log.Printf("[doctor][usecase] removed doctor_id=%s", id)
	return nil
}

func (u *DoctorUseCase) FindBySpecialization(ctx context.Context, specialization string) ([]entities.Doctor, error) {
	spec, err := entities.ParseSpecialization(specialization)
	if err != nil {
		return nil, err
	}
	return u.repo.FindBySpecialization(ctx, spec)
}

func (u *DoctorUseCase) SearchByName(ctx context.Context, fragment string) ([]entities.Doctor, error) {
	if strings.TrimSpace(fragment) == "" {
		return u.repo.List(ctx)
	}
	return u.repo.SearchByName(ctx, fragment)
}

// SortByFee orders by ascending fee; equal fees keep registration order.
func (u *DoctorUseCase) SortByFee(ctx context.Context) ([]entities.Doctor, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].ConsultationFee.LessThan(all[j].ConsultationFee)
	})
	return all, nil
}

func buildDoctor(in DoctorInput) (entities.Doctor, error) {
	spec, err := entities.ParseSpecialization(in.Specialization)
	if err != nil {
		return entities.Doctor{}, err
	}
	d := entities.Doctor{
		Person:          entities.Person{Name: in.Name, Age: in.Age, Phone: in.Phone},
		Specialization:  spec,
		ConsultationFee: in.ConsultationFee,
	}
	if err := d.Validate(); err != nil {
		return entities.Doctor{}, err
	}
	return d, nil
}
