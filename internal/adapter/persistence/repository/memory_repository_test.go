package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"meditrack/internal/domain/entities"
	"meditrack/internal/domain/errs"

	"github.com/shopspring/decimal"
)

func newDoctor(id, name string, spec entities.Specialization, fee int64) entities.Doctor {
	return entities.Doctor{
		Entity:          entities.NewEntity(id, time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)),
		Person:          entities.Person{Name: name, Age: 40, Phone: "1"},
		Specialization:  spec,
		ConsultationFee: decimal.NewFromInt(fee),
	}
}

func TestDoctorMemoryRepository(t *testing.T) {
	ctx := context.Background()
	r := NewDoctorMemoryRepository()

	_, _ = r.Save(ctx, newDoctor("DOC-1", "Anita Rao", entities.SpecializationDermatology, 500))
	_, _ = r.Save(ctx, newDoctor("DOC-2", "Vikram Shah", entities.SpecializationCardiology, 900))
	_, _ = r.Save(ctx, newDoctor("DOC-3", "Ravi Rao", entities.SpecializationDermatology, 400))

	t.Run("not found returns zero value", func(t *testing.T) {
		d, err := r.GetByID(ctx, "DOC-404")
		if err != nil || d.ID != "" {
			t.Fatalf("expected zero doctor, got %+v err=%v", d, err)
		}
	})

	t.Run("update keeps position", func(t *testing.T) {
		updated := newDoctor("DOC-1", "Anita Rao", entities.SpecializationDermatology, 650)
		_, _ = r.Save(ctx, updated)
		all, _ := r.List(ctx)
		if len(all) != 3 || all[0].ID != "DOC-1" || all[0].ConsultationFee.IntPart() != 650 {
			t.Fatalf("unexpected list %+v", all)
		}
	})

	t.Run("filters", func(t *testing.T) {
		derm, _ := r.FindBySpecialization(ctx, entities.SpecializationDermatology)
		if len(derm) != 2 || derm[0].ID != "DOC-1" || derm[1].ID != "DOC-3" {
			t.Fatalf("unexpected dermatology list %+v", derm)
		}
		rao, _ := r.SearchByName(ctx, " rao")
		if len(rao) != 2 {
			t.Fatalf("expected 2 name matches, got %d", len(rao))
		}
	})

	t.Run("blank id rejected", func(t *testing.T) {
		_, err := r.Save(ctx, newDoctor("", "x", entities.SpecializationENT, 1))
		if !errors.Is(err, errs.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		ok, _ := r.Delete(ctx, "DOC-2")
		if !ok {
			t.Fatalf("expected delete to report true")
		}
		ok, _ = r.Delete(ctx, "DOC-2")
		if ok {
			t.Fatalf("expected second delete to report false")
		}
	})
}

func TestPatientMemoryRepositoryIsolation(t *testing.T) {
	ctx := context.Background()
	r := NewPatientMemoryRepository()
	p := entities.Patient{
		Entity:  entities.NewEntity("PAT-1", time.Now()),
		Person:  entities.Person{Name: "Asha", Age: 30, Phone: "1"},
		Profile: &entities.PatientProfile{Address: "Pune", Allergies: []string{"dust"}},
	}
	_, _ = r.Save(ctx, p)
	p.Profile.Allergies[0] = "changed"

	got, _ := r.GetByID(ctx, "PAT-1")
	if got.Profile.Allergies[0] != "dust" {
		t.Fatalf("caller mutation leaked into repository: %+v", got.Profile)
	}
	got.Profile.Address = "elsewhere"
	again, _ := r.GetByID(ctx, "PAT-1")
	if again.Profile.Address != "Pune" {
		t.Fatalf("read copy mutation leaked into repository")
	}

	byAge, _ := r.FindByAge(ctx, 30)
	byName, _ := r.SearchByName(ctx, "ASH")
	if len(byAge) != 1 || len(byName) != 1 {
		t.Fatalf("expected one match each, got %d/%d", len(byAge), len(byName))
	}
}

func TestAppointmentMemoryRepositoryFilters(t *testing.T) {
	ctx := context.Background()
	r := NewAppointmentMemoryRepository()
	d1 := newDoctor("DOC-1", "A", entities.SpecializationENT, 1)
	d2 := newDoctor("DOC-2", "B", entities.SpecializationENT, 1)
	p := &entities.Patient{Entity: entities.NewEntity("PAT-1", time.Now())}

	_, _ = r.Save(ctx, entities.Appointment{Entity: entities.NewEntity("APT-1", time.Now()), Doctor: &d1, Patient: p})
	_, _ = r.Save(ctx, entities.Appointment{Entity: entities.NewEntity("APT-2", time.Now()), Doctor: &d2, Patient: p})

	byDoc, _ := r.ListByDoctorID(ctx, "DOC-2")
	if len(byDoc) != 1 || byDoc[0].ID != "APT-2" {
		t.Fatalf("unexpected doctor filter %+v", byDoc)
	}
	byPat, _ := r.ListByPatientID(ctx, "PAT-1")
	if len(byPat) != 2 {
		t.Fatalf("expected 2 appointments for patient, got %d", len(byPat))
	}
}

func TestBillPaymentMemoryRepositoryCreateOnce(t *testing.T) {
	ctx := context.Background()
	r := NewBillPaymentMemoryRepository()
	p := entities.BillPayment{ID: "pay-1", BillID: "BILL-1"}
	if _, err := r.Create(ctx, p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := r.Create(ctx, p); !errors.Is(err, ErrPaymentAlreadyExists) {
		t.Fatalf("expected ErrPaymentAlreadyExists, got %v", err)
	}
	list, _ := r.ListByBillID(ctx, "BILL-1")
	if len(list) != 1 {
		t.Fatalf("expected one payment, got %d", len(list))
	}
}

func TestBillMemoryRepositoryConcurrentSaves(t *testing.T) {
	ctx := context.Background()
	r := NewBillMemoryRepository()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = r.Save(ctx, entities.Bill{Entity: entities.Entity{ID: fmt.Sprintf("BILL-%d", i)}, AppointmentID: "APT-1"})
			_, _ = r.ListByAppointmentID(ctx, "APT-1")
		}(i)
	}
	wg.Wait()
	list, _ := r.ListByAppointmentID(ctx, "APT-1")
	if len(list) != 50 {
		t.Fatalf("expected 50 bills, got %d", len(list))
	}
}
