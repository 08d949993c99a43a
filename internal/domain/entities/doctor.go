package entities

import (
	"fmt"

	"meditrack/internal/domain/errs"
	"meditrack/internal/domain/validator"

	"github.com/shopspring/decimal"
)

type Doctor struct {
	Entity
	Person
	Specialization  Specialization  `json:"specialization"`
	ConsultationFee decimal.Decimal `json:"consultation_fee"`
}

func (d *Doctor) Validate() error {
	if err := d.Person.Validate(); err != nil {
		return err
	}
	if !d.Specialization.Valid() {
		return errs.Invalid("specialization", "unknown value %q", d.Specialization)
	}
	if _, err := validator.RequireNonNegative(d.ConsultationFee, "consultation_fee"); err != nil {
		return err
	}
	return nil
}

// Clone returns an independent copy. Doctor holds no nested references.
func (d *Doctor) Clone() *Doctor {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}

func (d *Doctor) Describe() string {
	return describe("Doctor", d.Entity, fmt.Sprintf("name=%s, age=%d, phone=%s, specialization=%s, fee=%s",
		d.Name, d.Age, d.Phone, d.Specialization, d.ConsultationFee.StringFixed(2)))
}
