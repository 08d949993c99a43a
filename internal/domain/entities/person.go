package entities

import (
	"meditrack/internal/domain/validator"
)

const (
	MinAge = 0
	MaxAge = 130
)

type Person struct {
	Name  string `json:"name"`
	Age   int    `json:"age"`
	Phone string `json:"phone"`
}

// Validate normalizes Name and Phone in place.
func (p *Person) Validate() error {
	name, err := validator.RequireNonBlank(p.Name, "name")
	if err != nil {
		return err
	}
	if _, err := validator.RequireRangeInclusive(p.Age, MinAge, MaxAge, "age"); err != nil {
		return err
	}
	phone, err := validator.RequireNonBlank(p.Phone, "phone")
	if err != nil {
		return err
	}
	p.Name = name
	p.Phone = phone
	return nil
}
