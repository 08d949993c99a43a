package entities

import (
	"fmt"
	"strings"
)

type PatientProfile struct {
	Address   string   `json:"address"`
	Allergies []string `json:"allergies"`
}

func (p *PatientProfile) Clone() *PatientProfile {
	if p == nil {
		return nil
	}
	c := &PatientProfile{Address: p.Address}
	if p.Allergies != nil {
		c.Allergies = append([]string(nil), p.Allergies...)
	}
	return c
}

type Patient struct {
	Entity
	Person
	Profile *PatientProfile `json:"profile,omitempty"`
}

func (p *Patient) Validate() error {
	return p.Person.Validate()
}

// Clone copies the patient and its profile; the copy shares nothing mutable with p.
func (p *Patient) Clone() *Patient {
	if p == nil {
		return nil
	}
	c := *p
	c.Profile = p.Profile.Clone()
	return &c
}

func (p *Patient) Describe() string {
	address, allergies := "", ""
	if p.Profile != nil {
		address = p.Profile.Address
		allergies = strings.Join(p.Profile.Allergies, ",")
	}
	return describe("Patient", p.Entity, fmt.Sprintf("name=%s, age=%d, phone=%s, address=%s, allergies=[%s]",
		p.Name, p.Age, p.Phone, address, allergies))
}
