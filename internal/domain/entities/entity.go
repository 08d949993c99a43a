package entities

import (
	"fmt"
	"time"

	"meditrack/internal/domain/datetime"
)

// Entity carries the identity every stored record shares.
// ID and CreatedAt are set once at creation and never change afterwards.
type Entity struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

func NewEntity(id string, createdAt time.Time) Entity {
	return Entity{ID: id, CreatedAt: createdAt.UTC()}
}

// GetID lets generic containers index any record by its identifier.
func (e Entity) GetID() string { return e.ID }

func describe(typeName string, e Entity, details string) string {
	return fmt.Sprintf("%s { id=%s, createdAt=%s, details=%s }",
		typeName, e.ID, datetime.FormatDateTime(e.CreatedAt), details)
}
