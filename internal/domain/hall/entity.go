package hall

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("hall name cannot be empty")
	ErrInvalidCapacity = errors.New("hall capacity must be positive")
)

// Hall is read-only reference data for the reservation engine; creation and
// editing belong to an external admin collaborator.
type Hall struct {
	id       uuid.UUID
	name     string
	capacity int
	active   bool
}

func NewHall(id uuid.UUID, name string, capacity int, active bool) (*Hall, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Hall{
		id:       id,
		name:     name,
		capacity: capacity,
		active:   active,
	}, nil
}

func (h *Hall) ID() uuid.UUID { return h.id }
func (h *Hall) Name() string  { return h.name }
func (h *Hall) Capacity() int { return h.capacity }
func (h *Hall) Active() bool  { return h.active }

// CombinedCapacity is the seat total of a multi-hall allocation; attendee
// validation compares against the set, not any single hall.
func CombinedCapacity(halls []*Hall) int {
	total := 0
	for _, h := range halls {
		total += h.capacity
	}
	return total
}
