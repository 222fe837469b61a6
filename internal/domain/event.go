package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Event limits.
const (
	MinEventNameLength = 4
	MinEventCapacity   = 200
	MaxEventCapacity   = 2000
)

// Event is a scheduled activity hosted by a section.
type Event struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Date      time.Time `json:"date"`
	Capacity  int       `json:"capacity"`
	SectionID uuid.UUID `json:"section_id"`
	PhotoPath string    `json:"photo_path"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks field rules that hold for the whole lifetime of an event.
func (e *Event) Validate() error {
	v := NewValidationError("event")
	e.validate(v)
	return v.OrNil()
}

// ValidateNew is Validate plus the rule that a new event must lie after now.
func (e *Event) ValidateNew(now time.Time) error {
	v := NewValidationError("event")
	e.validate(v)
	if e.Date.IsZero() {
		v.Add("date", "required", "")
	} else if !e.Date.After(now) {
		v.Add("date", "future", "")
	}
	return v.OrNil()
}

func (e *Event) validate(v *ValidationError) {
	name := strings.TrimSpace(e.Name)
	if name == "" {
		v.Add("name", "required", "")
	} else if len([]rune(name)) < MinEventNameLength {
		v.Add("name", "min", strconv.Itoa(MinEventNameLength))
	}

	if e.Capacity < MinEventCapacity {
		v.Add("capacity", "min", strconv.Itoa(MinEventCapacity))
	} else if e.Capacity > MaxEventCapacity {
		v.Add("capacity", "max", strconv.Itoa(MaxEventCapacity))
	}

	if e.SectionID == uuid.Nil {
		v.Add("section_id", "required", "")
	}
}

// ApplyUpdate copies the mutable fields of in onto e.
func (e *Event) ApplyUpdate(in *Event) {
	e.Name = in.Name
	e.Date = in.Date
	e.Capacity = in.Capacity
	e.SectionID = in.SectionID
}
