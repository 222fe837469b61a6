package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Minimum lengths for section text fields.
const (
	MinSectionNameLength        = 4
	MinSectionDescriptionLength = 10
)

// Section is a zoo zone grouping animals and events.
type Section struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PhotoPath   string    `json:"photo_path"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Validate checks field rules.
func (s *Section) Validate() error {
	v := NewValidationError("section")

	name := strings.TrimSpace(s.Name)
	if name == "" {
		v.Add("name", "required", "")
	} else if len([]rune(name)) < MinSectionNameLength {
		v.Add("name", "min", strconv.Itoa(MinSectionNameLength))
	}

	desc := strings.TrimSpace(s.Description)
	if desc == "" {
		v.Add("description", "required", "")
	} else if len([]rune(desc)) < MinSectionDescriptionLength {
		v.Add("description", "min", strconv.Itoa(MinSectionDescriptionLength))
	}

	return v.OrNil()
}

// ApplyUpdate copies the mutable fields of in onto s.
func (s *Section) ApplyUpdate(in *Section) {
	s.Name = in.Name
	s.Description = in.Description
}
