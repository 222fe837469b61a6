package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Minimum lengths for animal text fields.
const (
	MinAnimalNameLength    = 4
	MinAnimalSpeciesLength = 4
)

// Animal is an individual living in one zoo section.
type Animal struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Species   string    `json:"species"`
	BirthDate Date      `json:"birth_date"`
	Trivia    string    `json:"trivia"`
	Sex       string    `json:"sex"`
	PhotoPath string    `json:"photo_path"`
	SectionID uuid.UUID `json:"section_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks field rules. today is the current calendar day; the birth
// date may not be after it.
func (a *Animal) Validate(today Date) error {
	v := NewValidationError("animal")

	name := strings.TrimSpace(a.Name)
	if name == "" {
		v.Add("name", "required", "")
	} else if len([]rune(name)) < MinAnimalNameLength {
		v.Add("name", "min", strconv.Itoa(MinAnimalNameLength))
	}

	species := strings.TrimSpace(a.Species)
	if species == "" {
		v.Add("species", "required", "")
	} else if len([]rune(species)) < MinAnimalSpeciesLength {
		v.Add("species", "min", strconv.Itoa(MinAnimalSpeciesLength))
	}

	if !a.BirthDate.IsZero() && a.BirthDate.After(today) {
		v.Add("birth_date", "past_or_present", "")
	}

	if a.SectionID == uuid.Nil {
		v.Add("section_id", "required", "")
	}

	return v.OrNil()
}

// ApplyUpdate copies the mutable fields of in onto a. Identity and photo are kept.
func (a *Animal) ApplyUpdate(in *Animal) {
	a.Name = in.Name
	a.Species = in.Species
	a.BirthDate = in.BirthDate
	a.Trivia = in.Trivia
	a.Sex = in.Sex
	a.SectionID = in.SectionID
}
