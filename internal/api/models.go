package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/proyectozoo/zoo-api/internal/domain"
)

// Field rules that belong to the entity itself (minimum lengths, dates,
// capacity range) are checked by the domain types; the tags below cover what
// only makes sense at the edge.

// AnimalRequest is the payload for creating or updating an animal.
// ID is only read on update.
type AnimalRequest struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Species   string      `json:"species"`
	BirthDate domain.Date `json:"birth_date"`
	Trivia    string      `json:"trivia"`
	Sex       string      `json:"sex"`
	SectionID uuid.UUID   `json:"section_id"`
}

func (r AnimalRequest) toDomain() *domain.Animal {
	return &domain.Animal{
		ID:        r.ID,
		Name:      r.Name,
		Species:   r.Species,
		BirthDate: r.BirthDate,
		Trivia:    r.Trivia,
		Sex:       r.Sex,
		SectionID: r.SectionID,
	}
}

// SectionRequest is the payload for creating or updating a section.
type SectionRequest struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

func (r SectionRequest) toDomain() *domain.Section {
	return &domain.Section{ID: r.ID, Name: r.Name, Description: r.Description}
}

// EventRequest is the payload for creating or updating an event.
type EventRequest struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Date      time.Time `json:"date"`
	Capacity  int       `json:"capacity"`
	SectionID uuid.UUID `json:"section_id"`
}

func (r EventRequest) toDomain() *domain.Event {
	return &domain.Event{
		ID:        r.ID,
		Name:      r.Name,
		Date:      r.Date,
		Capacity:  r.Capacity,
		SectionID: r.SectionID,
	}
}

// CommentRequest is the payload for posting a comment. The author is the
// authenticated user.
type CommentRequest struct {
	AnimalID uuid.UUID `json:"animal_id"`
	Text     string    `json:"text" validate:"required"`
}

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ProfileRequest updates name and email together.
type ProfileRequest struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"  validate:"required"`
	Email string    `json:"email" validate:"required,email"`
}

// NameRequest changes a user's name.
type NameRequest struct {
	Name string `json:"name" validate:"required"`
}

// EmailRequest changes a user's email.
type EmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// PasswordRequest changes a user's password.
type PasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

// RoleRequest grants or revokes admin rights.
type RoleRequest struct {
	Role domain.Role `json:"role" validate:"required,oneof=USER ADMIN"`
}

// IDResponse is returned on creation.
type IDResponse struct {
	ID uuid.UUID `json:"id"`
}
