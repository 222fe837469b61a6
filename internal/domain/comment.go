package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Comment is a visitor's note about an animal.
// A user may leave at most one comment per animal per calendar day.
type Comment struct {
	ID        uuid.UUID `json:"id"`
	AnimalID  uuid.UUID `json:"animal_id"`
	UserID    uuid.UUID `json:"user_id"`
	Text      string    `json:"text"`
	CreatedOn Date      `json:"created_on"`
	CreatedAt time.Time `json:"created_at"`
}

// NewComment builds a comment stamped with now.
func NewComment(animalID, userID uuid.UUID, text string, now time.Time) (*Comment, error) {
	c := &Comment{
		ID:        uuid.New(),
		AnimalID:  animalID,
		UserID:    userID,
		Text:      strings.TrimSpace(text),
		CreatedOn: NewDate(now),
		CreatedAt: now.UTC(),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks field rules.
func (c *Comment) Validate() error {
	v := NewValidationError("comment")
	if c.AnimalID == uuid.Nil {
		v.Add("animal_id", "required", "")
	}
	if c.UserID == uuid.Nil {
		v.Add("user_id", "required", "")
	}
	if strings.TrimSpace(c.Text) == "" {
		v.Add("text", "required", "")
	}
	return v.OrNil()
}
