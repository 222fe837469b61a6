package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestAnimalValidate(t *testing.T) {
	t.Parallel()

	today := NewDate(time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC))
	valid := Animal{
		Name:      "Manolo",
		Species:   "Lince iberico",
		BirthDate: NewDate(time.Date(2020, 4, 10, 0, 0, 0, 0, time.UTC)),
		SectionID: uuid.New(),
	}

	if err := valid.Validate(today); err != nil {
		t.Fatalf("Expected valid animal, got %v", err)
	}

	bornToday := valid
	bornToday.BirthDate = today
	if err := bornToday.Validate(today); err != nil {
		t.Errorf("Expected birth date equal to today to be accepted, got %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(a *Animal)
		wantKey string
	}{
		{name: "short name", mutate: func(a *Animal) { a.Name = "Leo" }, wantKey: "animal.name.min"},
		{name: "missing name", mutate: func(a *Animal) { a.Name = "" }, wantKey: "animal.name.required"},
		{name: "short species", mutate: func(a *Animal) { a.Species = "cat" }, wantKey: "animal.species.min"},
		{name: "future birth", mutate: func(a *Animal) { a.BirthDate = NewDate(today.AddDate(0, 0, 1)) }, wantKey: "animal.birth_date.past_or_present"},
		{name: "no section", mutate: func(a *Animal) { a.SectionID = uuid.Nil }, wantKey: "animal.section_id.required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := valid
			tt.mutate(&a)
			assertHasKey(t, a.Validate(today), tt.wantKey)
		})
	}
}

func TestAnimalApplyUpdate(t *testing.T) {
	t.Parallel()

	existing := &Animal{ID: uuid.New(), Name: "Old", PhotoPath: "keep.png", SectionID: uuid.New()}
	incoming := &Animal{ID: uuid.New(), Name: "Newer", Species: "Tigre", SectionID: uuid.New(), PhotoPath: "other.png"}

	id := existing.ID
	existing.ApplyUpdate(incoming)

	if existing.ID != id {
		t.Error("Expected ID to be preserved")
	}
	if existing.PhotoPath != "keep.png" {
		t.Error("Expected photo to be preserved")
	}
	if existing.SectionID != incoming.SectionID {
		t.Error("Expected section to come from the incoming payload")
	}
	if existing.Name != "Newer" || existing.Species != "Tigre" {
		t.Error("Expected mutable fields to be copied")
	}
}

func TestSectionValidate(t *testing.T) {
	t.Parallel()

	s := Section{Name: "Sabana", Description: "Animales de la sabana africana"}
	if err := s.Validate(); err != nil {
		t.Fatalf("Expected valid section, got %v", err)
	}

	s.Description = "corta"
	assertHasKey(t, s.Validate(), "section.description.min")

	s.Name = "Sab"
	assertHasKey(t, s.Validate(), "section.name.min")
}

func TestEventValidateNew(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	valid := Event{Name: "Leon nadador", Date: now.Add(24 * time.Hour), Capacity: 1000, SectionID: uuid.New()}

	if err := valid.ValidateNew(now); err != nil {
		t.Fatalf("Expected valid event, got %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(e *Event)
		wantKey string
	}{
		{name: "past date", mutate: func(e *Event) { e.Date = now.Add(-time.Minute) }, wantKey: "event.date.future"},
		{name: "now is not future", mutate: func(e *Event) { e.Date = now }, wantKey: "event.date.future"},
		{name: "missing date", mutate: func(e *Event) { e.Date = time.Time{} }, wantKey: "event.date.required"},
		{name: "too few seats", mutate: func(e *Event) { e.Capacity = 199 }, wantKey: "event.capacity.min"},
		{name: "too many seats", mutate: func(e *Event) { e.Capacity = 2001 }, wantKey: "event.capacity.max"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := valid
			tt.mutate(&e)
			assertHasKey(t, e.ValidateNew(now), tt.wantKey)
		})
	}

	bounds := valid
	bounds.Capacity = 200
	if err := bounds.ValidateNew(now); err != nil {
		t.Errorf("Expected 200 seats to be accepted, got %v", err)
	}
	bounds.Capacity = 2000
	if err := bounds.ValidateNew(now); err != nil {
		t.Errorf("Expected 2000 seats to be accepted, got %v", err)
	}

	past := valid
	past.Date = now.Add(-48 * time.Hour)
	if err := past.Validate(); err != nil {
		t.Errorf("Expected existing past event to validate, got %v", err)
	}
}

func TestNewComment(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 10, 23, 59, 0, 0, time.UTC)
	c, err := NewComment(uuid.New(), uuid.New(), "  Precioso  ", now)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if c.Text != "Precioso" {
		t.Errorf("Expected trimmed text, got %q", c.Text)
	}
	if c.CreatedOn.String() != "2024-05-10" {
		t.Errorf("Expected created_on 2024-05-10, got %s", c.CreatedOn)
	}

	_, err = NewComment(uuid.New(), uuid.New(), " ", now)
	assertHasKey(t, err, "comment.text.required")
}

func TestDateJSON(t *testing.T) {
	t.Parallel()

	var a struct {
		Born Date `json:"born"`
	}
	if err := json.Unmarshal([]byte(`{"born":"2020-04-10"}`), &a); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if a.Born.String() != "2020-04-10" {
		t.Errorf("Expected 2020-04-10, got %s", a.Born)
	}

	out, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(out) != `{"born":"2020-04-10"}` {
		t.Errorf("Unexpected JSON %s", out)
	}

	if err := json.Unmarshal([]byte(`{"born":"10/04/2020"}`), &a); err == nil {
		t.Error("Expected error for non ISO date")
	}
}

func TestDateScan(t *testing.T) {
	t.Parallel()

	var d Date
	if err := d.Scan(time.Date(2021, 1, 2, 13, 4, 5, 0, time.UTC)); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if d.String() != "2021-01-02" {
		t.Errorf("Expected 2021-01-02, got %s", d)
	}
	if err := d.Scan(42); err == nil {
		t.Error("Expected error scanning an int")
	}
}
