package domain

import (
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role gates privileged operations.
type Role string

// Known roles.
const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// MinPasswordLength is the shortest plaintext password accepted.
const MinPasswordLength = 8

// User represents a registered visitor or administrator of the zoo site.
type User struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Password       string    `json:"-"` // Plaintext password, used temporarily during registration/updates
	HashedPassword string    `json:"-"` // Never expose password hash in JSON
	PhotoPath      string    `json:"photo_path"`
	Role           Role      `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new User with role USER and the given photo.
// The caller is responsible for hashing the password before storing the user.
func NewUser(name, email, password, photoPath string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		Password:  password,
		PhotoPath: photoPath,
		Role:      RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	v := NewValidationError("user")

	if u.ID == uuid.Nil {
		v.Add("id", "required", "")
	}
	validateUserName(v, u.Name)
	validateUserEmail(v, u.Email)

	if u.Password != "" {
		if len(u.Password) < MinPasswordLength {
			v.Add("password", "min", "8")
		}
	} else if u.HashedPassword == "" {
		v.Add("password", "required", "")
	}

	if !u.Role.Valid() {
		v.Add("role", "oneof", "USER ADMIN")
	}

	return v.OrNil()
}

// IsAdmin reports whether the user holds the ADMIN role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// ValidateUserName checks a display name on its own, for name-only updates.
func ValidateUserName(name string) error {
	v := NewValidationError("user")
	validateUserName(v, name)
	return v.OrNil()
}

// ValidateUserEmail checks an email on its own, for email-only updates.
func ValidateUserEmail(email string) error {
	v := NewValidationError("user")
	validateUserEmail(v, email)
	return v.OrNil()
}

// ValidatePassword checks a plaintext password on its own.
func ValidatePassword(password string) error {
	v := NewValidationError("user")
	if password == "" {
		v.Add("password", "required", "")
	} else if len(password) < MinPasswordLength {
		v.Add("password", "min", "8")
	}
	return v.OrNil()
}

func validateUserName(v *ValidationError, name string) {
	if strings.TrimSpace(name) == "" {
		v.Add("name", "required", "")
	}
}

func validateUserEmail(v *ValidationError, email string) {
	if strings.TrimSpace(email) == "" {
		v.Add("email", "required", "")
		return
	}
	if !validateEmailFormat(email) {
		v.Add("email", "email", "")
	}
}

// validateEmailFormat accepts a bare address with a dotted domain.
func validateEmailFormat(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}
	at := strings.LastIndex(email, "@")
	domainPart := email[at+1:]
	dot := strings.Index(domainPart, ".")
	return dot > 0 && dot < len(domainPart)-1
}
