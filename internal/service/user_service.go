package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/proyectozoo/zoo-api/internal/domain"
	"github.com/proyectozoo/zoo-api/internal/platform/imagestore"
	"github.com/proyectozoo/zoo-api/internal/platform/logger"
	"github.com/proyectozoo/zoo-api/internal/platform/metrics"
	"github.com/proyectozoo/zoo-api/internal/service/auth"
	"github.com/proyectozoo/zoo-api/internal/store"
)

// LoginResult is returned by a successful login.
type LoginResult struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// UserService provides registration, login and account management.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// Register creates a USER account with the default photo.
	// Returns store.ErrEmailExists or store.ErrNameExists on conflicts.
	Register(ctx context.Context, name, email, password string) (*domain.User, error)

	// Login checks the credentials and issues a token.
	// Returns ErrInvalidCredentials for an unknown email or a wrong password.
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	// UpdateProfile changes name and email together.
	UpdateProfile(ctx context.Context, id uuid.UUID, name, email string) (*domain.User, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) error
	UpdateEmail(ctx context.Context, id uuid.UUID, email string) error
	UpdatePassword(ctx context.Context, id uuid.UUID, password string) error
	UpdatePhoto(ctx context.Context, id uuid.UUID, upload imagestore.Upload) (string, error)

	// SetRole grants or revokes admin rights.
	SetRole(ctx context.Context, id uuid.UUID, role domain.Role) error

	// Delete removes the account and every comment it wrote.
	Delete(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// UserServiceImpl implements UserService.
type UserServiceImpl struct {
	db      store.TxBeginner
	users   store.UserStore
	hasher  auth.PasswordHasher
	tokens  auth.JWTService
	photos  photoManager
	now     func() time.Time
	metrics *metrics.Metrics
	logger  *slog.Logger
}

var _ UserService = (*UserServiceImpl)(nil)

// NewUserService creates a UserService.
func NewUserService(
	db store.TxBeginner,
	users store.UserStore,
	hasher auth.PasswordHasher,
	tokens auth.JWTService,
	photos Photos,
	log *slog.Logger,
	opts ...Option,
) *UserServiceImpl {
	o := buildOptions(opts)
	log = log.With(slog.String("component", "user_service"))
	return &UserServiceImpl{
		db:      db,
		users:   users,
		hasher:  hasher,
		tokens:  tokens,
		photos:  newPhotoManager(photos, "user", o.metrics, log),
		now:     o.now,
		metrics: o.metrics,
		logger:  log,
	}
}

func (s *UserServiceImpl) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *UserServiceImpl) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	return user, nil
}

// Register validates, hashes the password and stores the user.
func (s *UserServiceImpl) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := domain.NewUser(name, email, password, s.photos.DefaultPath)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	user.CreatedAt, user.UpdatedAt = now, now

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = hashed
	user.Password = ""

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.users.WithTx(tx)
		if err := checkEmail(ctx, txStore, user); err != nil {
			return err
		}
		if err := checkUserName(ctx, txStore, user); err != nil {
			return err
		}
		return txStore.Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			log.Debug("registration conflict", slog.Any("error", err))
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.metrics.UserRegistered()
	log.Info("user registered", slog.String("user_id", user.ID.String()))
	return user, nil
}

// Login verifies the password against the stored hash.
func (s *UserServiceImpl) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		s.metrics.Login(false)
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to retrieve user for login: %w", err)
	}

	if err := s.hasher.Compare(user.HashedPassword, password); err != nil {
		s.metrics.Login(false)
		if errors.Is(err, auth.ErrMalformedHash) {
			log.Error("stored password hash is malformed", slog.String("user_id", user.ID.String()))
		}
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(ctx, user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.metrics.Login(true)
	log.Info("user logged in", slog.String("user_id", user.ID.String()))
	return &LoginResult{Token: token, User: user}, nil
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, id uuid.UUID, name, email string) (*domain.User, error) {
	if err := validateAll(domain.ValidateUserName(name), domain.ValidateUserEmail(email)); err != nil {
		return nil, err
	}
	return s.mutate(ctx, id, "profile", func(ctx context.Context, users store.UserStore, u *domain.User) error {
		u.Name = name
		u.Email = email
		if err := checkUserName(ctx, users, u); err != nil {
			return err
		}
		return checkEmail(ctx, users, u)
	})
}

func (s *UserServiceImpl) UpdateName(ctx context.Context, id uuid.UUID, name string) error {
	if err := domain.ValidateUserName(name); err != nil {
		return err
	}
	_, err := s.mutate(ctx, id, "name", func(ctx context.Context, users store.UserStore, u *domain.User) error {
		u.Name = name
		return checkUserName(ctx, users, u)
	})
	return err
}

func (s *UserServiceImpl) UpdateEmail(ctx context.Context, id uuid.UUID, email string) error {
	if err := domain.ValidateUserEmail(email); err != nil {
		return err
	}
	_, err := s.mutate(ctx, id, "email", func(ctx context.Context, users store.UserStore, u *domain.User) error {
		u.Email = email
		return checkEmail(ctx, users, u)
	})
	return err
}

func (s *UserServiceImpl) UpdatePassword(ctx context.Context, id uuid.UUID, password string) error {
	if err := domain.ValidatePassword(password); err != nil {
		return err
	}
	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	_, err = s.mutate(ctx, id, "password", func(_ context.Context, _ store.UserStore, u *domain.User) error {
		u.HashedPassword = hashed
		return nil
	})
	return err
}

func (s *UserServiceImpl) SetRole(ctx context.Context, id uuid.UUID, role domain.Role) error {
	if !role.Valid() {
		v := domain.NewValidationError("user")
		v.Add("role", "oneof", "USER ADMIN")
		return v
	}
	_, err := s.mutate(ctx, id, "role", func(_ context.Context, _ store.UserStore, u *domain.User) error {
		u.Role = role
		return nil
	})
	if err == nil {
		logger.FromContextOrDefault(ctx, s.logger).Info("user role changed",
			slog.String("user_id", id.String()),
			slog.String("role", string(role)))
	}
	return err
}

func (s *UserServiceImpl) UpdatePhoto(ctx context.Context, id uuid.UUID, upload imagestore.Upload) (string, error) {
	if _, err := s.users.GetByID(ctx, id); err != nil {
		return "", fmt.Errorf("failed to retrieve user: %w", err)
	}

	path, err := s.photos.save(ctx, upload)
	if err != nil {
		return "", err
	}

	var old string
	_, err = s.mutate(ctx, id, "photo", func(_ context.Context, _ store.UserStore, u *domain.User) error {
		old = u.PhotoPath
		u.PhotoPath = path
		return nil
	})
	if err != nil {
		s.photos.discard(ctx, path)
		return "", err
	}

	s.photos.discard(ctx, old)
	return path, nil
}

func (s *UserServiceImpl) Delete(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var deleted *domain.User
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.users.WithTx(tx)
		user, err := txStore.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := txStore.Delete(ctx, id); err != nil {
			return err
		}
		deleted = user
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}

	s.photos.discard(ctx, deleted.PhotoPath)
	logger.FromContextOrDefault(ctx, s.logger).Info("user deleted", slog.String("user_id", id.String()))
	return deleted, nil
}

// mutate loads the user inside a transaction, applies change and saves it.
func (s *UserServiceImpl) mutate(
	ctx context.Context,
	id uuid.UUID,
	what string,
	change func(ctx context.Context, users store.UserStore, u *domain.User) error,
) (*domain.User, error) {
	var updated *domain.User
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.users.WithTx(tx)
		user, err := txStore.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := change(ctx, txStore, user); err != nil {
			return err
		}
		user.UpdatedAt = s.now().UTC()
		if err := txStore.Update(ctx, user); err != nil {
			return err
		}
		updated = user
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update user %s: %w", what, err)
	}
	return updated, nil
}

func checkEmail(ctx context.Context, users store.UserStore, user *domain.User) error {
	other, err := users.GetByEmail(ctx, user.Email)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return nil
	case err != nil:
		return err
	case other.ID != user.ID:
		return store.ErrEmailExists
	}
	return nil
}

func checkUserName(ctx context.Context, users store.UserStore, user *domain.User) error {
	other, err := users.GetByName(ctx, user.Name)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return nil
	case err != nil:
		return err
	case other.ID != user.ID:
		return store.ErrNameExists
	}
	return nil
}

// validateAll merges the field errors of several validation results.
func validateAll(errs ...error) error {
	merged := domain.NewValidationError("user")
	for _, err := range errs {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			merged.Fields = append(merged.Fields, verr.Fields...)
		} else if err != nil {
			return err
		}
	}
	return merged.OrNil()
}
