package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/proyectozoo/zoo-api/internal/domain"
	"github.com/proyectozoo/zoo-api/internal/platform/imagestore"
	"github.com/proyectozoo/zoo-api/internal/service"
	"github.com/stretchr/testify/mock"
)

// MockAnimalService is a mock of service.AnimalService.
type MockAnimalService struct {
	mock.Mock
}

var _ service.AnimalService = (*MockAnimalService)(nil)

func (m *MockAnimalService) List(ctx context.Context) ([]domain.Animal, error) {
	args := m.Called(ctx)
	animals, _ := args.Get(0).([]domain.Animal)
	return animals, args.Error(1)
}

func (m *MockAnimalService) ListBySection(ctx context.Context, sectionID uuid.UUID) ([]domain.Animal, error) {
	args := m.Called(ctx, sectionID)
	animals, _ := args.Get(0).([]domain.Animal)
	return animals, args.Error(1)
}

func (m *MockAnimalService) Get(ctx context.Context, id uuid.UUID) (*domain.Animal, error) {
	args := m.Called(ctx, id)
	animal, _ := args.Get(0).(*domain.Animal)
	return animal, args.Error(1)
}

func (m *MockAnimalService) GetByName(ctx context.Context, name string) (*domain.Animal, error) {
	args := m.Called(ctx, name)
	animal, _ := args.Get(0).(*domain.Animal)
	return animal, args.Error(1)
}

func (m *MockAnimalService) Popular(ctx context.Context, window string) (*domain.Animal, error) {
	args := m.Called(ctx, window)
	animal, _ := args.Get(0).(*domain.Animal)
	return animal, args.Error(1)
}

func (m *MockAnimalService) PopularSince(ctx context.Context, since time.Time) (*domain.Animal, error) {
	args := m.Called(ctx, since)
	animal, _ := args.Get(0).(*domain.Animal)
	return animal, args.Error(1)
}

func (m *MockAnimalService) Create(ctx context.Context, animal *domain.Animal) (*domain.Animal, error) {
	args := m.Called(ctx, animal)
	created, _ := args.Get(0).(*domain.Animal)
	return created, args.Error(1)
}

func (m *MockAnimalService) Update(ctx context.Context, animal *domain.Animal) (*domain.Animal, error) {
	args := m.Called(ctx, animal)
	updated, _ := args.Get(0).(*domain.Animal)
	return updated, args.Error(1)
}

func (m *MockAnimalService) UpdatePhoto(ctx context.Context, id uuid.UUID, upload imagestore.Upload) (string, error) {
	args := m.Called(ctx, id, upload)
	return args.String(0), args.Error(1)
}

func (m *MockAnimalService) Delete(ctx context.Context, id uuid.UUID) (*domain.Animal, error) {
	args := m.Called(ctx, id)
	animal, _ := args.Get(0).(*domain.Animal)
	return animal, args.Error(1)
}

// MockSectionService is a mock of service.SectionService.
type MockSectionService struct {
	mock.Mock
}

var _ service.SectionService = (*MockSectionService)(nil)

func (m *MockSectionService) List(ctx context.Context) ([]domain.Section, error) {
	args := m.Called(ctx)
	sections, _ := args.Get(0).([]domain.Section)
	return sections, args.Error(1)
}

func (m *MockSectionService) Names(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	names, _ := args.Get(0).([]string)
	return names, args.Error(1)
}

func (m *MockSectionService) Get(ctx context.Context, id uuid.UUID) (*domain.Section, error) {
	args := m.Called(ctx, id)
	section, _ := args.Get(0).(*domain.Section)
	return section, args.Error(1)
}

func (m *MockSectionService) Create(ctx context.Context, section *domain.Section) (*domain.Section, error) {
	args := m.Called(ctx, section)
	created, _ := args.Get(0).(*domain.Section)
	return created, args.Error(1)
}

func (m *MockSectionService) Update(ctx context.Context, section *domain.Section) (*domain.Section, error) {
	args := m.Called(ctx, section)
	updated, _ := args.Get(0).(*domain.Section)
	return updated, args.Error(1)
}

func (m *MockSectionService) UpdatePhoto(ctx context.Context, id uuid.UUID, upload imagestore.Upload) (string, error) {
	args := m.Called(ctx, id, upload)
	return args.String(0), args.Error(1)
}

func (m *MockSectionService) Delete(ctx context.Context, id uuid.UUID) (*domain.Section, error) {
	args := m.Called(ctx, id)
	section, _ := args.Get(0).(*domain.Section)
	return section, args.Error(1)
}

// MockEventService is a mock of service.EventService.
type MockEventService struct {
	mock.Mock
}

var _ service.EventService = (*MockEventService)(nil)

func (m *MockEventService) List(ctx context.Context) ([]domain.Event, error) {
	args := m.Called(ctx)
	events, _ := args.Get(0).([]domain.Event)
	return events, args.Error(1)
}

func (m *MockEventService) ListBySection(ctx context.Context, sectionID uuid.UUID) ([]domain.Event, error) {
	args := m.Called(ctx, sectionID)
	events, _ := args.Get(0).([]domain.Event)
	return events, args.Error(1)
}

func (m *MockEventService) Get(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	args := m.Called(ctx, id)
	event, _ := args.Get(0).(*domain.Event)
	return event, args.Error(1)
}

func (m *MockEventService) Create(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	args := m.Called(ctx, event)
	created, _ := args.Get(0).(*domain.Event)
	return created, args.Error(1)
}

func (m *MockEventService) Update(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	args := m.Called(ctx, event)
	updated, _ := args.Get(0).(*domain.Event)
	return updated, args.Error(1)
}

func (m *MockEventService) UpdatePhoto(ctx context.Context, id uuid.UUID, upload imagestore.Upload) (string, error) {
	args := m.Called(ctx, id, upload)
	return args.String(0), args.Error(1)
}

func (m *MockEventService) Delete(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	args := m.Called(ctx, id)
	event, _ := args.Get(0).(*domain.Event)
	return event, args.Error(1)
}

// MockCommentService is a mock of service.CommentService.
type MockCommentService struct {
	mock.Mock
}

var _ service.CommentService = (*MockCommentService)(nil)

func (m *MockCommentService) List(ctx context.Context) ([]domain.Comment, error) {
	args := m.Called(ctx)
	comments, _ := args.Get(0).([]domain.Comment)
	return comments, args.Error(1)
}

func (m *MockCommentService) ListByAnimal(ctx context.Context, animalID uuid.UUID) ([]domain.Comment, error) {
	args := m.Called(ctx, animalID)
	comments, _ := args.Get(0).([]domain.Comment)
	return comments, args.Error(1)
}

func (m *MockCommentService) Get(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	args := m.Called(ctx, id)
	comment, _ := args.Get(0).(*domain.Comment)
	return comment, args.Error(1)
}

func (m *MockCommentService) Create(ctx context.Context, animalID, userID uuid.UUID, text string) (*domain.Comment, error) {
	args := m.Called(ctx, animalID, userID, text)
	comment, _ := args.Get(0).(*domain.Comment)
	return comment, args.Error(1)
}

func (m *MockCommentService) Delete(ctx context.Context, id, actorID uuid.UUID, actorIsAdmin bool) (*domain.Comment, error) {
	args := m.Called(ctx, id, actorID, actorIsAdmin)
	comment, _ := args.Get(0).(*domain.Comment)
	return comment, args.Error(1)
}

// MockUserService is a mock of service.UserService.
type MockUserService struct {
	mock.Mock
}

var _ service.UserService = (*MockUserService)(nil)

func (m *MockUserService) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]domain.User)
	return users, args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockUserService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	args := m.Called(ctx, name, email, password)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, email, password string) (*service.LoginResult, error) {
	args := m.Called(ctx, email, password)
	res, _ := args.Get(0).(*service.LoginResult)
	return res, args.Error(1)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, id uuid.UUID, name, email string) (*domain.User, error) {
	args := m.Called(ctx, id, name, email)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockUserService) UpdateName(ctx context.Context, id uuid.UUID, name string) error {
	return m.Called(ctx, id, name).Error(0)
}

func (m *MockUserService) UpdateEmail(ctx context.Context, id uuid.UUID, email string) error {
	return m.Called(ctx, id, email).Error(0)
}

func (m *MockUserService) UpdatePassword(ctx context.Context, id uuid.UUID, password string) error {
	return m.Called(ctx, id, password).Error(0)
}

func (m *MockUserService) UpdatePhoto(ctx context.Context, id uuid.UUID, upload imagestore.Upload) (string, error) {
	args := m.Called(ctx, id, upload)
	return args.String(0), args.Error(1)
}

func (m *MockUserService) SetRole(ctx context.Context, id uuid.UUID, role domain.Role) error {
	return m.Called(ctx, id, role).Error(0)
}

func (m *MockUserService) Delete(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}
