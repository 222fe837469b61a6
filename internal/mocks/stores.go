package mocks

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/proyectozoo/zoo-api/internal/domain"
	"github.com/proyectozoo/zoo-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockUserStore is a mock of store.UserStore.
type MockUserStore struct {
	mock.Mock
}

var _ store.UserStore = (*MockUserStore)(nil)

func (m *MockUserStore) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]domain.User)
	return users, args.Error(1)
}

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockUserStore) GetByName(ctx context.Context, name string) (*domain.User, error) {
	args := m.Called(ctx, name)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// WithTx returns the mock itself so transactional code shares its expectations.
func (m *MockUserStore) WithTx(*sql.Tx) store.UserStore {
	return m
}

// MockAnimalStore is a mock of store.AnimalStore.
type MockAnimalStore struct {
	mock.Mock
}

var _ store.AnimalStore = (*MockAnimalStore)(nil)

func (m *MockAnimalStore) List(ctx context.Context) ([]domain.Animal, error) {
	args := m.Called(ctx)
	animals, _ := args.Get(0).([]domain.Animal)
	return animals, args.Error(1)
}

func (m *MockAnimalStore) ListBySection(ctx context.Context, sectionID uuid.UUID) ([]domain.Animal, error) {
	args := m.Called(ctx, sectionID)
	animals, _ := args.Get(0).([]domain.Animal)
	return animals, args.Error(1)
}

func (m *MockAnimalStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Animal, error) {
	args := m.Called(ctx, id)
	animal, _ := args.Get(0).(*domain.Animal)
	return animal, args.Error(1)
}

func (m *MockAnimalStore) GetByName(ctx context.Context, name string) (*domain.Animal, error) {
	args := m.Called(ctx, name)
	animal, _ := args.Get(0).(*domain.Animal)
	return animal, args.Error(1)
}

func (m *MockAnimalStore) MostCommentedSince(ctx context.Context, since time.Time) (*domain.Animal, error) {
	args := m.Called(ctx, since)
	animal, _ := args.Get(0).(*domain.Animal)
	return animal, args.Error(1)
}

func (m *MockAnimalStore) Create(ctx context.Context, animal *domain.Animal) error {
	return m.Called(ctx, animal).Error(0)
}

func (m *MockAnimalStore) Update(ctx context.Context, animal *domain.Animal) error {
	return m.Called(ctx, animal).Error(0)
}

func (m *MockAnimalStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// WithTx returns the mock itself so transactional code shares its expectations.
func (m *MockAnimalStore) WithTx(*sql.Tx) store.AnimalStore {
	return m
}

// MockSectionStore is a mock of store.SectionStore.
type MockSectionStore struct {
	mock.Mock
}

var _ store.SectionStore = (*MockSectionStore)(nil)

func (m *MockSectionStore) List(ctx context.Context) ([]domain.Section, error) {
	args := m.Called(ctx)
	sections, _ := args.Get(0).([]domain.Section)
	return sections, args.Error(1)
}

func (m *MockSectionStore) Names(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	names, _ := args.Get(0).([]string)
	return names, args.Error(1)
}

func (m *MockSectionStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Section, error) {
	args := m.Called(ctx, id)
	section, _ := args.Get(0).(*domain.Section)
	return section, args.Error(1)
}

func (m *MockSectionStore) GetByName(ctx context.Context, name string) (*domain.Section, error) {
	args := m.Called(ctx, name)
	section, _ := args.Get(0).(*domain.Section)
	return section, args.Error(1)
}

func (m *MockSectionStore) Create(ctx context.Context, section *domain.Section) error {
	return m.Called(ctx, section).Error(0)
}

func (m *MockSectionStore) Update(ctx context.Context, section *domain.Section) error {
	return m.Called(ctx, section).Error(0)
}

func (m *MockSectionStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// WithTx returns the mock itself so transactional code shares its expectations.
func (m *MockSectionStore) WithTx(*sql.Tx) store.SectionStore {
	return m
}

// MockEventStore is a mock of store.EventStore.
type MockEventStore struct {
	mock.Mock
}

var _ store.EventStore = (*MockEventStore)(nil)

func (m *MockEventStore) List(ctx context.Context) ([]domain.Event, error) {
	args := m.Called(ctx)
	events, _ := args.Get(0).([]domain.Event)
	return events, args.Error(1)
}

func (m *MockEventStore) ListBySection(ctx context.Context, sectionID uuid.UUID) ([]domain.Event, error) {
	args := m.Called(ctx, sectionID)
	events, _ := args.Get(0).([]domain.Event)
	return events, args.Error(1)
}

func (m *MockEventStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	args := m.Called(ctx, id)
	event, _ := args.Get(0).(*domain.Event)
	return event, args.Error(1)
}

func (m *MockEventStore) GetByName(ctx context.Context, name string) (*domain.Event, error) {
	args := m.Called(ctx, name)
	event, _ := args.Get(0).(*domain.Event)
	return event, args.Error(1)
}

func (m *MockEventStore) Create(ctx context.Context, event *domain.Event) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockEventStore) Update(ctx context.Context, event *domain.Event) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockEventStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// WithTx returns the mock itself so transactional code shares its expectations.
func (m *MockEventStore) WithTx(*sql.Tx) store.EventStore {
	return m
}

// MockCommentStore is a mock of store.CommentStore.
type MockCommentStore struct {
	mock.Mock
}

var _ store.CommentStore = (*MockCommentStore)(nil)

func (m *MockCommentStore) List(ctx context.Context) ([]domain.Comment, error) {
	args := m.Called(ctx)
	comments, _ := args.Get(0).([]domain.Comment)
	return comments, args.Error(1)
}

func (m *MockCommentStore) ListByAnimal(ctx context.Context, animalID uuid.UUID) ([]domain.Comment, error) {
	args := m.Called(ctx, animalID)
	comments, _ := args.Get(0).([]domain.Comment)
	return comments, args.Error(1)
}

func (m *MockCommentStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	args := m.Called(ctx, id)
	comment, _ := args.Get(0).(*domain.Comment)
	return comment, args.Error(1)
}

func (m *MockCommentStore) ExistsForDay(ctx context.Context, userID, animalID uuid.UUID, day domain.Date) (bool, error) {
	args := m.Called(ctx, userID, animalID, day)
	return args.Bool(0), args.Error(1)
}

func (m *MockCommentStore) Create(ctx context.Context, comment *domain.Comment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *MockCommentStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// WithTx returns the mock itself so transactional code shares its expectations.
func (m *MockCommentStore) WithTx(*sql.Tx) store.CommentStore {
	return m
}
