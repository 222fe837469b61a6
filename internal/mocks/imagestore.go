package mocks

import (
	"context"

	"github.com/proyectozoo/zoo-api/internal/platform/imagestore"
	"github.com/stretchr/testify/mock"
)

// MockImageStore is a mock of imagestore.Store.
type MockImageStore struct {
	mock.Mock
}

var _ imagestore.Store = (*MockImageStore)(nil)

func (m *MockImageStore) Save(ctx context.Context, upload imagestore.Upload, dir string) (imagestore.Result, error) {
	args := m.Called(ctx, upload, dir)
	res, _ := args.Get(0).(imagestore.Result)
	return res, args.Error(1)
}

func (m *MockImageStore) Remove(ctx context.Context, path string) error {
	return m.Called(ctx, path).Error(0)
}
