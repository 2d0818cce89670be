package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

// MockObjectStorage is a mock implementation of port.ObjectStorage.
type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) Download(ctx context.Context, bucket, key string, w io.WriterAt) (int64, error) {
	args := m.Called(ctx, bucket, key, w)
	return args.Get(0).(int64), args.Error(1)
}
