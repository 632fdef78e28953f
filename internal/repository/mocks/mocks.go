package mocks

import (
	"context"

	"github.com/rpggio/farmrec/internal/domain/history"
	"github.com/stretchr/testify/mock"
)

// DocumentStore is a mock for repository.DocumentStore.
type DocumentStore struct {
	mock.Mock
}

func (m *DocumentStore) ReadDocument(ctx context.Context, name string) ([]byte, error) {
	args := m.Called(ctx, name)
	if data, ok := args.Get(0).([]byte); ok {
		return data, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *DocumentStore) WriteDocument(ctx context.Context, name string, data []byte) error {
	args := m.Called(ctx, name, data)
	return args.Error(0)
}

// HistoryLogger is a mock for the HistoryLogger interfaces declared by the domain packages.
type HistoryLogger struct {
	mock.Mock
}

func (m *HistoryLogger) Log(ctx context.Context, entry *history.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
