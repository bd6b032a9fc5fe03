package testutil

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"dodotable/internal/condition"
	"dodotable/internal/domain"
)

// MockRowSource is a mock of schema.RowSource.
type MockRowSource struct {
	mock.Mock
}

func (m *MockRowSource) Count(ctx context.Context, where []*condition.Clause) (int, error) {
	args := m.Called(ctx, where)
	return args.Int(0), args.Error(1)
}

func (m *MockRowSource) Select(ctx context.Context, where []*condition.Clause, order []string, limit, offset int) ([]any, error) {
	args := m.Called(ctx, where, order, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]any), args.Error(1)
}

// MockMusicRepo is a mock of domain.MusicRepository.
type MockMusicRepo struct {
	MockRowSource
}

func (m *MockMusicRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Music, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Music), args.Error(1)
}
