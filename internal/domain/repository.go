package domain

import (
	"context"

	"github.com/google/uuid"

	"dodotable/internal/condition"
)

// MusicRepository serves the catalog table and the detail endpoint. Count
// and Select satisfy schema.RowSource.
type MusicRepository interface {
	Count(ctx context.Context, where []*condition.Clause) (int, error)
	Select(ctx context.Context, where []*condition.Clause, order []string, limit, offset int) ([]any, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Music, error)
}
