package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/booltable/internal/domain"
	"github.com/DjordjeVuckovic/booltable/pkg/pagination"
)

type Reader interface {
	// Get returns ErrNotFound when no evaluation has the id.
	Get(ctx context.Context, id uuid.UUID) (*domain.Evaluation, error)
	// List returns evaluations newest first.
	List(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.Evaluation], error)
}
