package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/booltable/internal/domain"
)

type Storer interface {
	Save(ctx context.Context, evaluation domain.Evaluation) (uuid.UUID, error)
	SaveBulk(ctx context.Context, evaluations []domain.Evaluation) error
}

// Store is implemented by every backend.
type Store interface {
	Storer
	Reader
}

type Type string

const (
	ES    Type = "es"
	PG    Type = "pg"
	InMem Type = "in_mem"
	JSON  Type = "json"
)

var Types = []Type{InMem, JSON, PG, ES}

var ErrNotFound = errors.New("evaluation not found")

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}
