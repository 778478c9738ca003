package in_mem

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/booltable/internal/domain"
	"github.com/DjordjeVuckovic/booltable/internal/storage"
	"github.com/DjordjeVuckovic/booltable/pkg/pagination"
)

type Store struct {
	storageLock sync.RWMutex
	storage     map[uuid.UUID]domain.Evaluation
}

func NewStore() *Store {
	return &Store{
		storage: make(map[uuid.UUID]domain.Evaluation),
	}
}

func (s *Store) Save(ctx context.Context, evaluation domain.Evaluation) (uuid.UUID, error) {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	if evaluation.ID == uuid.Nil {
		evaluation.ID = uuid.New()
	}
	s.storage[evaluation.ID] = evaluation
	slog.Debug("Saved evaluation to in-memory storage", "id", evaluation.ID, "equation", evaluation.Equation)
	return evaluation.ID, nil
}

func (s *Store) SaveBulk(ctx context.Context, evaluations []domain.Evaluation) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	for _, evaluation := range evaluations {
		if evaluation.ID == uuid.Nil {
			evaluation.ID = uuid.New()
		}
		s.storage[evaluation.ID] = evaluation
	}
	slog.Debug("Saved evaluations to in-memory storage", "count", len(evaluations))

	return nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*domain.Evaluation, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	evaluation, ok := s.storage[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &evaluation, nil
}

func (s *Store) List(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.Evaluation], error) {
	page.Normalize()

	all := s.Snapshot()
	total := int64(len(all))
	start := min(page.Offset(), len(all))
	end := min(start+page.Size, len(all))

	return pagination.NewOffsetResult(all[start:end], total, page.Page, page.Size), nil
}

// Snapshot returns every stored evaluation, newest first.
func (s *Store) Snapshot() []domain.Evaluation {
	s.storageLock.RLock()
	all := make([]domain.Evaluation, 0, len(s.storage))
	for _, evaluation := range s.storage {
		all = append(all, evaluation)
	}
	s.storageLock.RUnlock()

	slices.SortFunc(all, func(a, b domain.Evaluation) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID.String(), b.ID.String())
	})
	return all
}
