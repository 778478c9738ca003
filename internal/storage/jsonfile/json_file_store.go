package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/DjordjeVuckovic/booltable/internal/domain"
	"github.com/DjordjeVuckovic/booltable/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/booltable/pkg/pagination"
)

// Store keeps evaluations in memory and rewrites the whole file after every save.
type Store struct {
	filePath string
	mem      *in_mem.Store
	writeMu  sync.Mutex
}

// Open loads filePath if it exists. A missing file is an empty store.
func Open(filePath string) (*Store, error) {
	s := &Store{
		filePath: filePath,
		mem:      in_mem.NewStore(),
	}

	data, err := os.ReadFile(filePath)
	if errors.Is(err, os.ErrNotExist) {
		slog.Info("JSON store file does not exist yet", "path", filePath)
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read json store: %w", err)
	}

	var evaluations []domain.Evaluation
	if len(data) > 0 {
		if err := json.Unmarshal(data, &evaluations); err != nil {
			return nil, fmt.Errorf("failed to decode json store %s: %w", filePath, err)
		}
	}
	if err := s.mem.SaveBulk(context.Background(), evaluations); err != nil {
		return nil, err
	}

	slog.Info("JSON store loaded", "path", filePath, "count", len(evaluations))
	return s, nil
}

// Save writes the file first and only then makes evaluation visible to readers.
func (s *Store) Save(ctx context.Context, evaluation domain.Evaluation) (uuid.UUID, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if evaluation.ID == uuid.Nil {
		evaluation.ID = uuid.New()
	}
	if err := s.flush([]domain.Evaluation{evaluation}); err != nil {
		return uuid.Nil, err
	}
	return s.mem.Save(ctx, evaluation)
}

func (s *Store) SaveBulk(ctx context.Context, evaluations []domain.Evaluation) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	pending := lo.Map(evaluations, func(evaluation domain.Evaluation, _ int) domain.Evaluation {
		if evaluation.ID == uuid.Nil {
			evaluation.ID = uuid.New()
		}
		return evaluation
	})
	if err := s.flush(pending); err != nil {
		return err
	}
	return s.mem.SaveBulk(ctx, pending)
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*domain.Evaluation, error) {
	return s.mem.Get(ctx, id)
}

func (s *Store) List(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.Evaluation], error) {
	return s.mem.List(ctx, page)
}

// flush writes the stored evaluations plus pending to a temporary file next to the target
// and renames it into place. Pending entries replace stored ones with the same ID.
func (s *Store) flush(pending []domain.Evaluation) error {
	replaced := lo.SliceToMap(pending, func(evaluation domain.Evaluation) (uuid.UUID, struct{}) {
		return evaluation.ID, struct{}{}
	})
	all := lo.Filter(s.mem.Snapshot(), func(evaluation domain.Evaluation, _ int) bool {
		_, ok := replaced[evaluation.ID]
		return !ok
	})
	all = append(all, pending...)

	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal evaluations: %w", err)
	}

	dir := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create json store directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.filePath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write json store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.filePath); err != nil {
		return fmt.Errorf("failed to replace json store: %w", err)
	}
	return nil
}
