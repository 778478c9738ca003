package pg

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DjordjeVuckovic/booltable/internal/domain"
	"github.com/DjordjeVuckovic/booltable/internal/storage"
	"github.com/DjordjeVuckovic/booltable/pkg/pagination"
)

const evaluationsTable = "evaluations"

var evaluationColumns = []string{
	"id", "equation", "normalized", "inputs", "output", "input_rows", "outputs", "classification", "created_at",
}

type Store struct {
	db *pgxpool.Pool
}

func NewStore(pool *ConnectionPool) (*Store, error) {
	if pool == nil {
		return nil, errors.New("pg store requires a connection pool")
	}
	return &Store{db: pool.conn}, nil
}

func (s *Store) Save(ctx context.Context, evaluation domain.Evaluation) (uuid.UUID, error) {
	prepare(&evaluation, time.Now().UTC())

	cmd := `
		INSERT INTO evaluations (id, equation, normalized, inputs, output, input_rows, outputs, classification, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id;
	`
	var id uuid.UUID
	err := s.db.QueryRow(ctx, cmd, values(evaluation)...).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert evaluation: %w", err)
	}

	return id, nil
}

func (s *Store) SaveBulk(ctx context.Context, evaluations []domain.Evaluation) error {
	if len(evaluations) == 0 {
		return nil
	}

	rows := make([][]any, len(evaluations))
	now := time.Now().UTC()
	for i, ev := range evaluations {
		prepare(&ev, now)
		rows[i] = values(ev)
	}

	n, err := s.db.CopyFrom(
		ctx,
		pgx.Identifier{evaluationsTable},
		evaluationColumns,
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to bulk insert evaluations: %w", err)
	}

	slog.Info("Bulk insert completed", "table", evaluationsTable, "rows", n)
	return nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*domain.Evaluation, error) {
	query := `
		SELECT id, equation, normalized, inputs, output, input_rows, outputs, classification, created_at
		FROM evaluations
		WHERE id = $1
	`
	ev, err := scan(s.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get evaluation %s: %w", id, err)
	}
	return ev, nil
}

func (s *Store) List(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.Evaluation], error) {
	page.Normalize()

	var total int64
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM evaluations`).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count evaluations: %w", err)
	}

	query := `
		SELECT id, equation, normalized, inputs, output, input_rows, outputs, classification, created_at
		FROM evaluations
		ORDER BY created_at DESC, id
		LIMIT $1 OFFSET $2
	`
	rows, err := s.db.Query(ctx, query, page.Size, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Evaluation, 0, page.Size)
	for rows.Next() {
		ev, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan evaluation: %w", err)
		}
		items = append(items, *ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating evaluations: %w", err)
	}

	return pagination.NewOffsetResult(items, total, page.Page, page.Size), nil
}

func prepare(ev *domain.Evaluation, now time.Time) {
	if ev.ID == uuid.Nil {
		ev.ID = uuid.New()
	}
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = now
	}
	if ev.Inputs == nil {
		ev.Inputs = []string{}
	}
	if ev.Rows == nil {
		ev.Rows = []string{}
	}
}

func values(ev domain.Evaluation) []any {
	return []any{
		ev.ID,
		ev.Equation,
		ev.Normalized,
		ev.Inputs,
		ev.Output,
		ev.Rows,
		ev.Outputs,
		ev.Classification,
		ev.CreatedAt,
	}
}

func scan(row pgx.Row) (*domain.Evaluation, error) {
	var ev domain.Evaluation
	err := row.Scan(
		&ev.ID,
		&ev.Equation,
		&ev.Normalized,
		&ev.Inputs,
		&ev.Output,
		&ev.Rows,
		&ev.Outputs,
		&ev.Classification,
		&ev.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ev, nil
}
