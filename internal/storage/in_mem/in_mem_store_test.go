package in_mem

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/booltable/internal/domain"
	"github.com/DjordjeVuckovic/booltable/internal/storage"
	"github.com/DjordjeVuckovic/booltable/pkg/pagination"
)

func evaluation(i int, created time.Time) domain.Evaluation {
	return domain.Evaluation{
		Equation:  fmt.Sprintf("v%d = Z", i),
		Inputs:    []string{fmt.Sprintf("v%d", i)},
		Output:    "Z",
		Rows:      []string{"0", "1"},
		Outputs:   "01",
		CreatedAt: created,
	}
}

func TestStore_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	id, err := s.Save(ctx, evaluation(1, time.Now()))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "v1 = Z", got.Equation)

	_, err = s.Get(ctx, uuid.New())
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestStore_SaveKeepsExistingID(t *testing.T) {
	s := NewStore()
	ev := evaluation(1, time.Now())
	ev.ID = uuid.New()

	id, err := s.Save(context.Background(), ev)
	require.NoError(t, err)
	assert.Equal(t, ev.ID, id)
}

func TestStore_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	var evs []domain.Evaluation
	for i := range 5 {
		evs = append(evs, evaluation(i, base.Add(time.Duration(i)*time.Minute)))
	}
	require.NoError(t, s.SaveBulk(ctx, evs))

	tests := []struct {
		page      pagination.OffsetRequest
		equations []string
		hasMore   bool
	}{
		{page: pagination.OffsetRequest{Page: 1, Size: 2}, equations: []string{"v4 = Z", "v3 = Z"}, hasMore: true},
		{page: pagination.OffsetRequest{Page: 3, Size: 2}, equations: []string{"v0 = Z"}, hasMore: false},
		{page: pagination.OffsetRequest{Page: 9, Size: 2}, equations: nil, hasMore: false},
		{page: pagination.OffsetRequest{Page: -1, Size: -1}, equations: []string{"v4 = Z", "v3 = Z", "v2 = Z", "v1 = Z", "v0 = Z"}, hasMore: false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("page %d", tt.page.Page), func(t *testing.T) {
			res, err := s.List(ctx, tt.page)
			require.NoError(t, err)
			assert.Equal(t, int64(5), res.Total)
			assert.Equal(t, tt.hasMore, res.HasMore)

			var got []string
			for _, ev := range res.Items {
				got = append(got, ev.Equation)
			}
			assert.Equal(t, tt.equations, got)
		})
	}
}

func TestStore_ConcurrentSaves(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Save(ctx, evaluation(i, time.Now()))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, s.Snapshot(), 50)
}
