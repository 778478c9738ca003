package es

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/booltable/internal/domain"
	"github.com/DjordjeVuckovic/booltable/internal/storage"
	"github.com/DjordjeVuckovic/booltable/pkg/pagination"
	pkgtesting "github.com/DjordjeVuckovic/booltable/pkg/testing"
)

func sample(equation string, created time.Time) domain.Evaluation {
	return domain.Evaluation{
		ID:             uuid.New(),
		Equation:       equation,
		Normalized:     equation,
		Inputs:         []string{"A"},
		Output:         "Z",
		Rows:           []string{"0", "1"},
		Outputs:        "10",
		Classification: "contingent",
		CreatedAt:      created,
	}
}

func TestDocument_RoundTrip(t *testing.T) {
	ev := sample("NOT A = Z", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))

	doc := toDocument(ev)
	assert.Equal(t, ev.ID.String(), doc.ID)
	assert.Equal(t, 1, doc.InputCount)

	back, err := doc.toDomain()
	require.NoError(t, err)
	assert.Equal(t, ev, back)
}

func TestDocument_AssignsMissingIdentity(t *testing.T) {
	doc := toDocument(domain.Evaluation{Equation: "A = A"})
	_, err := uuid.Parse(doc.ID)
	assert.NoError(t, err)
	assert.False(t, doc.CreatedAt.IsZero())

	_, err = Document{ID: "not-a-uuid"}.toDomain()
	assert.Error(t, err)
}

func TestStore_Integration(t *testing.T) {
	if os.Getenv("INTEGRATION") != "1" {
		t.Skip("set INTEGRATION=1 to run elasticsearch tests")
	}

	ctx := context.Background()
	container, err := pkgtesting.NewESContainer(ctx, pkgtesting.ESConfig{})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(); err != nil {
			t.Logf("failed to terminate elasticsearch container: %v", err)
		}
	})

	store, err := NewStore(ctx, ClientConfig{
		Addresses: []string{container.Address},
		IndexName: "evaluations_test",
	})
	require.NoError(t, err)
	assert.True(t, store.Healthy(ctx))

	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	first := sample("A = Z", base)
	id, err := store.Save(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, first.ID, id)

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "A = Z", got.Equation)
	assert.Equal(t, []string{"0", "1"}, got.Rows)

	_, err = store.Get(ctx, uuid.New())
	assert.True(t, errors.Is(err, storage.ErrNotFound))

	require.NoError(t, store.SaveBulk(ctx, []domain.Evaluation{
		sample("B = Z", base.Add(time.Minute)),
		sample("C = Z", base.Add(2*time.Minute)),
	}))

	res, err := store.List(ctx, pagination.OffsetRequest{Page: 1, Size: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Total)
	assert.True(t, res.HasMore)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "C = Z", res.Items[0].Equation)
}
