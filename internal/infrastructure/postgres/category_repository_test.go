package postgres_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/multibodega-api/internal/domain"
	"github.com/jhoicas/multibodega-api/internal/infrastructure/postgres"
)

// ──────────────────────────────────────────────────────────────────────────────
// Borrar una categoría nunca se bloquea por productos asociados: el schema
// desliga con ON DELETE SET NULL y el adaptador emite un DELETE incondicional.
// Los productos sobreviven sin categoría.
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryDelete_IncondicionalConDesligue(t *testing.T) {
	q := &recordingQuerier{execTag: pgconn.NewCommandTag("DELETE 1")}
	repo := postgres.NewCategoryRepository(q)

	err := repo.Delete(context.Background(), 7)
	require.NoError(t, err)

	assert.Contains(t, q.lastSQL, "DELETE FROM categories")
	assert.NotContains(t, q.lastSQL, "SELECT",
		"no hay chequeo previo de productos asociados; el desligue es del schema")
	assert.Equal(t, []any{int64(7)}, q.lastArgs)
}

func TestCategoryDelete_InexistenteNotFound(t *testing.T) {
	q := &recordingQuerier{execTag: pgconn.NewCommandTag("DELETE 0")}
	repo := postgres.NewCategoryRepository(q)

	err := repo.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
