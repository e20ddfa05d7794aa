package postgres_test

import (
	"context"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/multibodega-api/internal/domain/entity"
	"github.com/jhoicas/multibodega-api/internal/domain/repository"
	"github.com/jhoicas/multibodega-api/internal/infrastructure/postgres"
	"github.com/jhoicas/multibodega-api/pkg/textnorm"
)

// ──────────────────────────────────────────────────────────────────────────────
// Los adaptadores se prueban contra un Querier que captura el SQL y los
// argumentos enviados al store. El contrato crítico del producto es la
// búsqueda: término foldado contra columna foldada, nunca un solo lado.
// ──────────────────────────────────────────────────────────────────────────────

// recordingQuerier captura la última sentencia y sus argumentos; las
// respuestas se configuran por test.
type recordingQuerier struct {
	lastSQL  string
	lastArgs []any
	execTag  pgconn.CommandTag
	execErr  error
}

var _ postgres.Querier = (*recordingQuerier)(nil)

func (r *recordingQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	r.lastSQL, r.lastArgs = sql, args
	return r.execTag, r.execErr
}

func (r *recordingQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	r.lastSQL, r.lastArgs = sql, args
	return emptyRows{}, nil
}

func (r *recordingQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	r.lastSQL, r.lastArgs = sql, args
	return idRow{}
}

// idRow responde al RETURNING id de los INSERT.
type idRow struct{}

func (idRow) Scan(dest ...any) error {
	if len(dest) > 0 {
		if id, ok := dest[0].(*int64); ok {
			*id = 1
		}
	}
	return nil
}

// emptyRows es un pgx.Rows sin filas.
type emptyRows struct{}

func (emptyRows) Close()                                       {}
func (emptyRows) Err() error                                   { return nil }
func (emptyRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (emptyRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (emptyRows) Next() bool                                   { return false }
func (emptyRows) Scan(...any) error                            { return nil }
func (emptyRows) Values() ([]any, error)                       { return nil, nil }
func (emptyRows) RawValues() [][]byte                          { return nil }
func (emptyRows) Conn() *pgx.Conn                              { return nil }

// ── columnas de búsqueda foldadas ─────────────────────────────────────────────

func TestProductCreate_EscribeColumnasDeBusquedaFoldadas(t *testing.T) {
	q := &recordingQuerier{}
	repo := postgres.NewProductRepository(q)

	err := repo.Create(context.Background(), &entity.Product{
		Name: "Café Premium",
		SKU:  "CAF-ÑU1",
	})
	require.NoError(t, err)

	assert.Contains(t, q.lastSQL, "name_search")
	assert.Contains(t, q.lastSQL, "sku_search")
	assert.Contains(t, q.lastArgs, "cafe premium",
		"name_search se escribe con el mismo fold que usa la búsqueda")
	assert.Contains(t, q.lastArgs, "caf-nu1",
		"sku_search también se folda al escribir")
}

func TestProductUpdate_RefrescaColumnasDeBusqueda(t *testing.T) {
	q := &recordingQuerier{execTag: pgconn.NewCommandTag("UPDATE 1")}
	repo := postgres.NewProductRepository(q)

	err := repo.Update(context.Background(), &entity.Product{
		ID:   1,
		Name: "Camión Grúa",
		SKU:  "CAM-01",
	})
	require.NoError(t, err)

	assert.Contains(t, q.lastSQL, "name_search = $8")
	assert.Contains(t, q.lastArgs, "camion grua",
		"renombrar el producto debe refoldar su columna de búsqueda")
}

// El término llega foldado desde el caso de uso y debe compararse contra las
// columnas foldadas: foldear solo el término haría inencontrables los nombres
// con tilde ("Café" no contiene "cafe").
func TestProductList_BuscaSobreColumnasFoldadas(t *testing.T) {
	q := &recordingQuerier{}
	repo := postgres.NewProductRepository(q)

	term := textnorm.Fold("Café")
	_, _, err := repo.List(context.Background(), repository.ProductFilter{
		Search: term,
		Limit:  50,
	})
	require.NoError(t, err)

	assert.Contains(t, q.lastSQL, "p.name_search LIKE")
	assert.Contains(t, q.lastSQL, "p.sku_search LIKE")
	assert.NotContains(t, q.lastSQL, "p.name ILIKE",
		"la comparación nunca va contra la columna sin foldar")
	assert.Contains(t, q.lastArgs, "%"+term+"%")

	// Round-trip: el término foldado casa con el valor que Create escribió.
	stored := textnorm.Fold("Café Premium")
	assert.True(t, strings.Contains(stored, term),
		"término foldado %q debe ser substring de la columna foldada %q", term, stored)
}

func TestProductList_IncluyeConteoTotal(t *testing.T) {
	q := &recordingQuerier{}
	repo := postgres.NewProductRepository(q)

	_, total, err := repo.List(context.Background(), repository.ProductFilter{Limit: 10})
	require.NoError(t, err)

	assert.Contains(t, q.lastSQL, "COUNT(*) OVER ()",
		"el total filtrado se calcula antes del LIMIT, en la misma consulta")
	assert.Zero(t, total, "sin filas el total es cero")
}
