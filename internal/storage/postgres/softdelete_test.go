package postgres

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock implementations ---

type recordingQuerier struct {
	sql      string
	args     []any
	affected string
	err      error
}

func (q *recordingQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.sql = sql
	q.args = args
	return pgconn.NewCommandTag("UPDATE " + q.affected), q.err
}

func (q *recordingQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (q *recordingQuerier) QueryRow(context.Context, string, ...any) pgx.Row {
	return nil
}

// --- Tests ---

func TestNotDeleted(t *testing.T) {
	assert.Equal(t, "p.is_deleted = FALSE", notDeleted("p"))
}

func TestSoftDelete(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	id := uuid.New()

	q := &recordingQuerier{affected: "1"}
	changed, err := softDelete(ctx, q, "products", id, now)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, strings.HasPrefix(q.sql, "UPDATE products t SET is_deleted = TRUE"))
	assert.Contains(t, q.sql, "t.is_deleted = FALSE")
	assert.Equal(t, []any{id, now}, q.args)

	q = &recordingQuerier{affected: "0"}
	changed, err = softDelete(ctx, q, "products", id, now)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestSoftDelete_UnregisteredTable(t *testing.T) {
	q := &recordingQuerier{}
	_, err := softDelete(context.Background(), q, "pg_user; --", uuid.New(), time.Now())
	require.ErrorIs(t, err, ErrNotSoftDeletable)
	assert.Empty(t, q.sql)
}

func TestSoftDelete_ExecError(t *testing.T) {
	errDB := errors.New("connection reset")
	q := &recordingQuerier{err: errDB}
	_, err := softDelete(context.Background(), q, "orders", uuid.New(), time.Now())
	require.ErrorIs(t, err, errDB)
}

func TestLocationScopedTablesAreSoftDeletable(t *testing.T) {
	for _, table := range LocationScopedTables() {
		_, ok := softDeleteTables[table]
		assert.True(t, ok, table)
		_, ok = locationScopedSQL[table]
		assert.True(t, ok, table)
	}
}
