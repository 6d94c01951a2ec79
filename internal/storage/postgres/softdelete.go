package postgres

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/xenking/mofer-pos/internal/domain/audit"
)

// softDeleteTables lists every table carrying the audit columns. Rows in
// these tables are never removed, only flagged.
var softDeleteTables = map[string]struct{}{
	"organizations":               {},
	"locations":                   {},
	"products":                    {},
	"modifier_groups":             {},
	"modifier_options":            {},
	"product_modifier_groups":     {},
	"orders":                      {},
	"order_items":                 {},
	"order_item_selected_options": {},
	"payments":                    {},
	"api_keys":                    {},
}

// ErrNotSoftDeletable is returned by SoftDelete for an unregistered table.
var ErrNotSoftDeletable = errors.New("table does not support soft delete")

// notDeleted is the live-row predicate for the table aliased as alias.
func notDeleted(alias string) string {
	return alias + ".is_deleted = FALSE"
}

// softDelete flags a single live row as deleted. It reports whether a row
// was changed.
func softDelete(ctx context.Context, q querier, table string, id any, now time.Time) (bool, error) {
	if _, ok := softDeleteTables[table]; !ok {
		return false, errors.Wrap(ErrNotSoftDeletable, table)
	}
	var stamp audit.Fields
	stamp.MarkDeleted(now)

	// table is taken from softDeleteTables only.
	sql := "UPDATE " + table + " t SET is_deleted = TRUE, deleted_at = $2, updated_at = $2 WHERE t.id = $1 AND " + notDeleted("t")
	tag, err := q.Exec(ctx, sql, id, *stamp.DeletedAt)
	if err != nil {
		return false, errors.Wrapf(err, "soft delete %s", table)
	}
	return tag.RowsAffected() > 0, nil
}

// SoftDelete flags the row with the given id in table as deleted.
func (r *SeedRepository) SoftDelete(ctx context.Context, table string, id uuid.UUID) (bool, error) {
	return softDelete(ctx, r.pool, table, id, r.now().UTC())
}
