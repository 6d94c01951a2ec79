package postgres

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xenking/mofer-pos/internal/domain/auth"
	"github.com/xenking/mofer-pos/internal/domain/catalog"
)

// Upserts revive soft-deleted rows so a seed can reintroduce them.
const (
	upsertOrganizationSQL = `INSERT INTO organizations (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, updated_at = EXCLUDED.updated_at,
			is_deleted = FALSE, deleted_at = NULL`

	upsertLocationSQL = `INSERT INTO locations (id, organization_id, name, address_line1, city, region, postal_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, address_line1 = EXCLUDED.address_line1,
			city = EXCLUDED.city, region = EXCLUDED.region, postal_code = EXCLUDED.postal_code,
			updated_at = EXCLUDED.updated_at, is_deleted = FALSE, deleted_at = NULL`

	upsertModifierGroupSQL = `INSERT INTO modifier_groups (id, organization_id, location_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, updated_at = EXCLUDED.updated_at,
			is_deleted = FALSE, deleted_at = NULL`

	upsertModifierOptionSQL = `INSERT INTO modifier_options (id, modifier_group_id, name, price_delta, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		ON CONFLICT (id) DO UPDATE SET modifier_group_id = EXCLUDED.modifier_group_id, name = EXCLUDED.name,
			price_delta = EXCLUDED.price_delta, is_active = EXCLUDED.is_active,
			updated_at = EXCLUDED.updated_at, is_deleted = FALSE, deleted_at = NULL`

	upsertProductSQL = `INSERT INTO products (id, organization_id, location_id, name, sku, base_price, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, sku = EXCLUDED.sku,
			base_price = EXCLUDED.base_price, is_active = EXCLUDED.is_active,
			updated_at = EXCLUDED.updated_at, is_deleted = FALSE, deleted_at = NULL`

	upsertAttachmentSQL = `INSERT INTO product_modifier_groups (id, product_id, modifier_group_id, is_required,
			min_selected, max_selected, display_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		ON CONFLICT (id) DO UPDATE SET is_required = EXCLUDED.is_required,
			min_selected = EXCLUDED.min_selected, max_selected = EXCLUDED.max_selected,
			display_order = EXCLUDED.display_order,
			updated_at = EXCLUDED.updated_at, is_deleted = FALSE, deleted_at = NULL`

	upsertAPIKeySQL = `INSERT INTO api_keys (id, key_hash, name, scopes, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, TRUE, $5, $5)
		ON CONFLICT (id) DO UPDATE SET key_hash = EXCLUDED.key_hash, name = EXCLUDED.name,
			scopes = EXCLUDED.scopes, active = TRUE,
			updated_at = EXCLUDED.updated_at, is_deleted = FALSE, deleted_at = NULL`
)

// locationScopedSQL lists the live ids of catalog tables owned by a location.
var locationScopedSQL = map[string]string{
	"products": `SELECT p.id FROM products p
		WHERE p.location_id = $1 AND ` + notDeleted("p"),
	"modifier_groups": `SELECT g.id FROM modifier_groups g
		WHERE g.location_id = $1 AND ` + notDeleted("g"),
	"modifier_options": `SELECT o.id FROM modifier_options o
		JOIN modifier_groups g ON g.id = o.modifier_group_id
		WHERE g.location_id = $1 AND ` + notDeleted("o"),
	"product_modifier_groups": `SELECT pmg.id FROM product_modifier_groups pmg
		JOIN products p ON p.id = pmg.product_id
		WHERE p.location_id = $1 AND ` + notDeleted("pmg"),
}

// SeedAttachment is a product to modifier group link with its row id.
type SeedAttachment struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	catalog.Attachment
}

// SeedRepository writes catalog data and API keys for the seed tool.
type SeedRepository struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

// NewSeedRepository returns a SeedRepository that uses the given pool.
func NewSeedRepository(pool *pgxpool.Pool) *SeedRepository {
	return &SeedRepository{pool: pool, now: time.Now}
}

func (r *SeedRepository) exec(ctx context.Context, what string, id uuid.UUID, sql string, args ...any) error {
	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		return errors.Wrapf(err, "upsert %s %s", what, id)
	}
	return nil
}

// UpsertOrganization creates or updates an organization.
func (r *SeedRepository) UpsertOrganization(ctx context.Context, o catalog.Organization) error {
	return r.exec(ctx, "organization", o.ID, upsertOrganizationSQL, o.ID, o.Name, r.now().UTC())
}

// UpsertLocation creates or updates a location.
func (r *SeedRepository) UpsertLocation(ctx context.Context, l catalog.Location) error {
	return r.exec(ctx, "location", l.ID, upsertLocationSQL,
		l.ID, l.OrganizationID, l.Name, l.AddressLine1, l.City, l.Region, l.PostalCode, r.now().UTC(),
	)
}

// UpsertModifierGroup creates or updates a modifier group.
func (r *SeedRepository) UpsertModifierGroup(ctx context.Context, g catalog.ModifierGroup) error {
	return r.exec(ctx, "modifier group", g.ID, upsertModifierGroupSQL,
		g.ID, g.OrganizationID, g.LocationID, g.Name, r.now().UTC(),
	)
}

// UpsertModifierOption creates or updates a modifier option.
func (r *SeedRepository) UpsertModifierOption(ctx context.Context, o catalog.Option) error {
	return r.exec(ctx, "modifier option", o.ID, upsertModifierOptionSQL,
		o.ID, o.GroupID, o.Name, o.PriceDelta, o.IsActive, r.now().UTC(),
	)
}

// UpsertProduct creates or updates a product. Attachments are written
// separately with UpsertAttachment.
func (r *SeedRepository) UpsertProduct(ctx context.Context, p catalog.Product) error {
	return r.exec(ctx, "product", p.ID, upsertProductSQL,
		p.ID, p.OrganizationID, p.LocationID, p.Name, p.SKU, p.BasePrice, p.IsActive, r.now().UTC(),
	)
}

// UpsertAttachment creates or updates a product to modifier group link.
func (r *SeedRepository) UpsertAttachment(ctx context.Context, a SeedAttachment) error {
	return r.exec(ctx, "attachment", a.ID, upsertAttachmentSQL,
		a.ID, a.ProductID, a.GroupID, a.IsRequired, a.MinSelected, a.MaxSelected, a.DisplayOrder, r.now().UTC(),
	)
}

// UpsertAPIKey stores an active API key. KeyHash must already be hashed.
func (r *SeedRepository) UpsertAPIKey(ctx context.Context, k auth.APIKeyInfo) error {
	if _, err := r.pool.Exec(ctx, upsertAPIKeySQL, k.ID, k.KeyHash, k.Name, k.Scopes, r.now().UTC()); err != nil {
		return errors.Wrapf(err, "upsert api key %s", k.ID)
	}
	return nil
}

// LiveLocationIDs returns the ids of live rows in table that belong to the
// location.
func (r *SeedRepository) LiveLocationIDs(ctx context.Context, table string, locationID uuid.UUID) ([]uuid.UUID, error) {
	sql, ok := locationScopedSQL[table]
	if !ok {
		return nil, errors.Errorf("table %q is not location scoped", table)
	}
	rows, err := r.pool.Query(ctx, sql, locationID)
	if err != nil {
		return nil, errors.Wrapf(err, "list %s of location %s", table, locationID)
	}
	return pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
}

// LocationScopedTables returns the catalog tables LiveLocationIDs accepts,
// children first.
func LocationScopedTables() []string {
	return []string{"product_modifier_groups", "modifier_options", "products", "modifier_groups"}
}
