package postgres

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xenking/mofer-pos/internal/domain/catalog"
)

var (
	organizationExistsSQL = `SELECT EXISTS (
		SELECT 1 FROM organizations o WHERE o.id = $1 AND ` + notDeleted("o") + `)`

	locationExistsSQL = `SELECT EXISTS (
		SELECT 1 FROM locations l WHERE l.id = $2 AND l.organization_id = $1 AND ` + notDeleted("l") + `)`

	productsByIDsSQL = `SELECT p.id, p.organization_id, p.location_id, p.name, p.sku, p.base_price, p.is_active,
		p.created_at, p.updated_at, p.deleted_at, p.is_deleted
		FROM products p
		WHERE p.organization_id = $1 AND p.location_id = $2 AND p.id = ANY($3) AND ` + notDeleted("p")

	attachmentsSQL = `SELECT pmg.product_id, g.id, g.name, pmg.is_required, pmg.min_selected, pmg.max_selected, pmg.display_order
		FROM product_modifier_groups pmg
		JOIN modifier_groups g ON g.id = pmg.modifier_group_id AND ` + notDeleted("g") + `
		WHERE pmg.product_id = ANY($1) AND ` + notDeleted("pmg") + `
		ORDER BY pmg.product_id, pmg.display_order, g.name`

	optionsSQL = `SELECT o.id, o.modifier_group_id, o.name, o.price_delta, o.is_active
		FROM modifier_options o
		WHERE o.modifier_group_id = ANY($1) AND ` + notDeleted("o") + `
		ORDER BY o.modifier_group_id, o.name, o.id`
)

var _ catalog.Repository = (*CatalogRepository)(nil)

// CatalogRepository implements catalog.Repository backed by PostgreSQL.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository returns a CatalogRepository that uses the given pool.
func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

// OrganizationExists reports whether a live organization has the id.
func (r *CatalogRepository) OrganizationExists(ctx context.Context, orgID uuid.UUID) (bool, error) {
	var ok bool
	if err := r.pool.QueryRow(ctx, organizationExistsSQL, orgID).Scan(&ok); err != nil {
		return false, errors.Wrapf(err, "check organization %s", orgID)
	}
	return ok, nil
}

// LocationExists reports whether a live location belongs to the organization.
func (r *CatalogRepository) LocationExists(ctx context.Context, orgID, locationID uuid.UUID) (bool, error) {
	var ok bool
	if err := r.pool.QueryRow(ctx, locationExistsSQL, orgID, locationID).Scan(&ok); err != nil {
		return false, errors.Wrapf(err, "check location %s", locationID)
	}
	return ok, nil
}

// ProductsByIDs loads the requested products with their attachments and
// options in three queries and assembles them in memory.
func (r *CatalogRepository) ProductsByIDs(ctx context.Context, orgID, locationID uuid.UUID, ids []uuid.UUID) ([]catalog.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx, productsByIDsSQL, orgID, locationID, ids)
	if err != nil {
		return nil, errors.Wrap(err, "query products")
	}
	products, err := pgx.CollectRows(rows, scanProduct)
	if err != nil {
		return nil, errors.Wrap(err, "scan products")
	}
	if len(products) == 0 {
		return products, nil
	}

	productIDs := make([]uuid.UUID, len(products))
	for i, p := range products {
		productIDs[i] = p.ID
	}

	rows, err = r.pool.Query(ctx, attachmentsSQL, productIDs)
	if err != nil {
		return nil, errors.Wrap(err, "query attachments")
	}
	attachments, err := pgx.CollectRows(rows, scanAttachment)
	if err != nil {
		return nil, errors.Wrap(err, "scan attachments")
	}

	groupIDs := make([]uuid.UUID, 0, len(attachments))
	seen := make(map[uuid.UUID]struct{}, len(attachments))
	for _, a := range attachments {
		if _, ok := seen[a.GroupID]; ok {
			continue
		}
		seen[a.GroupID] = struct{}{}
		groupIDs = append(groupIDs, a.GroupID)
	}

	optionsByGroup := make(map[uuid.UUID][]catalog.Option, len(groupIDs))
	if len(groupIDs) > 0 {
		rows, err = r.pool.Query(ctx, optionsSQL, groupIDs)
		if err != nil {
			return nil, errors.Wrap(err, "query options")
		}
		options, err := pgx.CollectRows(rows, scanOption)
		if err != nil {
			return nil, errors.Wrap(err, "scan options")
		}
		for _, o := range options {
			optionsByGroup[o.GroupID] = append(optionsByGroup[o.GroupID], o)
		}
	}

	index := make(map[uuid.UUID]int, len(products))
	for i, p := range products {
		index[p.ID] = i
	}
	for _, a := range attachments {
		a.Options = optionsByGroup[a.GroupID]
		i := index[a.productID]
		products[i].Attachments = append(products[i].Attachments, a.Attachment)
	}
	return products, nil
}

type attachmentRow struct {
	productID uuid.UUID
	catalog.Attachment
}

func scanProduct(row pgx.CollectableRow) (catalog.Product, error) {
	var p catalog.Product
	err := row.Scan(
		&p.ID, &p.OrganizationID, &p.LocationID, &p.Name, &p.SKU, &p.BasePrice, &p.IsActive,
		&p.CreatedAt, &p.UpdatedAt, &p.DeletedAt, &p.IsDeleted,
	)
	return p, err
}

func scanAttachment(row pgx.CollectableRow) (attachmentRow, error) {
	var a attachmentRow
	err := row.Scan(
		&a.productID, &a.GroupID, &a.GroupName, &a.IsRequired,
		&a.MinSelected, &a.MaxSelected, &a.DisplayOrder,
	)
	return a, err
}

func scanOption(row pgx.CollectableRow) (catalog.Option, error) {
	var o catalog.Option
	err := row.Scan(&o.ID, &o.GroupID, &o.Name, &o.PriceDelta, &o.IsActive)
	return o, err
}
