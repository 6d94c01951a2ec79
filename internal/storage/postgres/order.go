package postgres

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xenking/mofer-pos/internal/domain/order"
)

const externalRefConstraint = "orders_active_external_ref_key"

const (
	orderColumns = `o.id, o.organization_id, o.location_id, o.external_order_ref, o.status,
		o.subtotal, o.tax_total, o.total, o.completed_at,
		o.created_at, o.updated_at, o.deleted_at, o.is_deleted`

	itemColumns = `i.id, i.order_id, i.product_id, i.product_name, i.quantity,
		i.base_unit_price, i.modifier_unit_total, i.final_unit_price, i.line_total,
		i.created_at, i.updated_at, i.deleted_at, i.is_deleted`

	selectedOptionColumns = `s.id, s.order_item_id, s.modifier_group_id, s.modifier_option_id,
		s.group_name, s.option_name, s.price_delta,
		s.created_at, s.updated_at, s.deleted_at, s.is_deleted`

	paymentColumns = `p.id, p.order_id, p.method, p.status, p.amount,
		p.terminal_transaction_ref, p.approval_code, p.response_code, p.card_brand, p.last4, p.captured_at,
		p.created_at, p.updated_at, p.deleted_at, p.is_deleted`
)

const (
	insertOrderSQL = `INSERT INTO orders (id, organization_id, location_id, external_order_ref, status,
		subtotal, tax_total, total, completed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	insertItemSQL = `INSERT INTO order_items (id, order_id, product_id, product_name, quantity,
		base_unit_price, modifier_unit_total, final_unit_price, line_total, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	insertSelectedOptionSQL = `INSERT INTO order_item_selected_options (id, order_item_id, modifier_group_id,
		modifier_option_id, group_name, option_name, price_delta, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	insertPaymentSQL = `INSERT INTO payments (id, order_id, method, status, amount,
		terminal_transaction_ref, approval_code, response_code, card_brand, last4, captured_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
)

var (
	findOrderByRefSQL = `SELECT ` + orderColumns + `
		FROM orders o
		WHERE o.organization_id = $1 AND o.location_id = $2 AND o.external_order_ref = $3 AND ` + notDeleted("o")

	getOrderSQL = `SELECT ` + orderColumns + `
		FROM orders o
		WHERE o.organization_id = $1 AND o.id = $2 AND ` + notDeleted("o")

	orderItemsSQL = `SELECT ` + itemColumns + `
		FROM order_items i
		WHERE i.order_id = $1 AND ` + notDeleted("i") + `
		ORDER BY i.position`

	selectedOptionsSQL = `SELECT ` + selectedOptionColumns + `
		FROM order_item_selected_options s
		WHERE s.order_item_id = ANY($1) AND ` + notDeleted("s") + `
		ORDER BY s.order_item_id, s.position`

	orderPaymentsSQL = `SELECT ` + paymentColumns + `
		FROM payments p
		WHERE p.order_id = $1 AND ` + notDeleted("p") + `
		ORDER BY p.created_at, p.id`

	latestPaymentSQL = `SELECT ` + paymentColumns + `
		FROM payments p
		WHERE p.order_id = $1 AND ` + notDeleted("p") + `
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT 1`

	latestPaymentsSQL = `SELECT DISTINCT ON (p.order_id) ` + paymentColumns + `
		FROM payments p
		WHERE p.order_id = ANY($1) AND ` + notDeleted("p") + `
		ORDER BY p.order_id, p.created_at DESC, p.id DESC`

	// Optional filters are passed as NULL.
	listOrdersFilter = `WHERE o.organization_id = $1
		AND ($2::uuid IS NULL OR o.location_id = $2)
		AND ($3::text IS NULL OR o.status = $3)
		AND ($4::timestamptz IS NULL OR o.created_at >= $4)
		AND ($5::timestamptz IS NULL OR o.created_at < $5)
		AND ` + notDeleted("o")

	countOrdersSQL = `SELECT count(*) FROM orders o ` + listOrdersFilter

	listOrdersSQL = `SELECT ` + orderColumns + `, COALESCE(l.name, '(Unknown Location)')
		FROM orders o
		LEFT JOIN locations l ON l.id = o.location_id AND ` + notDeleted("l") + `
		` + listOrdersFilter + `
		ORDER BY o.created_at DESC, o.id DESC
		LIMIT $6 OFFSET $7`
)

var _ order.Repository = (*OrderRepository)(nil)

// OrderRepository implements order.Repository backed by PostgreSQL.
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository returns an OrderRepository that uses the given pool.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// FindByExternalRef returns the order header holding the idempotency key.
func (r *OrderRepository) FindByExternalRef(ctx context.Context, orgID, locationID uuid.UUID, ref string) (*order.Order, error) {
	rows, err := r.pool.Query(ctx, findOrderByRefSQL, orgID, locationID, ref)
	if err != nil {
		return nil, errors.Wrapf(err, "find order by ref %q", ref)
	}
	o, err := pgx.CollectExactlyOneRow(rows, scanOrder)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrNotFound
		}
		return nil, errors.Wrapf(err, "find order by ref %q", ref)
	}
	return &o, nil
}

// LatestPayment returns the most recent payment of the order.
func (r *OrderRepository) LatestPayment(ctx context.Context, orderID uuid.UUID) (*order.Payment, error) {
	rows, err := r.pool.Query(ctx, latestPaymentSQL, orderID)
	if err != nil {
		return nil, errors.Wrapf(err, "get latest payment of order %s", orderID)
	}
	p, err := pgx.CollectExactlyOneRow(rows, scanPayment)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrPaymentNotFound
		}
		return nil, errors.Wrapf(err, "get latest payment of order %s", orderID)
	}
	return &p, nil
}

// Create inserts the order graph in a single transaction. A unique
// violation on the idempotency key is reported as
// order.ErrDuplicateExternalRef and nothing is written.
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	_, err = tx.Exec(ctx, insertOrderSQL,
		o.ID, o.OrganizationID, o.LocationID, o.ExternalOrderRef, string(o.Status),
		o.Subtotal, o.TaxTotal, o.Total, o.CompletedAt, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, externalRefConstraint) {
			return order.ErrDuplicateExternalRef
		}
		return errors.Wrapf(err, "insert order %s", o.ID)
	}

	b := &pgx.Batch{}
	for i, it := range o.Items {
		b.Queue(insertItemSQL,
			it.ID, o.ID, it.ProductID, it.ProductName, it.Quantity,
			it.BaseUnitPrice, it.ModifierUnitTotal, it.FinalUnitPrice, it.LineTotal, i,
			it.CreatedAt, it.UpdatedAt,
		)
		for j, s := range it.SelectedOptions {
			b.Queue(insertSelectedOptionSQL,
				s.ID, it.ID, s.GroupID, s.OptionID, s.GroupName, s.OptionName, s.PriceDelta, j,
				s.CreatedAt, s.UpdatedAt,
			)
		}
	}
	for _, p := range o.Payments {
		b.Queue(insertPaymentSQL,
			p.ID, o.ID, string(p.Method), string(p.Status), p.Amount,
			p.TerminalTransactionRef, p.ApprovalCode, p.ResponseCode, p.CardBrand, p.Last4, p.CapturedAt,
			p.CreatedAt, p.UpdatedAt,
		)
	}
	if err := tx.SendBatch(ctx, b).Close(); err != nil {
		return errors.Wrapf(err, "insert items of order %s", o.ID)
	}

	if err := tx.Commit(ctx); err != nil {
		if isUniqueViolation(err, externalRefConstraint) {
			return order.ErrDuplicateExternalRef
		}
		return errors.Wrap(err, "commit tx")
	}
	return nil
}

// Get returns the order with its items, selected options and payments.
func (r *OrderRepository) Get(ctx context.Context, orgID, orderID uuid.UUID) (*order.Order, error) {
	rows, err := r.pool.Query(ctx, getOrderSQL, orgID, orderID)
	if err != nil {
		return nil, errors.Wrapf(err, "get order %s", orderID)
	}
	o, err := pgx.CollectExactlyOneRow(rows, scanOrder)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrNotFound
		}
		return nil, errors.Wrapf(err, "get order %s", orderID)
	}

	rows, err = r.pool.Query(ctx, orderItemsSQL, o.ID)
	if err != nil {
		return nil, errors.Wrap(err, "query order items")
	}
	o.Items, err = pgx.CollectRows(rows, scanItem)
	if err != nil {
		return nil, errors.Wrap(err, "scan order items")
	}

	if len(o.Items) > 0 {
		itemIDs := make([]uuid.UUID, len(o.Items))
		index := make(map[uuid.UUID]int, len(o.Items))
		for i, it := range o.Items {
			itemIDs[i] = it.ID
			index[it.ID] = i
		}
		rows, err = r.pool.Query(ctx, selectedOptionsSQL, itemIDs)
		if err != nil {
			return nil, errors.Wrap(err, "query selected options")
		}
		selected, err := pgx.CollectRows(rows, scanSelectedOption)
		if err != nil {
			return nil, errors.Wrap(err, "scan selected options")
		}
		for _, s := range selected {
			i := index[s.OrderItemID]
			o.Items[i].SelectedOptions = append(o.Items[i].SelectedOptions, s)
		}
	}

	rows, err = r.pool.Query(ctx, orderPaymentsSQL, o.ID)
	if err != nil {
		return nil, errors.Wrap(err, "query payments")
	}
	o.Payments, err = pgx.CollectRows(rows, scanPayment)
	if err != nil {
		return nil, errors.Wrap(err, "scan payments")
	}
	return &o, nil
}

// List returns one page of order headers with location names and latest
// payments.
func (r *OrderRepository) List(ctx context.Context, q order.ListQuery) (*order.ListPage, error) {
	var status *string
	if q.Status != nil {
		s := string(*q.Status)
		status = &s
	}
	args := []any{q.OrganizationID, q.LocationID, status, q.From, q.To}

	page := &order.ListPage{Query: q}
	if err := r.pool.QueryRow(ctx, countOrdersSQL, args...).Scan(&page.TotalCount); err != nil {
		return nil, errors.Wrap(err, "count orders")
	}

	offset := (q.Page - 1) * q.PageSize
	rows, err := r.pool.Query(ctx, listOrdersSQL, append(args, q.PageSize, offset)...)
	if err != nil {
		return nil, errors.Wrap(err, "list orders")
	}
	page.Items, err = pgx.CollectRows(rows, scanSummary)
	if err != nil {
		return nil, errors.Wrap(err, "scan orders")
	}
	if len(page.Items) == 0 {
		return page, nil
	}

	ids := make([]uuid.UUID, len(page.Items))
	index := make(map[uuid.UUID]int, len(page.Items))
	for i, s := range page.Items {
		ids[i] = s.ID
		index[s.ID] = i
	}
	rows, err = r.pool.Query(ctx, latestPaymentsSQL, ids)
	if err != nil {
		return nil, errors.Wrap(err, "query latest payments")
	}
	payments, err := pgx.CollectRows(rows, scanPayment)
	if err != nil {
		return nil, errors.Wrap(err, "scan latest payments")
	}
	for _, p := range payments {
		page.Items[index[p.OrderID]].LatestPayment = &p
	}
	return page, nil
}

func scanOrder(row pgx.CollectableRow) (order.Order, error) {
	var (
		o      order.Order
		status string
	)
	err := row.Scan(
		&o.ID, &o.OrganizationID, &o.LocationID, &o.ExternalOrderRef, &status,
		&o.Subtotal, &o.TaxTotal, &o.Total, &o.CompletedAt,
		&o.CreatedAt, &o.UpdatedAt, &o.DeletedAt, &o.IsDeleted,
	)
	o.Status = order.Status(status)
	return o, err
}

func scanSummary(row pgx.CollectableRow) (order.Summary, error) {
	var (
		s      order.Summary
		status string
	)
	err := row.Scan(
		&s.ID, &s.OrganizationID, &s.LocationID, &s.ExternalOrderRef, &status,
		&s.Subtotal, &s.TaxTotal, &s.Total, &s.CompletedAt,
		&s.CreatedAt, &s.UpdatedAt, &s.DeletedAt, &s.IsDeleted,
		&s.LocationName,
	)
	s.Status = order.Status(status)
	return s, err
}

func scanItem(row pgx.CollectableRow) (order.Item, error) {
	var it order.Item
	err := row.Scan(
		&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.Quantity,
		&it.BaseUnitPrice, &it.ModifierUnitTotal, &it.FinalUnitPrice, &it.LineTotal,
		&it.CreatedAt, &it.UpdatedAt, &it.DeletedAt, &it.IsDeleted,
	)
	return it, err
}

func scanSelectedOption(row pgx.CollectableRow) (order.SelectedOption, error) {
	var s order.SelectedOption
	err := row.Scan(
		&s.ID, &s.OrderItemID, &s.GroupID, &s.OptionID,
		&s.GroupName, &s.OptionName, &s.PriceDelta,
		&s.CreatedAt, &s.UpdatedAt, &s.DeletedAt, &s.IsDeleted,
	)
	return s, err
}

func scanPayment(row pgx.CollectableRow) (order.Payment, error) {
	var (
		p              order.Payment
		method, status string
	)
	err := row.Scan(
		&p.ID, &p.OrderID, &method, &status, &p.Amount,
		&p.TerminalTransactionRef, &p.ApprovalCode, &p.ResponseCode, &p.CardBrand, &p.Last4, &p.CapturedAt,
		&p.CreatedAt, &p.UpdatedAt, &p.DeletedAt, &p.IsDeleted,
	)
	p.Method = order.PaymentMethod(method)
	p.Status = order.PaymentStatus(status)
	return p, err
}
