package postgres

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xenking/mofer-pos/internal/domain/order"
)

var (
	lockPaymentSQL = `SELECT ` + paymentColumns + `
		FROM payments p
		WHERE p.id = $1 AND ` + notDeleted("p") + `
		FOR UPDATE`

	lockOrderSQL = `SELECT ` + orderColumns + `
		FROM orders o
		WHERE o.id = $1
		FOR UPDATE`
)

const (
	updatePaymentSQL = `UPDATE payments SET status = $2, terminal_transaction_ref = $3, approval_code = $4,
		response_code = $5, card_brand = $6, last4 = $7, captured_at = $8, updated_at = $9
		WHERE id = $1`

	updateOrderStatusSQL = `UPDATE orders SET status = $2, completed_at = $3, updated_at = $4
		WHERE id = $1`
)

var _ order.PaymentRepository = (*PaymentRepository)(nil)

// PaymentRepository implements order.PaymentRepository backed by PostgreSQL.
type PaymentRepository struct {
	pool *pgxpool.Pool
}

// NewPaymentRepository returns a PaymentRepository that uses the given pool.
func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{pool: pool}
}

// UpdatePayment locks the payment row, then its order, and applies fn inside
// one transaction. Concurrent callbacks for the same payment serialize on the
// payment lock.
func (r *PaymentRepository) UpdatePayment(ctx context.Context, paymentID uuid.UUID, fn order.PaymentMutation) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	rows, err := tx.Query(ctx, lockPaymentSQL, paymentID)
	if err != nil {
		return errors.Wrapf(err, "lock payment %s", paymentID)
	}
	p, err := pgx.CollectExactlyOneRow(rows, scanPayment)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return order.ErrPaymentNotFound
		}
		return errors.Wrapf(err, "lock payment %s", paymentID)
	}

	rows, err = tx.Query(ctx, lockOrderSQL, p.OrderID)
	if err != nil {
		return errors.Wrapf(err, "lock order %s", p.OrderID)
	}
	o, err := pgx.CollectExactlyOneRow(rows, scanOrder)
	if err != nil {
		return errors.Wrapf(err, "lock order %s", p.OrderID)
	}

	changed, err := fn(&o, &p)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	if _, err := tx.Exec(ctx, updatePaymentSQL,
		p.ID, string(p.Status), p.TerminalTransactionRef, p.ApprovalCode,
		p.ResponseCode, p.CardBrand, p.Last4, p.CapturedAt, p.UpdatedAt,
	); err != nil {
		return errors.Wrapf(err, "update payment %s", p.ID)
	}
	if _, err := tx.Exec(ctx, updateOrderStatusSQL,
		o.ID, string(o.Status), o.CompletedAt, o.UpdatedAt,
	); err != nil {
		return errors.Wrapf(err, "update order %s", o.ID)
	}

	if err := tx.Commit(ctx); err != nil {
		return errors.Wrap(err, "commit tx")
	}
	return nil
}
