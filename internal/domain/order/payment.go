package order

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xenking/mofer-pos/internal/domain/audit"
)

// PaymentStatus is the lifecycle state of a payment.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentApproved  PaymentStatus = "Approved"
	PaymentDeclined  PaymentStatus = "Declined"
	PaymentCancelled PaymentStatus = "Cancelled"
	PaymentRefunded  PaymentStatus = "Refunded"
)

// Settled reports whether a terminal has already reported on the payment.
func (s PaymentStatus) Settled() bool {
	return s == PaymentApproved || s == PaymentDeclined || s == PaymentCancelled
}

// PaymentMethod is how the customer pays.
type PaymentMethod string

const (
	MethodUnknown PaymentMethod = "Unknown"
	MethodCash    PaymentMethod = "Cash"
	MethodCard    PaymentMethod = "Card"
)

// Payment records one payment attempt for an order. Terminal metadata holds
// references only; card numbers and track data are never stored.
type Payment struct {
	ID                     uuid.UUID
	OrderID                uuid.UUID
	Method                 PaymentMethod
	Status                 PaymentStatus
	Amount                 decimal.Decimal
	TerminalTransactionRef *string
	ApprovalCode           *string
	ResponseCode           *string
	CardBrand              *string
	Last4                  *string
	CapturedAt             *time.Time
	audit.Fields
}

// PaymentMutation inspects a locked payment and its order and reports
// whether it changed them.
type PaymentMutation func(o *Order, p *Payment) (changed bool, err error)

// PaymentRepository applies changes to a payment and its order atomically.
type PaymentRepository interface {
	// UpdatePayment loads the payment and its order under a row lock, runs fn
	// and persists both when fn reports a change. It returns
	// ErrPaymentNotFound for an unknown id.
	UpdatePayment(ctx context.Context, paymentID uuid.UUID, fn PaymentMutation) error
}
