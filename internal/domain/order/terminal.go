package order

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// TerminalStatus is the outcome reported by a payment terminal.
type TerminalStatus string

const (
	TerminalApproved  TerminalStatus = "Approved"
	TerminalDeclined  TerminalStatus = "Declined"
	TerminalCancelled TerminalStatus = "Cancelled"
)

// TerminalResult is a semi-integrated terminal callback. Only references are
// accepted; card numbers never reach this service.
type TerminalResult struct {
	Status                 TerminalStatus
	TerminalTransactionRef *string
	ApprovalCode           *string
	ResponseCode           *string
	CardBrand              *string
	Last4                  *string
}

// TerminalOutcome is the payment and order state after a terminal result.
type TerminalOutcome struct {
	PaymentID     uuid.UUID
	PaymentStatus PaymentStatus
	OrderID       uuid.UUID
	OrderStatus   Status
	OrderTotal    decimal.Decimal
}

// PaymentService applies terminal results to pending payments.
type PaymentService struct {
	payments PaymentRepository
	now      func() time.Time
}

// NewPaymentService creates a PaymentService. A nil now defaults to time.Now.
func NewPaymentService(payments PaymentRepository, now func() time.Time) *PaymentService {
	if now == nil {
		now = time.Now
	}
	return &PaymentService{payments: payments, now: now}
}

// ApplyTerminalResult moves a pending payment to the reported state. An
// approval also completes the order. A payment already settled by a terminal
// is returned unchanged, so terminals may safely resend callbacks.
func (s *PaymentService) ApplyTerminalResult(ctx context.Context, paymentID uuid.UUID, res TerminalResult) (*TerminalOutcome, error) {
	if paymentID == uuid.Nil {
		return nil, &ValidationError{Field: "paymentId", Reason: "is required"}
	}

	var (
		out     TerminalOutcome
		applied bool
	)
	err := s.payments.UpdatePayment(ctx, paymentID, func(o *Order, p *Payment) (bool, error) {
		changed, err := applyTerminalResult(o, p, res, s.now().UTC())
		if err != nil {
			return false, err
		}
		applied = changed
		out = TerminalOutcome{
			PaymentID:     p.ID,
			PaymentStatus: p.Status,
			OrderID:       o.ID,
			OrderStatus:   o.Status,
			OrderTotal:    o.Total,
		}
		return changed, nil
	})
	if err != nil {
		if errors.Is(err, ErrPaymentNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}

	if applied {
		zctx.From(ctx).Info("Terminal result applied",
			zap.Stringer("payment_id", out.PaymentID),
			zap.String("payment_status", string(out.PaymentStatus)),
			zap.String("order_status", string(out.OrderStatus)),
		)
	}
	return &out, nil
}

// applyTerminalResult mutates p and o in place. All checks run before the
// first mutation.
func applyTerminalResult(o *Order, p *Payment, res TerminalResult, now time.Time) (bool, error) {
	if p.Status.Settled() {
		return false, nil
	}
	if p.Status != PaymentPending {
		return false, &PaymentStateError{Current: p.Status}
	}

	if res.Last4 != nil && utf8.RuneCountInString(strings.TrimSpace(*res.Last4)) != 4 {
		return false, ErrInvalidLast4
	}
	last4 := trimTo(res.Last4, 4)

	var next PaymentStatus
	switch res.Status {
	case TerminalApproved:
		next = PaymentApproved
	case TerminalDeclined:
		next = PaymentDeclined
	case TerminalCancelled:
		next = PaymentCancelled
	default:
		return false, ErrUnknownTerminalStatus
	}

	p.TerminalTransactionRef = trimTo(res.TerminalTransactionRef, 128)
	p.ApprovalCode = trimTo(res.ApprovalCode, 32)
	p.ResponseCode = trimTo(res.ResponseCode, 32)
	p.CardBrand = trimTo(res.CardBrand, 32)
	p.Last4 = last4
	p.Status = next
	p.Touch(now)

	if next == PaymentApproved {
		p.CapturedAt = &now
		o.Status = StatusCompleted
		o.CompletedAt = &now
		o.Touch(now)
	}
	return true, nil
}

// trimTo trims v and cuts it to maxLen characters. Blank values become nil.
func trimTo(v *string, maxLen int) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil
	}
	if utf8.RuneCountInString(s) > maxLen {
		s = string([]rune(s)[:maxLen])
	}
	return &s
}
