package order

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/mofer-pos/internal/domain/audit"
)

// --- Mock implementations ---

type mockPaymentRepo struct {
	order   Order
	payment Payment
	writes  int
}

func (m *mockPaymentRepo) UpdatePayment(_ context.Context, paymentID uuid.UUID, fn PaymentMutation) error {
	if paymentID != m.payment.ID {
		return ErrPaymentNotFound
	}
	o, p := m.order, m.payment
	changed, err := fn(&o, &p)
	if err != nil {
		return err
	}
	if changed {
		m.order, m.payment = o, p
		m.writes++
	}
	return nil
}

// --- Helpers ---

var createdAt = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

func newPendingPayment() *mockPaymentRepo {
	o := Order{
		ID:     uuid.New(),
		Status: StatusDraft,
		Total:  decimal.RequireFromString("11.13"),
		Fields: audit.New(createdAt),
	}
	return &mockPaymentRepo{
		order: o,
		payment: Payment{
			ID:      uuid.New(),
			OrderID: o.ID,
			Method:  MethodCard,
			Status:  PaymentPending,
			Amount:  o.Total,
			Fields:  audit.New(createdAt),
		},
	}
}

func ptr(s string) *string { return &s }

func newPaymentService(repo PaymentRepository) *PaymentService {
	return NewPaymentService(repo, func() time.Time { return fixedNow })
}

// --- Tests ---

func TestApplyTerminalResult_Approved(t *testing.T) {
	repo := newPendingPayment()
	svc := newPaymentService(repo)

	out, err := svc.ApplyTerminalResult(context.Background(), repo.payment.ID, TerminalResult{
		Status:                 TerminalApproved,
		TerminalTransactionRef: ptr("  TXN-001  "),
		ApprovalCode:           ptr("A1B2C3"),
		ResponseCode:           ptr("00"),
		CardBrand:              ptr("Visa"),
		Last4:                  ptr("4242"),
	})
	require.NoError(t, err)

	assert.Equal(t, PaymentApproved, out.PaymentStatus)
	assert.Equal(t, StatusCompleted, out.OrderStatus)
	assert.Equal(t, repo.order.ID, out.OrderID)
	assert.True(t, decimal.RequireFromString("11.13").Equal(out.OrderTotal))

	p := repo.payment
	require.NotNil(t, p.TerminalTransactionRef)
	assert.Equal(t, "TXN-001", *p.TerminalTransactionRef)
	assert.Equal(t, "4242", *p.Last4)
	assert.Equal(t, "Visa", *p.CardBrand)
	require.NotNil(t, p.CapturedAt)
	assert.Equal(t, fixedNow, *p.CapturedAt)
	assert.Equal(t, fixedNow, p.UpdatedAt)
	assert.Equal(t, createdAt, p.CreatedAt)

	require.NotNil(t, repo.order.CompletedAt)
	assert.Equal(t, fixedNow, *repo.order.CompletedAt)
	assert.Equal(t, fixedNow, repo.order.UpdatedAt)
	assert.Equal(t, 1, repo.writes)
}

func TestApplyTerminalResult_DeclinedAndCancelledLeaveOrder(t *testing.T) {
	for _, st := range []TerminalStatus{TerminalDeclined, TerminalCancelled} {
		t.Run(string(st), func(t *testing.T) {
			repo := newPendingPayment()
			svc := newPaymentService(repo)

			out, err := svc.ApplyTerminalResult(context.Background(), repo.payment.ID, TerminalResult{
				Status:       st,
				ResponseCode: ptr("05"),
			})
			require.NoError(t, err)

			assert.Equal(t, PaymentStatus(st), out.PaymentStatus)
			assert.Equal(t, StatusDraft, out.OrderStatus)
			assert.Nil(t, repo.payment.CapturedAt)
			assert.Nil(t, repo.order.CompletedAt)
			assert.Equal(t, createdAt, repo.order.UpdatedAt)
			assert.Equal(t, "05", *repo.payment.ResponseCode)
		})
	}
}

func TestApplyTerminalResult_ResendIsNoop(t *testing.T) {
	repo := newPendingPayment()
	svc := newPaymentService(repo)
	ctx := context.Background()

	_, err := svc.ApplyTerminalResult(ctx, repo.payment.ID, TerminalResult{Status: TerminalApproved, Last4: ptr("4242")})
	require.NoError(t, err)
	before := repo.payment

	// Later callbacks, even contradictory or malformed ones, change nothing.
	for _, res := range []TerminalResult{
		{Status: TerminalApproved},
		{Status: TerminalDeclined, Last4: ptr("0000")},
		{Status: "Bogus"},
		{Status: TerminalCancelled, Last4: ptr("12")},
	} {
		out, err := svc.ApplyTerminalResult(ctx, repo.payment.ID, res)
		require.NoError(t, err)
		assert.Equal(t, PaymentApproved, out.PaymentStatus)
		assert.Equal(t, StatusCompleted, out.OrderStatus)
	}
	assert.Equal(t, before, repo.payment)
	assert.Equal(t, 1, repo.writes)
}

func TestApplyTerminalResult_RefundedPaymentRejected(t *testing.T) {
	repo := newPendingPayment()
	repo.payment.Status = PaymentRefunded
	svc := newPaymentService(repo)

	_, err := svc.ApplyTerminalResult(context.Background(), repo.payment.ID, TerminalResult{Status: TerminalApproved})

	var pse *PaymentStateError
	require.ErrorAs(t, err, &pse)
	assert.Equal(t, PaymentRefunded, pse.Current)
	assert.Zero(t, repo.writes)
}

func TestApplyTerminalResult_Validation(t *testing.T) {
	tests := []struct {
		name string
		res  TerminalResult
		want error
	}{
		{name: "short last4", res: TerminalResult{Status: TerminalApproved, Last4: ptr("123")}, want: ErrInvalidLast4},
		{name: "long last4", res: TerminalResult{Status: TerminalApproved, Last4: ptr("12345")}, want: ErrInvalidLast4},
		{name: "empty last4", res: TerminalResult{Status: TerminalApproved, Last4: ptr("")}, want: ErrInvalidLast4},
		{name: "blank last4", res: TerminalResult{Status: TerminalApproved, Last4: ptr("  ")}, want: ErrInvalidLast4},
		{name: "unknown status", res: TerminalResult{Status: "Voided"}, want: ErrUnknownTerminalStatus},
		{name: "empty status", res: TerminalResult{}, want: ErrUnknownTerminalStatus},
		// last4 is checked before status.
		{name: "both invalid", res: TerminalResult{Status: "Voided", Last4: ptr("1")}, want: ErrInvalidLast4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newPendingPayment()
			svc := newPaymentService(repo)

			_, err := svc.ApplyTerminalResult(context.Background(), repo.payment.ID, tt.res)
			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, PaymentPending, repo.payment.Status)
			assert.Zero(t, repo.writes)
		})
	}
}

func TestApplyTerminalResult_MetadataNormalized(t *testing.T) {
	repo := newPendingPayment()
	svc := newPaymentService(repo)

	long := make([]byte, 200)
	for i := range long {
		long[i] = 'r'
	}
	_, err := svc.ApplyTerminalResult(context.Background(), repo.payment.ID, TerminalResult{
		Status:                 TerminalDeclined,
		TerminalTransactionRef: ptr(string(long)),
		ApprovalCode:           ptr("   "),
		CardBrand:              ptr(" MasterCard-International-Extended-Name "),
		Last4:                  ptr(" 1234 "),
	})
	require.NoError(t, err)

	p := repo.payment
	assert.Len(t, *p.TerminalTransactionRef, 128)
	assert.Nil(t, p.ApprovalCode)
	assert.Nil(t, p.ResponseCode)
	assert.Equal(t, "MasterCard-International-Extend", (*p.CardBrand)[:31])
	assert.Len(t, *p.CardBrand, 32)
	assert.Equal(t, "1234", *p.Last4)
}

func TestApplyTerminalResult_NotFound(t *testing.T) {
	repo := newPendingPayment()
	svc := newPaymentService(repo)

	_, err := svc.ApplyTerminalResult(context.Background(), uuid.New(), TerminalResult{Status: TerminalApproved})
	require.ErrorIs(t, err, ErrPaymentNotFound)

	_, err = svc.ApplyTerminalResult(context.Background(), uuid.Nil, TerminalResult{Status: TerminalApproved})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestTrimTo(t *testing.T) {
	assert.Nil(t, trimTo(nil, 4))
	assert.Nil(t, trimTo(ptr(""), 4))
	assert.Nil(t, trimTo(ptr(" \t "), 4))
	assert.Equal(t, "abcd", *trimTo(ptr(" abcdef"), 4))
	assert.Equal(t, "ключ", *trimTo(ptr("ключи"), 4))
}
