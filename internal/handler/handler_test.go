package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/ogen-go/ogen/ogenerrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/mofer-pos/internal/domain/audit"
	"github.com/xenking/mofer-pos/internal/domain/auth"
	"github.com/xenking/mofer-pos/internal/domain/modifier"
	"github.com/xenking/mofer-pos/internal/domain/order"
	"github.com/xenking/mofer-pos/internal/domain/pricing"
	"github.com/xenking/mofer-pos/internal/oas"
)

var (
	orgID     = uuid.MustParse("00000000-0000-4000-8000-000000000001")
	locID     = uuid.MustParse("00000000-0000-4000-8000-000000000101")
	latteID   = uuid.MustParse("00000000-0000-4000-8000-000000000401")
	mediumID  = uuid.MustParse("00000000-0000-4000-8000-000000000302")
	oatID     = uuid.MustParse("00000000-0000-4000-8000-000000000312")
	orderID   = uuid.MustParse("7d0c1a4e-5d2b-4f0e-9a59-2f0a8f4b1c01")
	paymentID = uuid.MustParse("7d0c1a4e-5d2b-4f0e-9a59-2f0a8f4b1c02")
	createdAt = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
)

func storedOrder() *order.Order {
	return &order.Order{
		ID:               orderID,
		OrganizationID:   orgID,
		LocationID:       locID,
		ExternalOrderRef: "T1-0001",
		Status:           order.StatusDraft,
		Subtotal:         decimal.RequireFromString("10.50"),
		TaxTotal:         decimal.RequireFromString("0.63"),
		Total:            decimal.RequireFromString("11.13"),
		Fields:           audit.New(createdAt),
		Items: []order.Item{{
			ID:                uuid.MustParse("7d0c1a4e-5d2b-4f0e-9a59-2f0a8f4b1c03"),
			OrderID:           orderID,
			ProductID:         latteID,
			ProductName:       "Latte",
			Quantity:          2,
			BaseUnitPrice:     decimal.RequireFromString("4.50"),
			ModifierUnitTotal: decimal.RequireFromString("0.75"),
			FinalUnitPrice:    decimal.RequireFromString("5.25"),
			LineTotal:         decimal.RequireFromString("10.50"),
			SelectedOptions: []order.SelectedOption{{
				GroupID:    uuid.MustParse("00000000-0000-4000-8000-000000000202"),
				OptionID:   oatID,
				GroupName:  "Milk",
				OptionName: "Oat Milk",
				PriceDelta: decimal.RequireFromString("0.75"),
			}},
		}},
		Payments: []order.Payment{{
			ID:      paymentID,
			OrderID: orderID,
			Method:  order.MethodCard,
			Status:  order.PaymentPending,
			Amount:  decimal.RequireFromString("11.13"),
			Fields:  audit.New(createdAt),
		}},
	}
}

func submitResult(replayed bool) func(order.SubmitRequest) (*order.SubmitResult, error) {
	return func(order.SubmitRequest) (*order.SubmitResult, error) {
		o := storedOrder()
		return &order.SubmitResult{Order: *o, Payment: o.Payments[0], Replayed: replayed}, nil
	}
}

func submitRequest() *oas.SubmitOrderRequest {
	return &oas.SubmitOrderRequest{
		OrganizationId:   orgID,
		LocationId:       locID,
		ExternalOrderRef: "T1-0001",
		TaxRate:          0.06,
		Lines: []oas.OrderLine{{
			ProductId:         latteID,
			Quantity:          oas.NewOptInt(2),
			SelectedOptionIds: []uuid.UUID{mediumID, oatID},
		}},
	}
}

func TestSubmitOrder(t *testing.T) {
	svc := &mockOrderService{submit: submitResult(false)}
	h := NewHandler(svc, nil)

	res, err := h.SubmitOrder(context.Background(), submitRequest())
	require.NoError(t, err)
	assert.False(t, res.IdempotentReplayed.IsSet())

	req := svc.lastSubmit
	assert.Equal(t, orgID, req.OrganizationID)
	assert.Equal(t, locID, req.LocationID)
	assert.Equal(t, "T1-0001", req.ExternalOrderRef)
	assert.True(t, decimal.RequireFromString("0.06").Equal(req.TaxRate), req.TaxRate.String())
	require.Len(t, req.Lines, 1)
	assert.Equal(t, latteID, req.Lines[0].ProductID)
	assert.Equal(t, 2, req.Lines[0].Quantity)
	assert.Equal(t, []uuid.UUID{mediumID, oatID}, req.Lines[0].SelectedOptionIDs)

	out := res.Response
	assert.Equal(t, orderID, out.OrderId)
	assert.Equal(t, "Draft", out.Status)
	assert.Equal(t, 10.5, out.Subtotal)
	assert.Equal(t, 0.63, out.TaxTotal)
	assert.Equal(t, 11.13, out.Total)
	assert.Equal(t, paymentID, out.PaymentId)
	assert.Equal(t, "Pending", out.PaymentStatus)
}

func TestSubmitOrder_Replayed(t *testing.T) {
	h := NewHandler(&mockOrderService{submit: submitResult(true)}, nil)

	res, err := h.SubmitOrder(context.Background(), submitRequest())
	require.NoError(t, err)
	replayed, ok := res.IdempotentReplayed.Get()
	assert.True(t, ok)
	assert.True(t, replayed)
	assert.Equal(t, orderID, res.Response.OrderId)
}

func TestSubmitOrder_DefaultQuantity(t *testing.T) {
	svc := &mockOrderService{submit: submitResult(false)}
	h := NewHandler(svc, nil)

	req := submitRequest()
	req.Lines = []oas.OrderLine{{ProductId: latteID}, {ProductId: latteID, Quantity: oas.NewOptInt(0)}}
	_, err := h.SubmitOrder(context.Background(), req)
	require.NoError(t, err)

	lines := svc.lastSubmit.Lines
	require.Len(t, lines, 2)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Empty(t, lines[0].SelectedOptionIDs)
	// An explicit zero reaches the domain and is rejected there.
	assert.Equal(t, 0, lines[1].Quantity)
}

func TestSubmitOrder_ServiceError(t *testing.T) {
	want := &order.LineError{Index: 0, Err: &pricing.InvalidQuantityError{Line: 0}}
	svc := &mockOrderService{submit: func(order.SubmitRequest) (*order.SubmitResult, error) { return nil, want }}

	_, err := NewHandler(svc, nil).SubmitOrder(context.Background(), submitRequest())
	require.ErrorIs(t, err, want)
}

func TestGetOrder(t *testing.T) {
	svc := &mockOrderService{}
	svc.get = func(org, id uuid.UUID) (*order.Order, error) {
		if org != orgID || id != orderID {
			return nil, order.ErrNotFound
		}
		return storedOrder(), nil
	}
	h := NewHandler(svc, nil)

	res, err := h.GetOrder(context.Background(), oas.GetOrderParams{OrderId: orderID, OrganizationId: orgID})
	require.NoError(t, err)
	assert.Equal(t, "T1-0001", res.ExternalOrderRef)
	assert.Equal(t, createdAt, res.CreatedAt)
	assert.False(t, res.CompletedAt.IsSet())

	require.Len(t, res.Items, 1)
	item := res.Items[0]
	assert.Equal(t, "Latte", item.ProductName)
	assert.Equal(t, 5.25, item.FinalUnitPrice)
	assert.Equal(t, 10.5, item.LineTotal)
	require.Len(t, item.SelectedOptions, 1)
	assert.Equal(t, "Oat Milk", item.SelectedOptions[0].OptionName)
	assert.Equal(t, 0.75, item.SelectedOptions[0].PriceDelta)

	require.Len(t, res.Payments, 1)
	assert.Equal(t, "Pending", res.Payments[0].Status)
	assert.False(t, res.Payments[0].Last4.IsSet())
	assert.False(t, res.Payments[0].CapturedAt.IsSet())

	_, err = h.GetOrder(context.Background(), oas.GetOrderParams{OrderId: uuid.New(), OrganizationId: orgID})
	require.ErrorIs(t, err, order.ErrNotFound)
}

func TestListOrders(t *testing.T) {
	svc := &mockOrderService{}
	svc.list = func(q order.ListQuery) (*order.ListPage, error) {
		q.Page, q.PageSize = 2, 10
		o := storedOrder()
		return &order.ListPage{
			Query:      q,
			TotalCount: 11,
			Items: []order.Summary{{
				Order:         *o,
				LocationName:  "Mofer Coffee - Main",
				LatestPayment: &o.Payments[0],
			}},
		}, nil
	}
	h := NewHandler(svc, nil)

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	res, err := h.ListOrders(context.Background(), oas.ListOrdersParams{
		OrganizationId: orgID,
		LocationId:     oas.NewOptUUID(locID),
		Status:         oas.NewOptString("draft"),
		From:           oas.NewOptDateTime(from),
		To:             oas.NewOptDateTime(to),
		Page:           oas.NewOptInt(2),
		PageSize:       oas.NewOptInt(10),
	})
	require.NoError(t, err)

	q := svc.lastList
	assert.Equal(t, orgID, q.OrganizationID)
	require.NotNil(t, q.LocationID)
	assert.Equal(t, locID, *q.LocationID)
	require.NotNil(t, q.Status)
	assert.Equal(t, order.StatusDraft, *q.Status)
	require.NotNil(t, q.From)
	assert.Equal(t, from, *q.From)
	assert.Equal(t, 2, q.Page)
	assert.Equal(t, 10, q.PageSize)

	assert.Equal(t, 11, res.TotalCount)
	status, _ := res.Status.Get()
	assert.Equal(t, "Draft", status)
	require.Len(t, res.Items, 1)
	row := res.Items[0]
	assert.Equal(t, "Mofer Coffee - Main", row.LocationName)
	payment, ok := row.LatestPayment.Get()
	require.True(t, ok)
	assert.Equal(t, paymentID, payment.PaymentId)
}

func TestListOrders_Defaults(t *testing.T) {
	svc := &mockOrderService{}
	svc.list = func(q order.ListQuery) (*order.ListPage, error) { return &order.ListPage{Query: q}, nil }

	res, err := NewHandler(svc, nil).ListOrders(context.Background(), oas.ListOrdersParams{OrganizationId: orgID})
	require.NoError(t, err)

	q := svc.lastList
	assert.Nil(t, q.LocationID)
	assert.Nil(t, q.Status)
	assert.Nil(t, q.From)
	assert.Zero(t, q.Page)
	assert.Zero(t, q.PageSize)
	assert.False(t, res.LocationId.IsSet())
	assert.Empty(t, res.Items)
}

func TestListOrders_UnknownStatus(t *testing.T) {
	svc := &mockOrderService{}
	_, err := NewHandler(svc, nil).ListOrders(context.Background(), oas.ListOrdersParams{
		OrganizationId: orgID,
		Status:         oas.NewOptString("Open"),
	})

	var ve *order.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "status", ve.Field)
	assert.False(t, svc.called)
}

func TestApplyTerminalResult(t *testing.T) {
	term := &mockTerminalService{
		out: &order.TerminalOutcome{
			PaymentID:     paymentID,
			PaymentStatus: order.PaymentApproved,
			OrderID:       orderID,
			OrderStatus:   order.StatusCompleted,
			OrderTotal:    decimal.RequireFromString("11.13"),
		},
	}
	h := NewHandler(nil, term)

	ctx := context.WithValue(context.Background(), apiKeyCtxKey{}, &auth.APIKeyInfo{ID: "k1", Name: "till-1"})
	res, err := h.ApplyTerminalResult(ctx, &oas.TerminalResultRequest{
		Status:                 "approved",
		TerminalTransactionRef: oas.NewOptString("TX-1"),
		ApprovalCode:           oas.NewOptString("A1"),
		CardBrand:              oas.NewOptString("Visa"),
		Last4:                  oas.NewOptString("4242"),
	}, oas.ApplyTerminalResultParams{PaymentId: paymentID})
	require.NoError(t, err)

	assert.Equal(t, paymentID, term.paymentID)
	assert.Equal(t, order.TerminalApproved, term.res.Status)
	require.NotNil(t, term.res.TerminalTransactionRef)
	assert.Equal(t, "TX-1", *term.res.TerminalTransactionRef)
	assert.Nil(t, term.res.ResponseCode)
	require.NotNil(t, term.res.Last4)
	assert.Equal(t, "4242", *term.res.Last4)

	assert.Equal(t, "Approved", res.PaymentStatus)
	assert.Equal(t, "Completed", res.OrderStatus)
	assert.Equal(t, 11.13, res.OrderTotal)
}

func TestParseTerminalStatus(t *testing.T) {
	tests := []struct {
		in   string
		want order.TerminalStatus
	}{
		{"Approved", order.TerminalApproved},
		{"DECLINED", order.TerminalDeclined},
		{"cancelled", order.TerminalCancelled},
		{"Voided", order.TerminalStatus("Voided")},
		{"", order.TerminalStatus("")},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseTerminalStatus(tt.in))
		})
	}
}

func TestNewError(t *testing.T) {
	groupID := uuid.MustParse("00000000-0000-4000-8000-000000000201")
	tests := []struct {
		name string
		err  error
		code int
		kind string
	}{
		{"validation", &order.ValidationError{Field: "externalOrderRef", Reason: "is required"}, 400, "ValidationError"},
		{"empty", pricing.ErrEmptyOrder, 400, "EmptyOrder"},
		{"tax", pricing.ErrInvalidTaxRate, 400, "InvalidTaxRate"},
		{"terminal status", order.ErrUnknownTerminalStatus, 400, "UnknownTerminalStatus"},
		{"last4", order.ErrInvalidLast4, 400, "InvalidLast4"},
		{"organization", order.ErrOrganizationNotFound, 422, "OrganizationNotFound"},
		{"location", order.ErrLocationNotFound, 422, "LocationNotFound"},
		{"products", &order.ProductNotFoundError{ProductIDs: []uuid.UUID{latteID}}, 422, "ProductNotFound"},
		{"inactive", &order.LineError{Index: 0, Err: &order.InactiveProductError{ProductID: latteID, Name: "Latte"}}, 422, "InactiveProduct"},
		{"quantity", &order.LineError{Index: 1, Err: &pricing.InvalidQuantityError{Line: 1}}, 422, "InvalidQuantity"},
		{"base price", &order.LineError{Index: 0, Err: &pricing.InvalidBasePriceError{Line: 0}}, 422, "InvalidBasePrice"},
		{"rule", &order.LineError{Index: 0, Err: &modifier.RuleError{
			Kind: modifier.KindRequiredGroupUnsatisfied, GroupID: groupID, GroupName: "Size", Min: 1,
		}}, 422, "RequiredGroupUnsatisfied"},
		{"order not found", order.ErrNotFound, 404, "OrderNotFound"},
		{"payment not found", order.ErrPaymentNotFound, 404, "PaymentNotFound"},
		{"payment state", &order.PaymentStateError{Current: order.PaymentRefunded}, 409, "PaymentStateConflict"},
		{"param", &ogenerrors.DecodeParamsError{Err: &ogenerrors.DecodeParamError{Name: "paymentId", In: "path", Err: errors.New("bad uuid")}}, 400, "InvalidRequest"},
		{"body", &ogenerrors.DecodeRequestError{Err: errors.New("unexpected trailing data")}, 400, "InvalidRequest"},
		{"too large", &ogenerrors.DecodeRequestError{Err: &http.MaxBytesError{Limit: MaxBodyBytes}}, 400, "InvalidRequest"},
		{"no key", &ogenerrors.SecurityError{Security: "APIKey", Err: ogenerrors.ErrSecurityRequirementIsNotSatisfied}, 401, "Unauthorized"},
		{"unknown key", &ogenerrors.SecurityError{Security: "APIKey", Err: errUnauthorized}, 401, "Unauthorized"},
		{"scope", &ogenerrors.SecurityError{Security: "APIKey", Err: &scopeError{scope: auth.ScopeTerminalResult}}, 403, "Forbidden"},
		{"internal", errors.New("connection reset by peer"), 500, "Internal"},
	}
	h := NewHandler(nil, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := h.NewError(context.Background(), tt.err)
			assert.Equal(t, tt.code, res.StatusCode)
			assert.Equal(t, tt.code, res.Response.Code)
			assert.Equal(t, tt.kind, res.Response.Kind)
			assert.NotEmpty(t, res.Response.Message)
		})
	}
}

func TestNewError_Context(t *testing.T) {
	groupID := uuid.MustParse("00000000-0000-4000-8000-000000000203")
	optionID := uuid.MustParse("00000000-0000-4000-8000-000000000399")
	h := NewHandler(nil, nil)

	res := h.NewError(context.Background(), &order.LineError{Index: 2, Err: &modifier.RuleError{
		Kind: modifier.KindAboveMaximumSelections, GroupID: groupID, GroupName: "Extras", Max: 3, Selected: 4,
	}})
	line, _ := res.Response.Line.Get()
	assert.Equal(t, 2, line)
	gid, _ := res.Response.GroupId.Get()
	assert.Equal(t, groupID, gid)
	assert.False(t, res.Response.OptionId.IsSet())
	assert.Contains(t, res.Response.Message, "Extras")

	res = h.NewError(context.Background(), &order.LineError{Index: 0, Err: &modifier.RuleError{
		Kind: modifier.KindUnknownOption, OptionID: optionID,
	}})
	oid, _ := res.Response.OptionId.Get()
	assert.Equal(t, optionID, oid)
	assert.False(t, res.Response.GroupId.IsSet())

	res = h.NewError(context.Background(), &order.ValidationError{Field: "page", Reason: "is out of range"})
	field, _ := res.Response.Field.Get()
	assert.Equal(t, "page", field)

	res = h.NewError(context.Background(), &ogenerrors.DecodeParamsError{
		Err: &ogenerrors.DecodeParamError{Name: "orderId", In: "path", Err: errors.New("bad uuid")},
	})
	field, _ = res.Response.Field.Get()
	assert.Equal(t, "orderId", field)
}

func TestNewError_InternalHidden(t *testing.T) {
	res := NewHandler(nil, nil).NewError(context.Background(), errors.New("pq: password authentication failed"))
	assert.Equal(t, "internal server error", res.Response.Message)
}

// --- Mock implementations ---

type mockOrderService struct {
	submit func(order.SubmitRequest) (*order.SubmitResult, error)
	get    func(org, id uuid.UUID) (*order.Order, error)
	list   func(order.ListQuery) (*order.ListPage, error)

	called     bool
	lastSubmit order.SubmitRequest
	lastList   order.ListQuery
}

func (m *mockOrderService) Submit(_ context.Context, req order.SubmitRequest) (*order.SubmitResult, error) {
	m.called = true
	m.lastSubmit = req
	return m.submit(req)
}

func (m *mockOrderService) Get(_ context.Context, org, id uuid.UUID) (*order.Order, error) {
	m.called = true
	return m.get(org, id)
}

func (m *mockOrderService) List(_ context.Context, q order.ListQuery) (*order.ListPage, error) {
	m.called = true
	m.lastList = q
	return m.list(q)
}

type mockTerminalService struct {
	out *order.TerminalOutcome
	err error

	called    bool
	paymentID uuid.UUID
	res       order.TerminalResult
}

func (m *mockTerminalService) ApplyTerminalResult(_ context.Context, id uuid.UUID, res order.TerminalResult) (*order.TerminalOutcome, error) {
	m.called = true
	m.paymentID = id
	m.res = res
	if m.err != nil {
		return nil, m.err
	}
	return m.out, nil
}
