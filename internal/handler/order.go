package handler

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/xenking/mofer-pos/internal/domain/order"
	"github.com/xenking/mofer-pos/internal/oas"
)

// SubmitOrder prices and stores a cart. A replayed submission returns the
// stored order with the Idempotent-Replayed header set.
func (h *Handler) SubmitOrder(ctx context.Context, req *oas.SubmitOrderRequest) (*oas.SubmitOrderResultHeaders, error) {
	lines := make([]order.LineRequest, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = order.LineRequest{
			ProductID:         l.ProductId,
			Quantity:          l.Quantity.Or(1),
			SelectedOptionIDs: l.SelectedOptionIds,
		}
	}

	res, err := h.orders.Submit(ctx, order.SubmitRequest{
		OrganizationID:   req.OrganizationId,
		LocationID:       req.LocationId,
		ExternalOrderRef: req.ExternalOrderRef,
		TaxRate:          decimal.NewFromFloat(req.TaxRate),
		Lines:            lines,
	})
	if err != nil {
		return nil, err
	}

	out := &oas.SubmitOrderResultHeaders{
		Response: oas.SubmitOrderResult{
			OrderId:       res.Order.ID,
			Status:        string(res.Order.Status),
			Subtotal:      money(res.Order.Subtotal),
			TaxTotal:      money(res.Order.TaxTotal),
			Total:         money(res.Order.Total),
			PaymentId:     res.Payment.ID,
			PaymentStatus: string(res.Payment.Status),
		},
	}
	if res.Replayed {
		out.IdempotentReplayed = oas.NewOptBool(true)
	}
	return out, nil
}

// GetOrder returns the stored order with its item snapshots and payments.
func (h *Handler) GetOrder(ctx context.Context, params oas.GetOrderParams) (*oas.OrderDetail, error) {
	o, err := h.orders.Get(ctx, params.OrganizationId, params.OrderId)
	if err != nil {
		return nil, err
	}

	items := make([]oas.OrderItem, len(o.Items))
	for i, it := range o.Items {
		items[i] = domainToOASItem(it)
	}
	payments := make([]oas.Payment, len(o.Payments))
	for i, p := range o.Payments {
		payments[i] = domainToOASPayment(&p)
	}

	return &oas.OrderDetail{
		OrderId:          o.ID,
		OrganizationId:   o.OrganizationID,
		LocationId:       o.LocationID,
		ExternalOrderRef: o.ExternalOrderRef,
		Status:           string(o.Status),
		Subtotal:         money(o.Subtotal),
		TaxTotal:         money(o.TaxTotal),
		Total:            money(o.Total),
		CreatedAt:        o.CreatedAt,
		CompletedAt:      optTime(o.CompletedAt),
		Items:            items,
		Payments:         payments,
	}, nil
}

// ListOrders returns one page of order history, newest first.
func (h *Handler) ListOrders(ctx context.Context, params oas.ListOrdersParams) (*oas.OrderPage, error) {
	q := order.ListQuery{
		OrganizationID: params.OrganizationId,
		Page:           params.Page.Or(0),
		PageSize:       params.PageSize.Or(0),
	}
	if v, ok := params.LocationId.Get(); ok {
		q.LocationID = &v
	}
	if v, ok := params.Status.Get(); ok {
		st, ok := order.ParseStatus(v)
		if !ok {
			return nil, &order.ValidationError{Field: "status", Reason: "must be one of Draft, Completed, Voided, Refunded"}
		}
		q.Status = &st
	}
	if v, ok := params.From.Get(); ok {
		q.From = &v
	}
	if v, ok := params.To.Get(); ok {
		q.To = &v
	}

	page, err := h.orders.List(ctx, q)
	if err != nil {
		return nil, err
	}

	items := make([]oas.OrderSummary, len(page.Items))
	for i, s := range page.Items {
		items[i] = oas.OrderSummary{
			OrderId:          s.ID,
			LocationId:       s.LocationID,
			LocationName:     s.LocationName,
			Status:           string(s.Status),
			CreatedAt:        s.CreatedAt,
			CompletedAt:      optTime(s.CompletedAt),
			Subtotal:         money(s.Subtotal),
			TaxTotal:         money(s.TaxTotal),
			Total:            money(s.Total),
			ExternalOrderRef: s.ExternalOrderRef,
		}
		if s.LatestPayment != nil {
			items[i].LatestPayment = oas.NewOptPayment(domainToOASPayment(s.LatestPayment))
		}
	}

	pq := page.Query
	out := &oas.OrderPage{
		OrganizationId: pq.OrganizationID,
		From:           optTime(pq.From),
		To:             optTime(pq.To),
		Page:           pq.Page,
		PageSize:       pq.PageSize,
		TotalCount:     page.TotalCount,
		Items:          items,
	}
	if pq.LocationID != nil {
		out.LocationId = oas.NewOptUUID(*pq.LocationID)
	}
	if pq.Status != nil {
		out.Status = oas.NewOptString(string(*pq.Status))
	}
	return out, nil
}

func domainToOASItem(it order.Item) oas.OrderItem {
	selected := make([]oas.SelectedOption, len(it.SelectedOptions))
	for i, so := range it.SelectedOptions {
		selected[i] = oas.SelectedOption{
			GroupId:    so.GroupID,
			GroupName:  so.GroupName,
			OptionId:   so.OptionID,
			OptionName: so.OptionName,
			PriceDelta: money(so.PriceDelta),
		}
	}
	return oas.OrderItem{
		OrderItemId:       it.ID,
		ProductId:         it.ProductID,
		ProductName:       it.ProductName,
		Quantity:          it.Quantity,
		BaseUnitPrice:     money(it.BaseUnitPrice),
		ModifierUnitTotal: money(it.ModifierUnitTotal),
		FinalUnitPrice:    money(it.FinalUnitPrice),
		LineTotal:         money(it.LineTotal),
		SelectedOptions:   selected,
	}
}

func domainToOASPayment(p *order.Payment) oas.Payment {
	return oas.Payment{
		PaymentId:              p.ID,
		Method:                 string(p.Method),
		Status:                 string(p.Status),
		Amount:                 money(p.Amount),
		TerminalTransactionRef: optString(p.TerminalTransactionRef),
		ApprovalCode:           optString(p.ApprovalCode),
		ResponseCode:           optString(p.ResponseCode),
		CardBrand:              optString(p.CardBrand),
		Last4:                  optString(p.Last4),
		CreatedAt:              p.CreatedAt,
		CapturedAt:             optTime(p.CapturedAt),
	}
}

// money converts a stored two-place amount for the JSON number fields.
func money(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

func optString(s *string) oas.OptString {
	if s == nil {
		return oas.OptString{}
	}
	return oas.NewOptString(*s)
}

func optTime(t *time.Time) oas.OptDateTime {
	if t == nil {
		return oas.OptDateTime{}
	}
	return oas.NewOptDateTime(*t)
}
