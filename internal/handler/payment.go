package handler

import (
	"context"
	"strings"

	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/xenking/mofer-pos/internal/domain/order"
	"github.com/xenking/mofer-pos/internal/oas"
)

var terminalStatuses = []order.TerminalStatus{
	order.TerminalApproved,
	order.TerminalDeclined,
	order.TerminalCancelled,
}

// parseTerminalStatus matches the status name in any case. Unknown names are
// passed through and rejected by the domain.
func parseTerminalStatus(s string) order.TerminalStatus {
	for _, st := range terminalStatuses {
		if strings.EqualFold(s, string(st)) {
			return st
		}
	}
	return order.TerminalStatus(s)
}

// ApplyTerminalResult applies a terminal callback to a pending payment.
func (h *Handler) ApplyTerminalResult(ctx context.Context, req *oas.TerminalResultRequest, params oas.ApplyTerminalResultParams) (*oas.TerminalOutcome, error) {
	res := order.TerminalResult{
		Status:                 parseTerminalStatus(req.Status),
		TerminalTransactionRef: stringPtr(req.TerminalTransactionRef),
		ApprovalCode:           stringPtr(req.ApprovalCode),
		ResponseCode:           stringPtr(req.ResponseCode),
		CardBrand:              stringPtr(req.CardBrand),
		Last4:                  stringPtr(req.Last4),
	}

	if key, ok := apiKeyFromContext(ctx); ok {
		zctx.From(ctx).Debug("Terminal result received",
			zap.Stringer("payment_id", params.PaymentId),
			zap.String("status", string(res.Status)),
			zap.String("terminal", key.Name),
		)
	}

	out, err := h.terminal.ApplyTerminalResult(ctx, params.PaymentId, res)
	if err != nil {
		return nil, err
	}
	return &oas.TerminalOutcome{
		PaymentId:     out.PaymentID,
		PaymentStatus: string(out.PaymentStatus),
		OrderId:       out.OrderID,
		OrderStatus:   string(out.OrderStatus),
		OrderTotal:    money(out.OrderTotal),
	}, nil
}

func stringPtr(o oas.OptString) *string {
	if v, ok := o.Get(); ok {
		return &v
	}
	return nil
}
