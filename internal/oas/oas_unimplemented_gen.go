// Code generated by ogen, DO NOT EDIT.

package oas

import (
	"context"

	ht "github.com/ogen-go/ogen/http"
)

// UnimplementedHandler is no-op Handler which returns http.ErrNotImplemented.
type UnimplementedHandler struct{}

var _ Handler = UnimplementedHandler{}

// ApplyTerminalResult implements applyTerminalResult operation.
//
// Moves a pending payment to the reported state. An approval completes
// the order. Results for an already settled payment are ignored.
//
// POST /payments/{paymentId}/terminal-result
func (UnimplementedHandler) ApplyTerminalResult(ctx context.Context, req *TerminalResultRequest, params ApplyTerminalResultParams) (r *TerminalOutcome, _ error) {
	return r, ht.ErrNotImplemented
}

// GetOrder implements getOrder operation.
//
// Order detail.
//
// GET /orders/{orderId}
func (UnimplementedHandler) GetOrder(ctx context.Context, params GetOrderParams) (r *OrderDetail, _ error) {
	return r, ht.ErrNotImplemented
}

// ListOrders implements listOrders operation.
//
// Order history.
//
// GET /orders
func (UnimplementedHandler) ListOrders(ctx context.Context, params ListOrdersParams) (r *OrderPage, _ error) {
	return r, ht.ErrNotImplemented
}

// SubmitOrder implements submitOrder operation.
//
// Validates modifier selections, prices the cart and stores the order
// with a pending payment. A repeated externalOrderRef returns the stored
// order and sets the Idempotent-Replayed header.
//
// POST /orders
func (UnimplementedHandler) SubmitOrder(ctx context.Context, req *SubmitOrderRequest) (r *SubmitOrderResultHeaders, _ error) {
	return r, ht.ErrNotImplemented
}

// NewError creates *ErrorStatusCode from error returned by handler.
//
// Used for common default response.
func (UnimplementedHandler) NewError(ctx context.Context, err error) (r *ErrorStatusCode) {
	r = new(ErrorStatusCode)
	return r
}
