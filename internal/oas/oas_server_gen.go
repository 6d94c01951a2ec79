// Code generated by ogen, DO NOT EDIT.

package oas

import (
	"context"
)

// Handler handles operations described by OpenAPI v3 specification.
type Handler interface {
	// ApplyTerminalResult implements applyTerminalResult operation.
	//
	// Moves a pending payment to the reported state. An approval completes
	// the order. Results for an already settled payment are ignored.
	//
	// POST /payments/{paymentId}/terminal-result
	ApplyTerminalResult(ctx context.Context, req *TerminalResultRequest, params ApplyTerminalResultParams) (*TerminalOutcome, error)
	// GetOrder implements getOrder operation.
	//
	// Order detail.
	//
	// GET /orders/{orderId}
	GetOrder(ctx context.Context, params GetOrderParams) (*OrderDetail, error)
	// ListOrders implements listOrders operation.
	//
	// Order history.
	//
	// GET /orders
	ListOrders(ctx context.Context, params ListOrdersParams) (*OrderPage, error)
	// SubmitOrder implements submitOrder operation.
	//
	// Validates modifier selections, prices the cart and stores the order
	// with a pending payment. A repeated externalOrderRef returns the stored
	// order and sets the Idempotent-Replayed header.
	//
	// POST /orders
	SubmitOrder(ctx context.Context, req *SubmitOrderRequest) (*SubmitOrderResultHeaders, error)
	// NewError creates *ErrorStatusCode from error returned by handler.
	//
	// Used for common default response.
	NewError(ctx context.Context, err error) *ErrorStatusCode
}

// Server implements http server based on OpenAPI v3 specification and
// calls Handler to handle requests.
type Server struct {
	h   Handler
	sec SecurityHandler
	baseServer
}

// NewServer creates new Server.
func NewServer(h Handler, sec SecurityHandler, opts ...ServerOption) (*Server, error) {
	s, err := newServerConfig(opts...).baseServer()
	if err != nil {
		return nil, err
	}
	return &Server{
		h:          h,
		sec:        sec,
		baseServer: s,
	}, nil
}
