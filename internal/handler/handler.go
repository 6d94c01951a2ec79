// Package handler implements the order intake API generated from
// api/openapi.yaml.
package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/xenking/mofer-pos/internal/domain/order"
	"github.com/xenking/mofer-pos/internal/oas"
)

// Compile-time check ensuring Handler satisfies the ogen Handler interface.
var _ oas.Handler = (*Handler)(nil)

// PathPrefix is where the generated server is mounted.
const PathPrefix = "/api"

// MaxBodyBytes bounds request bodies. A large cart is a few kilobytes.
const MaxBodyBytes = 1 << 20

// OrderService is the order side of the domain used by the handler.
type OrderService interface {
	Submit(ctx context.Context, req order.SubmitRequest) (*order.SubmitResult, error)
	Get(ctx context.Context, orgID, orderID uuid.UUID) (*order.Order, error)
	List(ctx context.Context, q order.ListQuery) (*order.ListPage, error)
}

// TerminalService applies payment terminal callbacks.
type TerminalService interface {
	ApplyTerminalResult(ctx context.Context, paymentID uuid.UUID, res order.TerminalResult) (*order.TerminalOutcome, error)
}

// Handler implements the ogen-generated Handler interface, delegating to the
// order and payment services.
type Handler struct {
	oas.UnimplementedHandler

	orders   OrderService
	terminal TerminalService
}

// NewHandler constructs a Handler with the required domain dependencies.
func NewHandler(orders OrderService, terminal TerminalService) *Handler {
	return &Handler{
		orders:   orders,
		terminal: terminal,
	}
}

// NewServer builds the generated API server under PathPrefix. Decode,
// security and routing failures are written with the same error body as
// domain errors.
func NewServer(h *Handler, sec *SecurityHandler, opts ...oas.ServerOption) (*oas.Server, error) {
	opts = append([]oas.ServerOption{
		oas.WithPathPrefix(PathPrefix),
		oas.WithErrorHandler(h.handleError),
		oas.WithNotFound(notFound),
		oas.WithMethodNotAllowed(methodNotAllowed),
	}, opts...)

	return oas.NewServer(h, sec, opts...)
}
