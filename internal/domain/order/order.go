package order

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xenking/mofer-pos/internal/domain/audit"
)

// Status is the lifecycle state of an order.
type Status string

const (
	StatusDraft     Status = "Draft"
	StatusCompleted Status = "Completed"
	StatusVoided    Status = "Voided"
	StatusRefunded  Status = "Refunded"
)

var statuses = []Status{StatusDraft, StatusCompleted, StatusVoided, StatusRefunded}

// ParseStatus returns the Status named s, ignoring case.
func ParseStatus(s string) (Status, bool) {
	for _, st := range statuses {
		if strings.EqualFold(s, string(st)) {
			return st, true
		}
	}
	return "", false
}

// Order is the aggregate root of a sale. Totals and item snapshots are fixed
// when the order is created and are never recomputed from the live catalog.
type Order struct {
	ID               uuid.UUID
	OrganizationID   uuid.UUID
	LocationID       uuid.UUID
	ExternalOrderRef string
	Status           Status
	Subtotal         decimal.Decimal
	TaxTotal         decimal.Decimal
	Total            decimal.Decimal
	CompletedAt      *time.Time
	Items            []Item
	Payments         []Payment
	audit.Fields
}

// Item is an order line with the product and pricing captured at sale time.
type Item struct {
	ID                uuid.UUID
	OrderID           uuid.UUID
	ProductID         uuid.UUID
	ProductName       string
	Quantity          int
	BaseUnitPrice     decimal.Decimal
	ModifierUnitTotal decimal.Decimal
	FinalUnitPrice    decimal.Decimal
	LineTotal         decimal.Decimal
	SelectedOptions   []SelectedOption
	audit.Fields
}

// SelectedOption is a modifier option captured on an item.
type SelectedOption struct {
	ID          uuid.UUID
	OrderItemID uuid.UUID
	GroupID     uuid.UUID
	OptionID    uuid.UUID
	GroupName   string
	OptionName  string
	PriceDelta  decimal.Decimal
	audit.Fields
}

// Summary is an order header as shown in history listings.
type Summary struct {
	Order
	LocationName  string
	LatestPayment *Payment
}

// ListQuery filters order history. CreatedAt is matched against [From, To).
type ListQuery struct {
	OrganizationID uuid.UUID
	LocationID     *uuid.UUID
	Status         *Status
	From           *time.Time
	To             *time.Time
	Page           int
	PageSize       int
}

// ListPage is one page of order history, newest first.
type ListPage struct {
	Query      ListQuery
	TotalCount int
	Items      []Summary
}

// Repository defines persistence operations for orders.
type Repository interface {
	// FindByExternalRef returns the order header for the idempotency key, or
	// ErrNotFound.
	FindByExternalRef(ctx context.Context, orgID, locationID uuid.UUID, ref string) (*Order, error)
	// LatestPayment returns the most recently created payment of the order,
	// or ErrPaymentNotFound.
	LatestPayment(ctx context.Context, orderID uuid.UUID) (*Payment, error)
	// Create persists the order with its items, selections and payments as a
	// single atomic unit. It returns ErrDuplicateExternalRef when another
	// order already holds the idempotency key.
	Create(ctx context.Context, o *Order) error
	// Get returns the full order graph, or ErrNotFound.
	Get(ctx context.Context, orgID, orderID uuid.UUID) (*Order, error)
	// List returns one page of order headers.
	List(ctx context.Context, q ListQuery) (*ListPage, error)
}
