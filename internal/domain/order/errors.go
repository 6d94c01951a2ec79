package order

import (
	"fmt"
	"strings"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when no order matches.
	ErrNotFound = errors.New("order not found")
	// ErrDuplicateExternalRef is returned by Repository.Create when the
	// (organization, location, external reference) key is already taken.
	ErrDuplicateExternalRef = errors.New("order with this external reference already exists")
	// ErrOrganizationNotFound is returned when the organization does not exist.
	ErrOrganizationNotFound = errors.New("organization not found")
	// ErrLocationNotFound is returned when the location does not belong to
	// the organization.
	ErrLocationNotFound = errors.New("location not found for organization")
	// ErrPaymentNotFound is returned when no payment matches.
	ErrPaymentNotFound = errors.New("payment not found")
	// ErrUnknownTerminalStatus is returned for a terminal result status other
	// than Approved, Declined or Cancelled.
	ErrUnknownTerminalStatus = errors.New("unknown terminal result status")
	// ErrInvalidLast4 is returned when a provided last4 is not 4 characters.
	ErrInvalidLast4 = errors.New("last4 must be exactly 4 characters if provided")
)

// ValidationError reports a malformed request field. It is raised before any
// storage access.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// ProductNotFoundError is returned when requested products do not exist for
// the location.
type ProductNotFoundError struct {
	ProductIDs []uuid.UUID
}

func (e *ProductNotFoundError) Error() string {
	ids := make([]string, len(e.ProductIDs))
	for i, id := range e.ProductIDs {
		ids[i] = id.String()
	}
	return fmt.Sprintf("products not found for location: %s", strings.Join(ids, ", "))
}

// InactiveProductError is returned when a line references an inactive product.
type InactiveProductError struct {
	ProductID uuid.UUID
	Name      string
}

func (e *InactiveProductError) Error() string {
	return fmt.Sprintf("product '%s' is not active", e.Name)
}

// LineError ties a validation failure to the request line that caused it.
type LineError struct {
	Index int
	Err   error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line[%d]: %s", e.Index, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// PaymentStateError is returned when a terminal result targets a payment
// that is neither pending nor settled by a terminal.
type PaymentStateError struct {
	Current PaymentStatus
}

func (e *PaymentStateError) Error() string {
	return fmt.Sprintf("payment is not in Pending state (current: %s)", e.Current)
}
