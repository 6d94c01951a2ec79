// Package catalog describes the menu data an order is priced against.
//
// Products are loaded flattened: every attachment carries its modifier group
// name and the complete option list, so pricing a submission never walks back
// into storage.
package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xenking/mofer-pos/internal/domain/audit"
)

// Organization is a tenant owning one or more locations.
type Organization struct {
	ID   uuid.UUID
	Name string
	audit.Fields
}

// Location is a physical store. Products and orders are scoped to it.
type Location struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Name           string
	AddressLine1   string
	City           string
	Region         string
	PostalCode     string
	audit.Fields
}

// Product is a sellable menu item with its modifier group attachments
// already resolved, ordered by DisplayOrder.
type Product struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	LocationID     uuid.UUID
	Name           string
	SKU            string
	BasePrice      decimal.Decimal
	IsActive       bool
	Attachments    []Attachment
	audit.Fields
}

// ModifierGroup is a named set of options shared by products of a location.
type ModifierGroup struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	LocationID     uuid.UUID
	Name           string
	audit.Fields
}

// Attachment is the per-product rule set for one modifier group.
type Attachment struct {
	GroupID      uuid.UUID
	GroupName    string
	IsRequired   bool
	MinSelected  int
	MaxSelected  int
	DisplayOrder int
	Options      []Option
}

// Option is a single modifier choice. PriceDelta may be negative.
type Option struct {
	ID         uuid.UUID
	GroupID    uuid.UUID
	Name       string
	PriceDelta decimal.Decimal
	IsActive   bool
}

// Repository provides the read side of the catalog needed by order intake.
type Repository interface {
	// OrganizationExists reports whether a live organization has the id.
	OrganizationExists(ctx context.Context, orgID uuid.UUID) (bool, error)
	// LocationExists reports whether locationID belongs to orgID.
	LocationExists(ctx context.Context, orgID, locationID uuid.UUID) (bool, error)
	// ProductsByIDs returns the subset of ids that exist for the location.
	// Missing ids are simply absent from the result.
	ProductsByIDs(ctx context.Context, orgID, locationID uuid.UUID, ids []uuid.UUID) ([]Product, error)
}
