package seed

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xenking/mofer-pos/internal/domain/auth"
	"github.com/xenking/mofer-pos/internal/domain/catalog"
	"github.com/xenking/mofer-pos/internal/storage/postgres"
)

// Store is the write side used by the Seeder. *postgres.SeedRepository
// implements it.
type Store interface {
	UpsertOrganization(ctx context.Context, o catalog.Organization) error
	UpsertLocation(ctx context.Context, l catalog.Location) error
	UpsertModifierGroup(ctx context.Context, g catalog.ModifierGroup) error
	UpsertModifierOption(ctx context.Context, o catalog.Option) error
	UpsertProduct(ctx context.Context, p catalog.Product) error
	UpsertAttachment(ctx context.Context, a postgres.SeedAttachment) error
	UpsertAPIKey(ctx context.Context, k auth.APIKeyInfo) error
	LiveLocationIDs(ctx context.Context, table string, locationID uuid.UUID) ([]uuid.UUID, error)
	SoftDelete(ctx context.Context, table string, id uuid.UUID) (bool, error)
}

var _ Store = (*postgres.SeedRepository)(nil)

// Stats counts the rows written for one location.
type Stats struct {
	Groups      int
	Options     int
	Products    int
	Attachments int
	Retired     int
}

// Seeder writes catalogs through a Store.
type Seeder struct {
	store       Store
	concurrency int
}

// NewSeeder creates a Seeder that seeds up to concurrency locations at once.
func NewSeeder(store Store, concurrency int) *Seeder {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Seeder{store: store, concurrency: concurrency}
}

// Apply upserts every organization and then seeds their locations
// concurrently.
func (s *Seeder) Apply(ctx context.Context, c *Catalog) error {
	lg := zctx.From(ctx)

	for _, org := range c.Organizations {
		if err := s.store.UpsertOrganization(ctx, catalog.Organization{ID: org.ID, Name: org.Name}); err != nil {
			return err
		}
		lg.Info("Upserted organization", zap.Stringer("id", org.ID), zap.String("name", org.Name))
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for _, org := range c.Organizations {
		for _, loc := range org.Locations {
			g.Go(func() error {
				st, err := s.seedLocation(gCtx, org.ID, loc)
				if err != nil {
					return errors.Wrapf(err, "seed location %q", loc.Name)
				}
				lg.Info("Seeded location",
					zap.Stringer("id", loc.ID),
					zap.String("name", loc.Name),
					zap.Int("groups", st.Groups),
					zap.Int("options", st.Options),
					zap.Int("products", st.Products),
					zap.Int("attachments", st.Attachments),
					zap.Int("retired", st.Retired),
				)
				return nil
			})
		}
	}
	return g.Wait()
}

func (s *Seeder) seedLocation(ctx context.Context, orgID uuid.UUID, loc Location) (Stats, error) {
	var st Stats
	err := s.store.UpsertLocation(ctx, catalog.Location{
		ID:             loc.ID,
		OrganizationID: orgID,
		Name:           loc.Name,
		AddressLine1:   loc.Address.Line1,
		City:           loc.Address.City,
		Region:         loc.Address.Region,
		PostalCode:     loc.Address.PostalCode,
	})
	if err != nil {
		return st, err
	}

	keep := map[string]map[uuid.UUID]struct{}{
		"modifier_groups":         {},
		"modifier_options":        {},
		"products":                {},
		"product_modifier_groups": {},
	}

	groupNames := make(map[uuid.UUID]string, len(loc.ModifierGroups))
	for _, g := range loc.ModifierGroups {
		groupNames[g.ID] = g.Name
		err := s.store.UpsertModifierGroup(ctx, catalog.ModifierGroup{
			ID:             g.ID,
			OrganizationID: orgID,
			LocationID:     loc.ID,
			Name:           g.Name,
		})
		if err != nil {
			return st, err
		}
		keep["modifier_groups"][g.ID] = struct{}{}
		st.Groups++

		for _, o := range g.Options {
			err := s.store.UpsertModifierOption(ctx, catalog.Option{
				ID:         o.ID,
				GroupID:    g.ID,
				Name:       o.Name,
				PriceDelta: o.PriceDelta,
				IsActive:   active(o.Active),
			})
			if err != nil {
				return st, err
			}
			keep["modifier_options"][o.ID] = struct{}{}
			st.Options++
		}
	}

	for _, p := range loc.Products {
		err := s.store.UpsertProduct(ctx, catalog.Product{
			ID:             p.ID,
			OrganizationID: orgID,
			LocationID:     loc.ID,
			Name:           p.Name,
			SKU:            p.SKU,
			BasePrice:      p.BasePrice,
			IsActive:       active(p.Active),
		})
		if err != nil {
			return st, err
		}
		keep["products"][p.ID] = struct{}{}
		st.Products++

		for _, m := range p.Modifiers {
			err := s.store.UpsertAttachment(ctx, postgres.SeedAttachment{
				ID:        m.ID,
				ProductID: p.ID,
				Attachment: catalog.Attachment{
					GroupID:      m.Group,
					GroupName:    groupNames[m.Group],
					IsRequired:   m.Required,
					MinSelected:  m.Min,
					MaxSelected:  m.Max,
					DisplayOrder: m.Order,
				},
			})
			if err != nil {
				return st, err
			}
			keep["product_modifier_groups"][m.ID] = struct{}{}
			st.Attachments++
		}
	}

	retired, err := s.retire(ctx, loc.ID, keep)
	st.Retired = retired
	return st, err
}

// retire soft-deletes live rows of the location that the catalog no longer
// lists.
func (s *Seeder) retire(ctx context.Context, locationID uuid.UUID, keep map[string]map[uuid.UUID]struct{}) (int, error) {
	lg := zctx.From(ctx)
	var n int
	for _, table := range postgres.LocationScopedTables() {
		ids, err := s.store.LiveLocationIDs(ctx, table, locationID)
		if err != nil {
			return n, err
		}
		for _, id := range ids {
			if _, ok := keep[table][id]; ok {
				continue
			}
			deleted, err := s.store.SoftDelete(ctx, table, id)
			if err != nil {
				return n, err
			}
			if deleted {
				n++
				lg.Info("Retired catalog row", zap.String("table", table), zap.Stringer("id", id))
			}
		}
	}
	return n, nil
}

// DefaultKeyID is the id of the API key written by SeedAPIKey.
const DefaultKeyID = "default"

// SeedAPIKey stores key, hashed with pepper, with every terminal scope.
func SeedAPIKey(ctx context.Context, store Store, key string, pepper []byte) error {
	if key == "" {
		return errors.New("api key is empty")
	}
	info := auth.APIKeyInfo{
		ID:      DefaultKeyID,
		KeyHash: auth.HashKey(key, pepper),
		Name:    "Default terminal key",
		Scopes:  []string{auth.ScopeSubmitOrder, auth.ScopeTerminalResult},
	}
	if err := store.UpsertAPIKey(ctx, info); err != nil {
		return err
	}
	zctx.From(ctx).Info("Upserted API key", zap.String("id", info.ID), zap.String("name", info.Name))
	return nil
}

// Deadline bounds a full seed run.
const Deadline = 2 * time.Minute
