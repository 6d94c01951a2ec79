package seed

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/klauspost/pgzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/mofer-pos/db"
	"github.com/xenking/mofer-pos/internal/domain/auth"
	"github.com/xenking/mofer-pos/internal/domain/catalog"
	"github.com/xenking/mofer-pos/internal/storage/postgres"
)

var (
	mainLocation = uuid.MustParse("00000000-0000-4000-8000-000000000101")
	latte        = uuid.MustParse("00000000-0000-4000-8000-000000000401")
)

func demoCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Parse(bytes.NewReader(db.DemoCatalog))
	require.NoError(t, err)
	return c
}

func TestParse_DemoCatalog(t *testing.T) {
	c := demoCatalog(t)

	require.Len(t, c.Organizations, 1)
	org := c.Organizations[0]
	assert.Equal(t, "Mofer Coffee", org.Name)
	require.Len(t, org.Locations, 1)

	loc := org.Locations[0]
	assert.Equal(t, mainLocation, loc.ID)
	assert.Equal(t, "23220", loc.Address.PostalCode)
	require.Len(t, loc.ModifierGroups, 3)
	assert.Equal(t, "Size", loc.ModifierGroups[0].Name)
	assert.Equal(t, "0.75", loc.ModifierGroups[1].Options[1].PriceDelta.StringFixed(2))

	require.Len(t, loc.Products, 2)
	p := loc.Products[0]
	assert.Equal(t, latte, p.ID)
	assert.Equal(t, "4.50", p.BasePrice.StringFixed(2))
	assert.True(t, active(p.Active))
	require.Len(t, p.Modifiers, 3)
	assert.Equal(t, 3, p.Modifiers[2].Max)
	assert.False(t, p.Modifiers[2].Required)
}

func TestParse_Gzip(t *testing.T) {
	var buf bytes.Buffer
	zw := pgzip.NewWriter(&buf)
	_, err := zw.Write(db.DemoCatalog)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	c, err := Parse(&buf)
	require.NoError(t, err)
	assert.Len(t, c.Organizations[0].Locations[0].Products, 2)
}

func TestParse_Invalid(t *testing.T) {
	const org = `organizations:
  - id: "00000000-0000-4000-8000-000000000001"
    name: Org
    locations:
      - id: "00000000-0000-4000-8000-000000000101"
        name: Loc
`
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"empty", "organizations: []\n", "no organizations"},
		{"unknown field", "organisations: []\n", "decode catalog"},
		{"missing id", "organizations:\n  - name: Org\n", "id is required"},
		{"duplicate id", org + `        modifierGroups:
          - id: "00000000-0000-4000-8000-000000000101"
            name: Size
`, "already used"},
		{"unknown group", org + `        products:
          - id: "00000000-0000-4000-8000-000000000401"
            name: Latte
            basePrice: "4.50"
            modifiers:
              - { id: "00000000-0000-4000-8000-000000000501", group: "00000000-0000-4000-8000-000000000299", min: 0, max: 1 }
`, "not defined"},
		{"bad range", org + `        modifierGroups:
          - id: "00000000-0000-4000-8000-000000000201"
            name: Size
        products:
          - id: "00000000-0000-4000-8000-000000000401"
            name: Latte
            basePrice: "4.50"
            modifiers:
              - { id: "00000000-0000-4000-8000-000000000501", group: "00000000-0000-4000-8000-000000000201", min: 2, max: 1 }
`, "invalid selection range"},
		{"negative price", org + `        products:
          - id: "00000000-0000-4000-8000-000000000401"
            name: Latte
            basePrice: "-1.00"
`, "negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSeeder_Apply(t *testing.T) {
	store := newMockStore()
	require.NoError(t, NewSeeder(store, 4).Apply(context.Background(), demoCatalog(t)))

	assert.Len(t, store.orgs, 1)
	require.Len(t, store.locations, 1)
	assert.Equal(t, "Richmond", store.locations[0].City)
	assert.Len(t, store.groups, 3)
	assert.Len(t, store.options, 7)
	assert.Len(t, store.products, 2)
	require.Len(t, store.attachments, 4)
	assert.Equal(t, "Size", store.attachments[0].GroupName)
	assert.Empty(t, store.deleted)

	for _, p := range store.products {
		assert.Equal(t, mainLocation, p.LocationID)
		assert.True(t, p.IsActive)
	}
}

func TestSeeder_RetiresVanishedRows(t *testing.T) {
	store := newMockStore()
	stale := uuid.MustParse("00000000-0000-4000-8000-000000000499")
	store.live["products"] = []uuid.UUID{latte, stale}
	store.live["modifier_options"] = []uuid.UUID{uuid.MustParse("00000000-0000-4000-8000-000000000301")}

	require.NoError(t, NewSeeder(store, 1).Apply(context.Background(), demoCatalog(t)))

	assert.Equal(t, []deletion{{table: "products", id: stale}}, store.deleted)
}

func TestSeeder_StoreError(t *testing.T) {
	store := newMockStore()
	store.err = errors.New("connection refused")

	err := NewSeeder(store, 2).Apply(context.Background(), demoCatalog(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestSeedAPIKey(t *testing.T) {
	store := newMockStore()
	require.NoError(t, SeedAPIKey(context.Background(), store, "till-key", []byte("pepper")))

	require.Len(t, store.keys, 1)
	k := store.keys[0]
	assert.Equal(t, DefaultKeyID, k.ID)
	assert.Equal(t, auth.HashKey("till-key", []byte("pepper")), k.KeyHash)
	assert.True(t, k.HasScope(auth.ScopeSubmitOrder))
	assert.True(t, k.HasScope(auth.ScopeTerminalResult))

	assert.Error(t, SeedAPIKey(context.Background(), store, "", nil))
}

// --- Mock implementations ---

type deletion struct {
	table string
	id    uuid.UUID
}

type mockStore struct {
	mu          sync.Mutex
	err         error
	orgs        []catalog.Organization
	locations   []catalog.Location
	groups      []catalog.ModifierGroup
	options     []catalog.Option
	products    []catalog.Product
	attachments []postgres.SeedAttachment
	keys        []auth.APIKeyInfo
	live        map[string][]uuid.UUID
	deleted     []deletion
}

func newMockStore() *mockStore {
	return &mockStore{live: make(map[string][]uuid.UUID)}
}

func (m *mockStore) record(fn func()) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	fn()
	return nil
}

func (m *mockStore) UpsertOrganization(_ context.Context, o catalog.Organization) error {
	return m.record(func() { m.orgs = append(m.orgs, o) })
}

func (m *mockStore) UpsertLocation(_ context.Context, l catalog.Location) error {
	return m.record(func() { m.locations = append(m.locations, l) })
}

func (m *mockStore) UpsertModifierGroup(_ context.Context, g catalog.ModifierGroup) error {
	return m.record(func() { m.groups = append(m.groups, g) })
}

func (m *mockStore) UpsertModifierOption(_ context.Context, o catalog.Option) error {
	return m.record(func() { m.options = append(m.options, o) })
}

func (m *mockStore) UpsertProduct(_ context.Context, p catalog.Product) error {
	return m.record(func() { m.products = append(m.products, p) })
}

func (m *mockStore) UpsertAttachment(_ context.Context, a postgres.SeedAttachment) error {
	return m.record(func() { m.attachments = append(m.attachments, a) })
}

func (m *mockStore) UpsertAPIKey(_ context.Context, k auth.APIKeyInfo) error {
	return m.record(func() { m.keys = append(m.keys, k) })
}

func (m *mockStore) LiveLocationIDs(_ context.Context, table string, _ uuid.UUID) ([]uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.live[table], m.err
}

func (m *mockStore) SoftDelete(_ context.Context, table string, id uuid.UUID) (bool, error) {
	return true, m.record(func() { m.deleted = append(m.deleted, deletion{table: table, id: id}) })
}
