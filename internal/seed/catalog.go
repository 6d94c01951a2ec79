// Package seed loads a menu catalog file into the database.
//
// A catalog file is YAML, optionally gzip-compressed, describing
// organizations, their locations and each location's modifier groups and
// products. Seeding is an upsert: rows present in the file are created or
// revived, and catalog rows of a seeded location that the file no longer
// mentions are soft-deleted.
package seed

import (
	"bufio"
	"bytes"
	"io"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/klauspost/pgzip"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Catalog is the root of a catalog file.
type Catalog struct {
	Organizations []Organization `yaml:"organizations"`
}

// Organization is a tenant and its locations.
type Organization struct {
	ID        uuid.UUID  `yaml:"id"`
	Name      string     `yaml:"name"`
	Locations []Location `yaml:"locations"`
}

// Address is a location's postal address.
type Address struct {
	Line1      string `yaml:"line1"`
	City       string `yaml:"city"`
	Region     string `yaml:"region"`
	PostalCode string `yaml:"postalCode"`
}

// Location is a store with its menu.
type Location struct {
	ID             uuid.UUID       `yaml:"id"`
	Name           string          `yaml:"name"`
	Address        Address         `yaml:"address"`
	ModifierGroups []ModifierGroup `yaml:"modifierGroups"`
	Products       []Product       `yaml:"products"`
}

// ModifierGroup is a set of options shared by the location's products.
type ModifierGroup struct {
	ID      uuid.UUID `yaml:"id"`
	Name    string    `yaml:"name"`
	Options []Option  `yaml:"options"`
}

// Option is a modifier choice. Active defaults to true.
type Option struct {
	ID         uuid.UUID       `yaml:"id"`
	Name       string          `yaml:"name"`
	PriceDelta decimal.Decimal `yaml:"priceDelta"`
	Active     *bool           `yaml:"active"`
}

// Product is a menu item. Active defaults to true.
type Product struct {
	ID        uuid.UUID       `yaml:"id"`
	Name      string          `yaml:"name"`
	SKU       string          `yaml:"sku"`
	BasePrice decimal.Decimal `yaml:"basePrice"`
	Active    *bool           `yaml:"active"`
	Modifiers []Modifier      `yaml:"modifiers"`
}

// Modifier attaches a group to a product with its selection rules.
type Modifier struct {
	ID       uuid.UUID `yaml:"id"`
	Group    uuid.UUID `yaml:"group"`
	Required bool      `yaml:"required"`
	Min      int       `yaml:"min"`
	Max      int       `yaml:"max"`
	Order    int       `yaml:"order"`
}

func active(v *bool) bool {
	return v == nil || *v
}

var gzipMagic = []byte{0x1f, 0x8b}

// Parse reads a catalog from r. Gzip input is detected by its magic bytes.
func Parse(r io.Reader) (*Catalog, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(gzipMagic)); err == nil && bytes.Equal(head, gzipMagic) {
		zr, err := pgzip.NewReader(br)
		if err != nil {
			return nil, errors.Wrap(err, "open gzip")
		}
		defer func() { _ = zr.Close() }()
		r = zr
	} else {
		r = br
	}

	var c Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, errors.Wrap(err, "decode catalog")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks references and selection rules. Ids must be unique across
// the whole catalog.
func (c *Catalog) Validate() error {
	seen := make(map[uuid.UUID]string)
	claim := func(id uuid.UUID, what string) error {
		if id == uuid.Nil {
			return errors.Errorf("%s: id is required", what)
		}
		if prev, ok := seen[id]; ok {
			return errors.Errorf("%s: id %s already used by %s", what, id, prev)
		}
		seen[id] = what
		return nil
	}

	if len(c.Organizations) == 0 {
		return errors.New("catalog has no organizations")
	}
	for _, org := range c.Organizations {
		if err := claim(org.ID, "organization "+org.Name); err != nil {
			return err
		}
		for _, loc := range org.Locations {
			if err := claim(loc.ID, "location "+loc.Name); err != nil {
				return err
			}
			if err := validateLocation(loc, claim); err != nil {
				return errors.Wrapf(err, "location %q", loc.Name)
			}
		}
	}
	return nil
}

func validateLocation(loc Location, claim func(uuid.UUID, string) error) error {
	groups := make(map[uuid.UUID]struct{}, len(loc.ModifierGroups))
	for _, g := range loc.ModifierGroups {
		if err := claim(g.ID, "modifier group "+g.Name); err != nil {
			return err
		}
		groups[g.ID] = struct{}{}
		for _, o := range g.Options {
			if err := claim(o.ID, "option "+o.Name); err != nil {
				return err
			}
		}
	}

	for _, p := range loc.Products {
		if err := claim(p.ID, "product "+p.Name); err != nil {
			return err
		}
		if p.BasePrice.IsNegative() {
			return errors.Errorf("product %q: base price is negative", p.Name)
		}
		attached := make(map[uuid.UUID]struct{}, len(p.Modifiers))
		for _, m := range p.Modifiers {
			if err := claim(m.ID, "modifier of "+p.Name); err != nil {
				return err
			}
			if _, ok := groups[m.Group]; !ok {
				return errors.Errorf("product %q: group %s is not defined for the location", p.Name, m.Group)
			}
			if _, dup := attached[m.Group]; dup {
				return errors.Errorf("product %q: group %s attached twice", p.Name, m.Group)
			}
			attached[m.Group] = struct{}{}
			if m.Min < 0 || m.Max < 1 || m.Min > m.Max {
				return errors.Errorf("product %q: invalid selection range %d..%d", p.Name, m.Min, m.Max)
			}
		}
	}
	return nil
}
