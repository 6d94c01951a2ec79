// Package modifier validates a line's selected options against the modifier
// group rules attached to its product.
package modifier

import (
	"cmp"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xenking/mofer-pos/internal/domain/catalog"
)

// Selection is a resolved option with its catalog data captured at the time
// of resolution.
type Selection struct {
	GroupID    uuid.UUID
	OptionID   uuid.UUID
	GroupName  string
	OptionName string
	PriceDelta decimal.Decimal
}

type candidate struct {
	option    catalog.Option
	groupID   uuid.UUID
	groupName string
}

// Resolve checks selected against the product's attachments and returns the
// selections ordered by attachment DisplayOrder, then option name.
//
// An option id passed more than once counts once per occurrence toward the
// group's cardinality and is returned once per occurrence.
func Resolve(p catalog.Product, selected []uuid.UUID) ([]Selection, error) {
	attachments := sortedAttachments(p.Attachments)

	valid := make(map[uuid.UUID]candidate)
	for _, a := range attachments {
		for _, o := range a.Options {
			valid[o.ID] = candidate{option: o, groupID: a.GroupID, groupName: a.GroupName}
		}
	}

	for _, id := range selected {
		if _, ok := valid[id]; !ok {
			return nil, &RuleError{
				Kind:        KindUnknownOption,
				ProductID:   p.ID,
				ProductName: p.Name,
				OptionID:    id,
			}
		}
	}

	byGroup := make(map[uuid.UUID][]candidate, len(attachments))
	for _, id := range selected {
		c := valid[id]
		byGroup[c.groupID] = append(byGroup[c.groupID], c)
	}

	for _, a := range attachments {
		if err := checkGroup(p, a, byGroup[a.GroupID]); err != nil {
			return nil, err
		}
	}

	out := make([]Selection, 0, len(selected))
	for _, a := range attachments {
		group := byGroup[a.GroupID]
		slices.SortStableFunc(group, func(x, y candidate) int {
			if c := strings.Compare(x.option.Name, y.option.Name); c != 0 {
				return c
			}
			return strings.Compare(x.option.ID.String(), y.option.ID.String())
		})
		for _, c := range group {
			out = append(out, Selection{
				GroupID:    a.GroupID,
				OptionID:   c.option.ID,
				GroupName:  c.groupName,
				OptionName: c.option.Name,
				PriceDelta: c.option.PriceDelta,
			})
		}
	}
	return out, nil
}

func checkGroup(p catalog.Product, a catalog.Attachment, group []candidate) error {
	ruleErr := func(kind Kind) *RuleError {
		return &RuleError{
			Kind:        kind,
			ProductID:   p.ID,
			ProductName: p.Name,
			GroupID:     a.GroupID,
			GroupName:   a.GroupName,
			Min:         a.MinSelected,
			Max:         a.MaxSelected,
			Selected:    len(group),
		}
	}

	for _, c := range group {
		if !c.option.IsActive {
			e := ruleErr(KindInactiveOptionSelected)
			e.OptionID = c.option.ID
			return e
		}
	}

	n := len(group)
	if need := max(1, a.MinSelected); a.IsRequired && n < need {
		e := ruleErr(KindRequiredGroupUnsatisfied)
		e.Min = need
		return e
	}
	if n < a.MinSelected {
		return ruleErr(KindBelowMinimumSelections)
	}
	if n > a.MaxSelected {
		return ruleErr(KindAboveMaximumSelections)
	}
	return nil
}

// sortedAttachments returns a copy ordered by DisplayOrder. Equal orders fall
// back to the group name so the result does not depend on load order.
func sortedAttachments(in []catalog.Attachment) []catalog.Attachment {
	out := slices.Clone(in)
	slices.SortStableFunc(out, func(x, y catalog.Attachment) int {
		if c := cmp.Compare(x.DisplayOrder, y.DisplayOrder); c != 0 {
			return c
		}
		return strings.Compare(x.GroupName, y.GroupName)
	})
	return out
}
