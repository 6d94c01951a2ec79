package modifier

import (
	"fmt"

	"github.com/google/uuid"
)

// Kind discriminates modifier rule violations so clients can point at the
// offending group.
type Kind string

const (
	KindUnknownOption            Kind = "UnknownOption"
	KindInactiveOptionSelected   Kind = "InactiveOptionSelected"
	KindRequiredGroupUnsatisfied Kind = "RequiredGroupUnsatisfied"
	KindBelowMinimumSelections   Kind = "BelowMinimumSelections"
	KindAboveMaximumSelections   Kind = "AboveMaximumSelections"
)

// RuleError is returned by Resolve when a selection set breaks a rule.
// Group fields are zero for KindUnknownOption; OptionID is set only for
// KindUnknownOption and KindInactiveOptionSelected.
type RuleError struct {
	Kind        Kind
	ProductID   uuid.UUID
	ProductName string
	GroupID     uuid.UUID
	GroupName   string
	OptionID    uuid.UUID
	Min         int
	Max         int
	Selected    int
}

func (e *RuleError) Error() string {
	switch e.Kind {
	case KindUnknownOption:
		return fmt.Sprintf("Selected option '%s' is not valid for product '%s'.", e.OptionID, e.ProductName)
	case KindInactiveOptionSelected:
		return fmt.Sprintf("One or more selected options in '%s' are not active.", e.GroupName)
	case KindRequiredGroupUnsatisfied, KindBelowMinimumSelections:
		return fmt.Sprintf("Modifier group '%s' requires at least %d selection(s).", e.GroupName, e.Min)
	case KindAboveMaximumSelections:
		return fmt.Sprintf("Modifier group '%s' allows at most %d selection(s).", e.GroupName, e.Max)
	default:
		return fmt.Sprintf("modifier rule %q violated in group '%s'", e.Kind, e.GroupName)
	}
}
