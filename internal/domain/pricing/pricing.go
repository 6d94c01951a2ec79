// Package pricing computes order money with fixed rounding semantics.
//
// Every monetary step is rounded to cents, half away from zero, before it
// feeds the next step.
package pricing

import (
	"fmt"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

var (
	// ErrEmptyOrder is returned when there are no lines to price.
	ErrEmptyOrder = errors.New("order must contain at least one line")
	// ErrInvalidTaxRate is returned when the tax rate is outside [0, 1].
	ErrInvalidTaxRate = errors.New("tax rate must be between 0 and 1")
)

// InvalidQuantityError is returned when a line has a quantity below 1.
type InvalidQuantityError struct {
	Line     int
	Quantity int
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("line %d: quantity must be at least 1, got %d", e.Line, e.Quantity)
}

// InvalidBasePriceError is returned when a line has a negative base price.
type InvalidBasePriceError struct {
	Line  int
	Price decimal.Decimal
}

func (e *InvalidBasePriceError) Error() string {
	return fmt.Sprintf("line %d: base price must not be negative, got %s", e.Line, e.Price)
}

// Line is the pricing input for one order line.
type Line struct {
	Quantity      int
	BaseUnitPrice decimal.Decimal
	Deltas        []decimal.Decimal
}

// PricedLine is a line with its computed per-unit and total amounts.
type PricedLine struct {
	Quantity          int
	BaseUnitPrice     decimal.Decimal
	ModifierUnitTotal decimal.Decimal
	FinalUnitPrice    decimal.Decimal
	LineTotal         decimal.Decimal
}

// Result holds priced lines, in input order, and the order totals.
type Result struct {
	Lines    []PricedLine
	Subtotal decimal.Decimal
	TaxTotal decimal.Decimal
	Total    decimal.Decimal
}

var one = decimal.NewFromInt(1)

// Round rounds a monetary amount to cents, half away from zero.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ValidTaxRate reports whether rate is within [0, 1].
func ValidTaxRate(rate decimal.Decimal) bool {
	return !rate.IsNegative() && rate.LessThanOrEqual(one)
}

// Calculate prices lines at a flat tax rate. It has no side effects.
func Calculate(lines []Line, taxRate decimal.Decimal) (*Result, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}
	if !ValidTaxRate(taxRate) {
		return nil, ErrInvalidTaxRate
	}

	res := &Result{Lines: make([]PricedLine, 0, len(lines))}
	subtotal := decimal.Zero
	for i, l := range lines {
		if l.Quantity < 1 {
			return nil, &InvalidQuantityError{Line: i, Quantity: l.Quantity}
		}
		if l.BaseUnitPrice.IsNegative() {
			return nil, &InvalidBasePriceError{Line: i, Price: l.BaseUnitPrice}
		}

		mod := Round(decimal.Sum(decimal.Zero, l.Deltas...))
		final := Round(l.BaseUnitPrice.Add(mod))
		total := Round(final.Mul(decimal.NewFromInt(int64(l.Quantity))))

		res.Lines = append(res.Lines, PricedLine{
			Quantity:          l.Quantity,
			BaseUnitPrice:     Round(l.BaseUnitPrice),
			ModifierUnitTotal: mod,
			FinalUnitPrice:    final,
			LineTotal:         total,
		})
		subtotal = subtotal.Add(total)
	}

	res.Subtotal = Round(subtotal)
	res.TaxTotal = Round(res.Subtotal.Mul(taxRate))
	res.Total = Round(res.Subtotal.Add(res.TaxTotal))
	return res, nil
}
