package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func deltas(values ...string) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = d(v)
	}
	return out
}

func assertMoney(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.Equal(t, want, got.StringFixed(2), field)
}

func TestCalculate_Validation(t *testing.T) {
	valid := Line{Quantity: 1, BaseUnitPrice: d("1.00")}

	tests := []struct {
		name    string
		lines   []Line
		rate    decimal.Decimal
		wantErr error
	}{
		{name: "no lines", lines: nil, rate: d("0.06"), wantErr: ErrEmptyOrder},
		{name: "negative rate", lines: []Line{valid}, rate: d("-0.01"), wantErr: ErrInvalidTaxRate},
		{name: "rate above one", lines: []Line{valid}, rate: d("1.0001"), wantErr: ErrInvalidTaxRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Calculate(tt.lines, tt.rate)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCalculate_RateBoundsAccepted(t *testing.T) {
	line := []Line{{Quantity: 1, BaseUnitPrice: d("10.00")}}

	res, err := Calculate(line, decimal.Zero)
	require.NoError(t, err)
	assertMoney(t, "0.00", res.TaxTotal, "tax at 0")

	res, err = Calculate(line, d("1"))
	require.NoError(t, err)
	assertMoney(t, "10.00", res.TaxTotal, "tax at 1")
	assertMoney(t, "20.00", res.Total, "total at 1")
}

func TestCalculate_InvalidQuantity(t *testing.T) {
	_, err := Calculate([]Line{
		{Quantity: 1, BaseUnitPrice: d("1.00")},
		{Quantity: 0, BaseUnitPrice: d("1.00")},
	}, decimal.Zero)

	var qErr *InvalidQuantityError
	require.ErrorAs(t, err, &qErr)
	assert.Equal(t, 1, qErr.Line)
	assert.Equal(t, 0, qErr.Quantity)
}

func TestCalculate_InvalidBasePrice(t *testing.T) {
	_, err := Calculate([]Line{{Quantity: 2, BaseUnitPrice: d("-0.01")}}, decimal.Zero)

	var pErr *InvalidBasePriceError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, 0, pErr.Line)
}

func TestCalculate_LatteWithOatMilk(t *testing.T) {
	res, err := Calculate([]Line{
		{Quantity: 2, BaseUnitPrice: d("4.50"), Deltas: deltas("0.75")},
	}, d("0.06"))
	require.NoError(t, err)
	require.Len(t, res.Lines, 1)

	l := res.Lines[0]
	assertMoney(t, "4.50", l.BaseUnitPrice, "base")
	assertMoney(t, "0.75", l.ModifierUnitTotal, "modifiers")
	assertMoney(t, "5.25", l.FinalUnitPrice, "final unit")
	assertMoney(t, "10.50", l.LineTotal, "line total")

	assertMoney(t, "10.50", res.Subtotal, "subtotal")
	assertMoney(t, "0.63", res.TaxTotal, "tax")
	assertMoney(t, "11.13", res.Total, "total")
}

func TestCalculate_RoundsEachStep(t *testing.T) {
	tests := []struct {
		name      string
		line      Line
		rate      string
		wantMod   string
		wantFinal string
		wantLine  string
		wantTax   string
	}{
		{
			// 0.125 + 0.0 rounds up to 0.13 before it is added to the base.
			name:      "modifier half rounds away from zero",
			line:      Line{Quantity: 3, BaseUnitPrice: d("1.00"), Deltas: deltas("0.125")},
			rate:      "0",
			wantMod:   "0.13",
			wantFinal: "1.13",
			wantLine:  "3.39",
			wantTax:   "0.00",
		},
		{
			name:      "negative modifier half rounds away from zero",
			line:      Line{Quantity: 1, BaseUnitPrice: d("2.00"), Deltas: deltas("-0.125")},
			rate:      "0",
			wantMod:   "-0.13",
			wantFinal: "1.87",
			wantLine:  "1.87",
			wantTax:   "0.00",
		},
		{
			// Rounding the unit price first gives 1.01 x 3 = 3.03; rounding
			// only at the end would give 3.02.
			name:      "unit price rounded before multiplying",
			line:      Line{Quantity: 3, BaseUnitPrice: d("1.005")},
			rate:      "0",
			wantMod:   "0.00",
			wantFinal: "1.01",
			wantLine:  "3.03",
			wantTax:   "0.00",
		},
		{
			name:      "tax half cent rounds up",
			line:      Line{Quantity: 1, BaseUnitPrice: d("0.50")},
			rate:      "0.05",
			wantMod:   "0.00",
			wantFinal: "0.50",
			wantLine:  "0.50",
			wantTax:   "0.03",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Calculate([]Line{tt.line}, d(tt.rate))
			require.NoError(t, err)

			l := res.Lines[0]
			assertMoney(t, tt.wantMod, l.ModifierUnitTotal, "modifiers")
			assertMoney(t, tt.wantFinal, l.FinalUnitPrice, "final unit")
			assertMoney(t, tt.wantLine, l.LineTotal, "line total")
			assertMoney(t, tt.wantTax, res.TaxTotal, "tax")
		})
	}
}

func TestCalculate_NegativeDeltasCanDiscount(t *testing.T) {
	res, err := Calculate([]Line{
		{Quantity: 1, BaseUnitPrice: d("3.00"), Deltas: deltas("-0.50", "0.25")},
		{Quantity: 2, BaseUnitPrice: d("4.50"), Deltas: deltas("1.00", "0.75", "1.25")},
	}, d("0.0825"))
	require.NoError(t, err)

	assertMoney(t, "2.75", res.Lines[0].LineTotal, "first line")
	assertMoney(t, "15.00", res.Lines[1].LineTotal, "second line")
	assertMoney(t, "17.75", res.Subtotal, "subtotal")
	// 17.75 * 0.0825 = 1.464375
	assertMoney(t, "1.46", res.TaxTotal, "tax")
	assertMoney(t, "19.21", res.Total, "total")
}
