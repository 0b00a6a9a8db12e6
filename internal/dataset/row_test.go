package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func money(v float64) Money {
	return Money{Value: v, Valid: true}
}

func TestCPIFromCost(t *testing.T) {
	tests := []struct {
		name   string
		amount Money
		cps    Money
		want   Money
	}{
		{"amount minus cost", money(1000), money(200), money(800)},
		{"missing cps counts as zero", money(1000), Money{}, money(1000)},
		{"missing amount yields missing", Money{}, money(200), Money{}},
		{"negative result passes through", money(100), money(250), money(-150)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CPIFromCost(tt.amount, tt.cps)
			assert.Equal(t, tt.want.Valid, got.Valid)
			assert.InDelta(t, tt.want.Value, got.Value, 1e-9)
		})
	}
}

func TestCPIFromDiscount(t *testing.T) {
	tests := []struct {
		name     string
		amount   Money
		discount Money
		want     Money
	}{
		{"amount times complement", money(1000), money(0.2), money(800)},
		{"missing discount counts as zero", money(1000), Money{}, money(1000)},
		{"missing amount yields missing", Money{}, money(0.2), Money{}},
		{"full discount", money(1000), money(1), money(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CPIFromDiscount(tt.amount, tt.discount)
			assert.Equal(t, tt.want.Valid, got.Valid)
			assert.InDelta(t, tt.want.Value, got.Value, 1e-9)
		})
	}
}

// The two formula variants agree exactly when CPS equals Amount * discount;
// this pins down the relationship the data contract relies on.
func TestCPIFormulasAgreeWhenCostMatchesDiscount(t *testing.T) {
	amount := money(1500)
	discount := money(0.3)
	cps := money(amount.Value * discount.Value)

	fromCost := CPIFromCost(amount, cps)
	fromDiscount := CPIFromDiscount(amount, discount)
	assert.InDelta(t, fromCost.Value, fromDiscount.Value, 1e-9)
}

func TestTableSubsets(t *testing.T) {
	table := &Table{Rows: []Row{
		{SalesMan: "A", Invoiced: true, QIForecast: "YES"},
		{SalesMan: "B", Invoiced: false, QIForecast: "NO"},
		{SalesMan: "C", Invoiced: false, QIForecast: "YES"},
		{SalesMan: "D", Invoiced: true, QIForecast: ""},
	}}

	invoiced := table.Invoiced()
	notInvoiced := table.NotInvoiced()
	won := table.ForecastWon()

	assert.Len(t, invoiced, 2)
	assert.Len(t, notInvoiced, 2)
	assert.Equal(t, table.Len(), len(invoiced)+len(notInvoiced), "invoiced and not-invoiced partition the table")

	assert.Len(t, won, 2)
	for _, row := range won {
		assert.Equal(t, "YES", row.QIForecast)
	}
}

func TestForecastWonIsExactMatch(t *testing.T) {
	// The column is uppercased at load time; the subset match itself is
	// exact and case-sensitive.
	table := &Table{Rows: []Row{
		{QIForecast: "YES"},
		{QIForecast: "yes"},
		{QIForecast: "YES "},
	}}
	assert.Len(t, table.ForecastWon(), 1)
}
