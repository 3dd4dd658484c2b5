// Package costing implements the cost rollup engine: pure functions that
// derive unit prices, per-component cost breakdowns, and aggregate costs from
// a point-in-time snapshot of raw material prices. No I/O happens here —
// services fetch the snapshot and persist the result.
package costing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Component is one declared recipe input: a weak reference to a raw material
// plus the quantity consumed.
type Component struct {
	MaterialID uuid.UUID
	Quantity   decimal.Decimal
}

// BreakdownItem is the snapshot-enriched form of a Component. UnitCost is the
// material's unit price at computation time, not a live reference.
type BreakdownItem struct {
	MaterialID uuid.UUID
	UnitCost   decimal.Decimal
	Quantity   decimal.Decimal
	Cost       decimal.Decimal
}

// Rollup is the result of aggregating component costs.
type Rollup struct {
	Breakdown []BreakdownItem
	Total     decimal.Decimal
}

// Snapshot maps material id → unit price as of a single point in time.
type Snapshot map[uuid.UUID]decimal.Decimal

// ComputeRollup resolves each component against the snapshot and sums the
// per-component costs. A material id absent from the snapshot resolves to a
// zero unit cost ("zero fallback") — unresolved references are a tolerated
// state, not an error; callers that must distinguish "no recipe" from
// "recipe costs zero" check for record absence instead.
//
// The breakdown preserves component order and the result depends only on the
// inputs: identical components and snapshot always produce an identical
// rollup.
func ComputeRollup(components []Component, snapshot Snapshot) Rollup {
	breakdown := make([]BreakdownItem, 0, len(components))
	total := decimal.Zero

	for _, c := range components {
		unitCost := snapshot[c.MaterialID] // zero value on miss — zero fallback
		cost := unitCost.Mul(c.Quantity)
		breakdown = append(breakdown, BreakdownItem{
			MaterialID: c.MaterialID,
			UnitCost:   unitCost,
			Quantity:   c.Quantity,
			Cost:       cost,
		})
		total = total.Add(cost)
	}

	return Rollup{Breakdown: breakdown, Total: total}
}

// PerUnitCost divides a rollup total across the units a batch yields.
// A non-positive outputUnits yields zero rather than a division error.
func PerUnitCost(total, outputUnits decimal.Decimal) decimal.Decimal {
	if outputUnits.Sign() <= 0 {
		return decimal.Zero
	}
	return total.Div(outputUnits)
}

// UnitPrice derives the per-unit price of a purchased lot. Used for raw
// materials (totalPrice/quantity) and products (totalCost/orderQuantity),
// with the same zero-guard as PerUnitCost.
func UnitPrice(totalPrice, quantity decimal.Decimal) decimal.Decimal {
	if quantity.Sign() <= 0 {
		return decimal.Zero
	}
	return totalPrice.Div(quantity)
}
