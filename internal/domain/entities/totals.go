package entities

import "github.com/shopspring/decimal"

// ComputeTotals re-reduces the derived totals of a draft from scratch.
// traffic is Σ rate×quantity over items; total adds Σ price over services.
func ComputeTotals(items []LineItem, services []ServiceLine) (traffic float64, total float64) {
	t := decimal.Zero
	for _, it := range items {
		t = t.Add(decimal.NewFromFloat(it.DataPerHour).Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	sum := t
	for _, s := range services {
		sum = sum.Add(decimal.NewFromFloat(s.Price))
	}
	return t.InexactFloat64(), sum.InexactFloat64()
}

// OrderTraffic is Σ rate×quantity over persisted order items.
func OrderTraffic(items []OrderItem) float64 {
	t := decimal.Zero
	for _, it := range items {
		t = t.Add(decimal.NewFromFloat(it.DataPerHour).Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return t.InexactFloat64()
}
