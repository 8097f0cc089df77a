package budget

import "github.com/lucianotheforce/quotedesk/internal/domain"

// Totals is the derived aggregate view of a budget: the grand total, the
// partition by billing classification, per-category totals, and the summary
// counters. It is always recomputed from item attributes, never stored.
type Totals struct {
	GrandTotalCents int64
	ByBilling       map[domain.BillingType]int64
	ByCategory      map[string]int64
	CategoryCount   int
	ItemCount       int
	ActiveItemCount int
}

// ComputeTotals recomputes every derived total from the current tree.
// It is pure and idempotent: the same budget always yields the same totals.
func ComputeTotals(b *domain.Budget) Totals {
	t := Totals{
		ByBilling:  make(map[domain.BillingType]int64),
		ByCategory: make(map[string]int64),
	}
	for _, bt := range domain.AllBillingTypes() {
		t.ByBilling[bt] = 0
	}

	t.CategoryCount = len(b.Categories)
	for _, c := range b.Categories {
		var catTotal int64
		for _, it := range c.Items {
			line := it.LineTotalCents()
			catTotal += line
			t.ByBilling[it.Billing] += line
			t.ItemCount++
			if it.Active {
				t.ActiveItemCount++
			}
		}
		t.ByCategory[c.ID] = catTotal
		t.GrandTotalCents += catTotal
	}
	return t
}
