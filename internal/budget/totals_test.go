package budget

import (
	"testing"

	"github.com/lucianotheforce/quotedesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotals_PartitionsByBilling(t *testing.T) {
	b := &domain.Budget{
		Categories: []*domain.Category{
			{
				ID: "prod",
				Items: []*domain.LineItem{
					{ID: "i1", Quantity: 2, Days: 3, Frequency: 1, UnitPriceCents: 10000, Billing: domain.BillingDirectToClient, Active: true},
					{ID: "i2", Quantity: 1, Days: 1, Frequency: 1, UnitPriceCents: 5000, Billing: domain.BillingInternalTeam},
				},
			},
			{
				ID: "pos",
				Items: []*domain.LineItem{
					{ID: "i3", Quantity: 1, Days: 2, Frequency: 2, UnitPriceCents: 2500, Billing: domain.BillingThirdParty, Active: true},
				},
			},
		},
	}

	totals := ComputeTotals(b)

	assert.Equal(t, int64(60000+5000+10000), totals.GrandTotalCents)
	assert.Equal(t, int64(60000), totals.ByBilling[domain.BillingDirectToClient])
	assert.Equal(t, int64(5000), totals.ByBilling[domain.BillingInternalTeam])
	assert.Equal(t, int64(10000), totals.ByBilling[domain.BillingThirdParty])
	assert.Equal(t, int64(65000), totals.ByCategory["prod"])
	assert.Equal(t, int64(10000), totals.ByCategory["pos"])
	assert.Equal(t, 2, totals.CategoryCount)
	assert.Equal(t, 3, totals.ItemCount)
	assert.Equal(t, 2, totals.ActiveItemCount)
}

func TestComputeTotals_EmptyBudget(t *testing.T) {
	totals := ComputeTotals(&domain.Budget{})
	assert.Equal(t, int64(0), totals.GrandTotalCents)
	assert.Equal(t, 0, totals.ItemCount)
	// All declared classifications appear even when zero.
	assert.Len(t, totals.ByBilling, 3)
}

func TestComputeTotals_Idempotent(t *testing.T) {
	s, c := newTestStore(t)
	it, err := s.AddItem(c.ID)
	require.NoError(t, err)
	require.NoError(t, s.UpdateItem(c.ID, it.ID, FieldPatch{FieldQuantity: 7, FieldUnitPriceCents: int64(333)}))

	first := ComputeTotals(s.Budget())
	second := ComputeTotals(s.Budget())
	assert.Equal(t, first, second)
}

func TestComputeTotals_UnchangedByReorder(t *testing.T) {
	s, c := newTestStore(t)
	i1, _ := s.AddItem(c.ID)
	i2, _ := s.AddItem(c.ID)
	require.NoError(t, s.UpdateItem(c.ID, i1.ID, FieldPatch{FieldQuantity: 2, FieldDays: 3, FieldUnitPriceCents: int64(10000)}))
	require.NoError(t, s.UpdateItem(c.ID, i2.ID, FieldPatch{FieldUnitPriceCents: int64(5000)}))

	before := ComputeTotals(s.Budget())
	require.Equal(t, int64(65000), before.ByCategory[c.ID])

	require.NoError(t, s.MoveItem(i2.ID, c.ID, 0))
	assert.Equal(t, []string{i2.ID, i1.ID}, itemIDs(c))

	after := ComputeTotals(s.Budget())
	assert.Equal(t, before.GrandTotalCents, after.GrandTotalCents)
	assert.Equal(t, before.ByCategory[c.ID], after.ByCategory[c.ID])
}
