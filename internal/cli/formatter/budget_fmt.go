package formatter

import (
	"fmt"
	"strings"

	"github.com/lucianotheforce/quotedesk/internal/budget"
	"github.com/lucianotheforce/quotedesk/internal/domain"
)

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// Money renders an amount of centavos as a styled BRL string.
func Money(cents int64) string {
	return StyleFg.Render(domain.FormatBRL(cents))
}

// FormatBudgetShow renders the full quote: metadata, one table per
// category, and the totals summary.
func FormatBudgetShow(b *domain.Budget, totals budget.Totals) string {
	var out strings.Builder

	out.WriteString(Header(b.Title) + "\n")
	if b.Description != "" {
		out.WriteString(b.Description + "\n")
	}
	if b.Notes != "" {
		out.WriteString(Dim(b.Notes) + "\n")
	}
	out.WriteString("\n")

	if len(b.Categories) == 0 {
		out.WriteString(Dim("No categories.") + "\n")
		return out.String()
	}

	for _, c := range b.Categories {
		out.WriteString(FormatCategory(c))
		out.WriteString("\n")
	}

	out.WriteString(FormatTotals(totals))
	return out.String()
}

// FormatCategory renders a single category header plus its item table.
func FormatCategory(c *domain.Category) string {
	var out strings.Builder

	title := Bold(c.Name)
	if c.Description != "" {
		title += "  " + Dim(c.Description)
	}
	out.WriteString(title + "\n")

	if len(c.Items) == 0 {
		out.WriteString("  " + Dim("(empty)") + "\n")
		return out.String()
	}

	headers := []string{"ID", "Item", "Qty", "Days", "Freq", "Unit", "Total", "Billing"}
	rows := make([][]string, 0, len(c.Items))
	for _, it := range c.Items {
		desc := it.Description
		if !it.Active {
			desc = StyleDim.Render(desc + " (inactive)")
		}
		rows = append(rows, []string{
			TruncID(it.ID),
			desc,
			fmt.Sprintf("%d", it.Quantity),
			fmt.Sprintf("%d", it.Days),
			fmt.Sprintf("%d", it.Frequency),
			domain.FormatBRL(it.UnitPriceCents),
			Money(it.LineTotalCents()),
			BillingBadge(it.Billing),
		})
	}
	out.WriteString(RenderTable(headers, rows))

	out.WriteString(fmt.Sprintf("  %s %s\n",
		Dim("subtotal:"), Bold(domain.FormatBRL(c.TotalCents()))))
	return out.String()
}

// FormatTotals renders the grand total and the per-billing breakdown.
func FormatTotals(t budget.Totals) string {
	var out strings.Builder

	out.WriteString(Header("Totals") + "\n")
	for _, bt := range domain.AllBillingTypes() {
		out.WriteString(fmt.Sprintf("  %-18s %s\n",
			BillingBadge(bt), domain.FormatBRL(t.ByBilling[bt])))
	}
	out.WriteString(fmt.Sprintf("  %-18s %s\n",
		Bold("Total"), StyleHeader.Render(domain.FormatBRL(t.GrandTotalCents))))
	out.WriteString(Dim(fmt.Sprintf("  %d categories, %d items (%d active)",
		t.CategoryCount, t.ItemCount, t.ActiveItemCount)) + "\n")
	return out.String()
}

// FormatBulkEditOutcome renders the result of an AI bulk edit for display.
func FormatBulkEditOutcome(targeted, changed int, noChanges bool, saveErr string) string {
	if noChanges {
		return Dim("AI reviewed the selection and made no changes.")
	}
	msg := StyleGreen.Render(fmt.Sprintf("AI updated %d of %d item(s).", changed, targeted))
	if saveErr != "" {
		msg += "\n" + StyleYellow.Render("Warning: changes were not persisted: "+saveErr)
	}
	return msg
}
