package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/lucianotheforce/quotedesk/internal/budget"
	"github.com/lucianotheforce/quotedesk/internal/cli/formatter"
	"github.com/lucianotheforce/quotedesk/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ledgerRow represents a flattened row in the category/item tree.
type ledgerRow struct {
	isCategory bool
	categoryID string
	itemID     string
}

// savedMsg reports the result of an async write-through save.
type savedMsg struct {
	err error
}

// ledgerView is the home screen: all categories and items with cursor
// navigation, multi-select, grab-and-drop reordering, and totals.
type ledgerView struct {
	state     *SharedState
	cursor    int
	selection *budget.Selection
	drag      *budget.Drag
	status    string
}

func newLedgerView(state *SharedState) *ledgerView {
	return &ledgerView{
		state:     state,
		selection: budget.NewSelection(),
		drag:      budget.NewDrag(state.App.Store),
	}
}

func (v *ledgerView) ID() ViewID { return ViewLedger }

func (v *ledgerView) Title() string {
	return v.state.App.Store.Budget().Title
}

func (v *ledgerView) ShortHelp() []key.Binding {
	if v.drag.Dragging() {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "drop here")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel drag")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "select")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
		key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "grab")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new item")),
		key.NewBinding(key.WithKeys("N"), key.WithHelp("N", "new category")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "ai edit")),
	}
}

func (v *ledgerView) Init() tea.Cmd {
	return nil
}

// rows flattens the current budget into display order.
func (v *ledgerView) rows() []ledgerRow {
	var rows []ledgerRow
	for _, c := range v.state.App.Store.Budget().Categories {
		rows = append(rows, ledgerRow{isCategory: true, categoryID: c.ID})
		for _, it := range c.Items {
			rows = append(rows, ledgerRow{categoryID: c.ID, itemID: it.ID})
		}
	}
	return rows
}

func (v *ledgerView) clampCursor(rows []ledgerRow) {
	if v.cursor >= len(rows) {
		v.cursor = len(rows) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

// save persists the ledger in the background and surfaces failures.
// The snapshot is cloned here, on the event loop goroutine; the command
// goroutine must never read the live tree while later keys mutate it.
func (v *ledgerView) save() tea.Cmd {
	app := v.state.App
	snapshot := app.Store.Budget().Clone()
	return func() tea.Msg {
		return savedMsg{err: app.SaveSnapshot(context.Background(), snapshot)}
	}
}

func (v *ledgerView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		if msg.err != nil {
			v.status = formatter.StyleYellow.Render("Save failed: " + msg.err.Error())
		}
		return v, nil

	case statusMsg:
		v.status = msg.text
		return v, nil

	case refreshViewMsg:
		v.clampCursor(v.rows())
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *ledgerView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := v.rows()
	v.clampCursor(rows)
	v.status = ""

	var row ledgerRow
	if v.cursor < len(rows) {
		row = rows[v.cursor]
	}

	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(rows)-1 {
			v.cursor++
		}

	case " ", "space":
		if row.itemID != "" {
			v.selection.Toggle(row.itemID)
		}

	case "a":
		v.selection.SelectAll(v.state.App.Store.Budget().ItemIDs())

	case "g":
		if row.itemID != "" {
			v.drag.PickUp(row.itemID)
		}

	case "enter":
		if v.drag.Dragging() {
			var moved bool
			if row.itemID != "" {
				moved = v.drag.DropOnItem(row.itemID)
			} else if row.categoryID != "" {
				moved = v.drag.DropOnCategory(row.categoryID)
			} else {
				v.drag.Cancel()
			}
			if moved {
				return v, v.save()
			}
		}

	case "esc":
		if v.drag.Dragging() {
			v.drag.Cancel()
		} else if v.selection.Len() > 0 {
			v.selection.Clear()
		}

	case "x":
		if row.itemID != "" {
			v.state.App.Store.DeleteItem(row.categoryID, row.itemID)
			return v, v.save()
		}
		if row.isCategory {
			v.state.App.Store.DeleteCategory(row.categoryID)
			v.clampCursor(v.rows())
			return v, v.save()
		}

	case "n":
		if row.categoryID != "" {
			if _, err := v.state.App.Store.AddItem(row.categoryID); err != nil {
				v.status = formatter.StyleRed.Render("Error: " + err.Error())
				return v, nil
			}
			return v, v.save()
		}
		v.status = formatter.Dim("Move onto a category first.")

	case "N":
		return v, pushView(newCategoryFormView(v.state))

	case "e":
		if row.itemID != "" {
			_, _, item := v.state.App.Store.Budget().FindItem(row.itemID)
			if item != nil {
				return v, pushView(newItemFormView(v.state, row.categoryID, item))
			}
		}
		if row.isCategory {
			c := v.state.App.Store.Budget().FindCategory(row.categoryID)
			if c != nil {
				return v, pushView(newCategoryEditFormView(v.state, c))
			}
		}

	case "i":
		targets := v.targetIDs(row)
		if len(targets) == 0 {
			v.status = formatter.Dim("Nothing to edit: select items or move onto one.")
			return v, nil
		}
		if v.state.App.BulkEdit == nil {
			v.status = formatter.StyleYellow.Render("AI features are disabled.")
			return v, nil
		}
		return v, pushView(newInstructionView(v.state, targets))
	}

	return v, nil
}

// targetIDs resolves the AI edit target: the selection when non-empty,
// otherwise the item under the cursor.
func (v *ledgerView) targetIDs(row ledgerRow) []string {
	all := v.state.App.Store.Budget().ItemIDs()
	if v.selection.Len() > 0 {
		if resolved := v.selection.Resolve(all); len(resolved) > 0 {
			return resolved
		}
	}
	if row.itemID != "" {
		return []string{row.itemID}
	}
	return nil
}

func (v *ledgerView) View() string {
	b := v.state.App.Store.Budget()
	rows := v.rows()
	v.clampCursor(rows)

	if len(rows) == 0 {
		return "\n  " + formatter.Dim("Empty quote. Press N to add a category.")
	}

	var out strings.Builder
	out.WriteString("\n")

	idx := 0
	for _, c := range b.Categories {
		out.WriteString(v.renderCategoryRow(c, idx == v.cursor))
		out.WriteByte('\n')
		idx++
		for _, it := range c.Items {
			out.WriteString(v.renderItemRow(it, idx == v.cursor))
			out.WriteByte('\n')
			idx++
		}
	}

	out.WriteString("\n" + v.renderFooter(b))
	if v.status != "" {
		out.WriteString("\n  " + v.status)
	}
	return out.String()
}

func (v *ledgerView) renderCategoryRow(c *domain.Category, isCursor bool) string {
	cursor := "  "
	if isCursor {
		cursor = formatter.StyleGreen.Render("▸ ")
	}
	return fmt.Sprintf("%s%s %s  %s",
		cursor,
		formatter.StyleBold.Render(c.Name),
		formatter.Dim(fmt.Sprintf("(%d)", len(c.Items))),
		formatter.Dim(domain.FormatBRL(c.TotalCents())),
	)
}

func (v *ledgerView) renderItemRow(it *domain.LineItem, isCursor bool) string {
	cursor := "  "
	if isCursor {
		cursor = formatter.StyleGreen.Render("▸ ")
	}

	mark := formatter.Dim("·")
	if v.selection.Contains(it.ID) {
		mark = formatter.StyleYellow.Render("●")
	}
	if v.drag.ActiveItemID() == it.ID {
		mark = formatter.StylePurple.Render("✥")
	}

	desc := it.Description
	if !it.Active {
		desc = formatter.StyleDim.Render(desc)
	}

	return fmt.Sprintf("%s  %s %s  %s  %s  %s",
		cursor, mark, desc,
		formatter.Dim(fmt.Sprintf("%d×%d×%d × %s", it.Quantity, it.Days, it.Frequency, domain.FormatBRL(it.UnitPriceCents))),
		formatter.StyleFg.Render(domain.FormatBRL(it.LineTotalCents())),
		formatter.BillingBadge(it.Billing),
	)
}

func (v *ledgerView) renderFooter(b *domain.Budget) string {
	totals := budget.ComputeTotals(b)

	var parts []string
	for _, bt := range domain.AllBillingTypes() {
		parts = append(parts, fmt.Sprintf("%s %s",
			formatter.BillingBadge(bt), domain.FormatBRL(totals.ByBilling[bt])))
	}
	line1 := "  " + strings.Join(parts, formatter.Dim("  │  "))

	line2 := fmt.Sprintf("  %s %s",
		formatter.Bold("Total"),
		formatter.StyleHeader.Render(domain.FormatBRL(totals.GrandTotalCents)))
	if v.selection.Len() > 0 {
		line2 += formatter.Dim(fmt.Sprintf("   %d selected", len(v.selection.Resolve(b.ItemIDs()))))
	}
	if v.drag.Dragging() {
		line2 += "   " + formatter.StylePurple.Render("dragging — enter to drop")
	}

	return line1 + "\n" + line2
}
