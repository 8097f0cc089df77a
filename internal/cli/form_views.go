package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/lucianotheforce/quotedesk/internal/budget"
	"github.com/lucianotheforce/quotedesk/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// formView wraps a huh.Form as a View on the navigation stack.
// When the form completes, it sends a wizardCompleteMsg with the
// done callback's result.
type formView struct {
	state    *SharedState
	form     *huh.Form
	titleStr string
	done     func() tea.Cmd
}

func newFormView(state *SharedState, title string, form *huh.Form, done func() tea.Cmd) *formView {
	return &formView{
		state:    state,
		form:     form,
		titleStr: title,
		done:     done,
	}
}

func (v *formView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *formView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Escape cancels the form.
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return v, func() tea.Msg { return wizardCompleteMsg{} }
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted {
		var doneCmd tea.Cmd
		if v.done != nil {
			doneCmd = v.done()
		}
		return v, func() tea.Msg {
			return wizardCompleteMsg{nextCmd: tea.Batch(cmd, doneCmd)}
		}
	}

	return v, cmd
}

func (v *formView) View() string {
	return v.form.View()
}

func (v *formView) ID() ViewID    { return ViewForm }
func (v *formView) Title() string { return v.titleStr }
func (v *formView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// saveCmd persists the ledger after a form mutation. The budget is
// cloned before the command goroutine starts, so the save never races
// with edits still arriving on the event loop.
func saveCmd(app *App) tea.Cmd {
	snapshot := app.Store.Budget().Clone()
	return func() tea.Msg {
		return savedMsg{err: app.SaveSnapshot(context.Background(), snapshot)}
	}
}

// atoiOrZero parses a positive integer; anything unparsable becomes 0.
func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// priceInput renders centavos in the plain "1234,56" shape the price
// parser accepts, for pre-filling form inputs.
func priceInput(cents int64) string {
	return fmt.Sprintf("%d,%02d", cents/100, cents%100)
}

// newItemFormView builds an edit form pre-filled from the item.
func newItemFormView(state *SharedState, categoryID string, item *domain.LineItem) *formView {
	description := item.Description
	longDescription := item.LongDescription
	notes := item.Notes
	supplier := item.Supplier
	invoiceRef := item.InvoiceRef
	quantity := strconv.Itoa(item.Quantity)
	days := strconv.Itoa(item.Days)
	frequency := strconv.Itoa(item.Frequency)
	unitPrice := priceInput(item.UnitPriceCents)
	billing := string(item.Billing)
	active := item.Active

	var billingOptions []huh.Option[string]
	for _, bt := range domain.AllBillingTypes() {
		billingOptions = append(billingOptions, huh.NewOption(string(bt), string(bt)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Description").Value(&description),
			huh.NewInput().Title("Details").Value(&longDescription),
			huh.NewInput().Title("Notes").Value(&notes),
			huh.NewInput().Title("Quantity").Value(&quantity),
			huh.NewInput().Title("Days").Value(&days),
			huh.NewInput().Title("Frequency").Value(&frequency),
			huh.NewInput().Title("Unit price (BRL)").Value(&unitPrice),
		),
		huh.NewGroup(
			huh.NewSelect[string]().Title("Billing").Options(billingOptions...).Value(&billing),
			huh.NewInput().Title("Supplier").Value(&supplier),
			huh.NewInput().Title("Invoice ref").Value(&invoiceRef),
			huh.NewConfirm().Title("Active").Value(&active),
		),
	)

	app := state.App
	itemID := item.ID
	done := func() tea.Cmd {
		cents, err := domain.ParsePriceToCents(unitPrice)
		if err != nil {
			cents = 0
		}
		patch := budget.FieldPatch{
			budget.FieldDescription:     description,
			budget.FieldLongDescription: longDescription,
			budget.FieldNotes:           notes,
			budget.FieldSupplier:        supplier,
			budget.FieldInvoiceRef:      invoiceRef,
			budget.FieldQuantity:        atoiOrZero(quantity),
			budget.FieldDays:            atoiOrZero(days),
			budget.FieldFrequency:       atoiOrZero(frequency),
			budget.FieldUnitPriceCents:  cents,
			budget.FieldBilling:         domain.BillingType(billing),
			budget.FieldActive:          active,
		}
		if err := app.Store.UpdateItem(categoryID, itemID, patch); err != nil {
			return statusCmd("Error: " + err.Error())
		}
		return saveCmd(app)
	}

	return newFormView(state, "Edit item", form, done)
}

// newCategoryFormView builds a creation form for a new category.
func newCategoryFormView(state *SharedState) *formView {
	var name, description string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&name),
			huh.NewInput().Title("Description").Value(&description),
		),
	)

	app := state.App
	done := func() tea.Cmd {
		if name == "" {
			name = "Nova categoria"
		}
		app.Store.AddCategory(name, description)
		return saveCmd(app)
	}

	return newFormView(state, "New category", form, done)
}

// newCategoryEditFormView builds an edit form pre-filled from the category.
func newCategoryEditFormView(state *SharedState, c *domain.Category) *formView {
	name := c.Name
	description := c.Description

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&name),
			huh.NewInput().Title("Description").Value(&description),
		),
	)

	app := state.App
	categoryID := c.ID
	done := func() tea.Cmd {
		patch := budget.FieldPatch{
			budget.FieldName:        name,
			budget.FieldDescription: description,
		}
		if err := app.Store.UpdateCategory(categoryID, patch); err != nil {
			return statusCmd("Error: " + err.Error())
		}
		return saveCmd(app)
	}

	return newFormView(state, "Edit category", form, done)
}
