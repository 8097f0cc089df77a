package cli

import (
	"fmt"
	"strconv"

	"github.com/lucianotheforce/quotedesk/internal/budget"
	"github.com/lucianotheforce/quotedesk/internal/cli/formatter"
	"github.com/lucianotheforce/quotedesk/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newItemCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage quote line items",
	}

	cmd.AddCommand(
		newItemAddCmd(app),
		newItemSetCmd(app),
		newItemRemoveCmd(app),
		newItemMoveCmd(app),
	)

	return cmd
}

// itemFlags collects the patchable line item attributes shared by
// "item add" and "item set".
type itemFlags struct {
	description     string
	longDescription string
	notes           string
	supplier        string
	invoiceRef      string
	quantity        int
	days            int
	frequency       int
	unitPrice       string
	billing         string
	active          bool
}

func registerItemFlags(fs *pflag.FlagSet, f *itemFlags) {
	fs.StringVar(&f.description, "description", "", "Item description")
	fs.StringVar(&f.longDescription, "long-description", "", "Detailed description")
	fs.StringVar(&f.notes, "notes", "", "Free-form notes")
	fs.StringVar(&f.supplier, "supplier", "", "Supplier name")
	fs.StringVar(&f.invoiceRef, "invoice", "", "Invoice reference")
	fs.IntVar(&f.quantity, "quantity", 1, "Quantity")
	fs.IntVar(&f.days, "days", 1, "Number of days")
	fs.IntVar(&f.frequency, "frequency", 1, "Frequency multiplier")
	fs.StringVar(&f.unitPrice, "unit-price", "", `Unit price in BRL, e.g. "1234,56"`)
	fs.StringVar(&f.billing, "billing", "", "Billing classification")
	fs.BoolVar(&f.active, "active", true, "Whether the item counts as active")
}

// patch converts the flags the user actually set into a field patch.
func (f *itemFlags) patch(fs *pflag.FlagSet) (budget.FieldPatch, error) {
	patch := budget.FieldPatch{}

	if fs.Changed("description") {
		patch[budget.FieldDescription] = f.description
	}
	if fs.Changed("long-description") {
		patch[budget.FieldLongDescription] = f.longDescription
	}
	if fs.Changed("notes") {
		patch[budget.FieldNotes] = f.notes
	}
	if fs.Changed("supplier") {
		patch[budget.FieldSupplier] = f.supplier
	}
	if fs.Changed("invoice") {
		patch[budget.FieldInvoiceRef] = f.invoiceRef
	}
	if fs.Changed("quantity") {
		patch[budget.FieldQuantity] = f.quantity
	}
	if fs.Changed("days") {
		patch[budget.FieldDays] = f.days
	}
	if fs.Changed("frequency") {
		patch[budget.FieldFrequency] = f.frequency
	}
	if fs.Changed("active") {
		patch[budget.FieldActive] = f.active
	}
	if fs.Changed("unit-price") {
		cents, err := domain.ParsePriceToCents(f.unitPrice)
		if err != nil {
			return nil, fmt.Errorf("invalid unit price %q: %w", f.unitPrice, err)
		}
		patch[budget.FieldUnitPriceCents] = cents
	}
	if fs.Changed("billing") {
		bt := domain.BillingType(f.billing)
		if !domain.IsValidBillingType(bt) {
			return nil, fmt.Errorf("unknown billing type %q (valid: %v)", f.billing, domain.AllBillingTypes())
		}
		patch[budget.FieldBilling] = bt
	}

	return patch, nil
}

func newItemAddCmd(app *App) *cobra.Command {
	flags := &itemFlags{}

	cmd := &cobra.Command{
		Use:   "add <category>",
		Short: "Add a line item to a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catID, err := resolveCategoryID(app, args[0])
			if err != nil {
				return err
			}

			it, err := app.Store.AddItem(catID)
			if err != nil {
				return err
			}

			patch, err := flags.patch(cmd.Flags())
			if err != nil {
				return err
			}
			if len(patch) > 0 {
				if err := app.Store.UpdateItem(catID, it.ID, patch); err != nil {
					return err
				}
			}
			if err := app.SaveBudget(cmd.Context()); err != nil {
				return err
			}

			fmt.Printf("Added item %s %s\n",
				formatter.Bold(it.Description), formatter.TruncID(it.ID))
			return nil
		},
	}

	registerItemFlags(cmd.Flags(), flags)
	return cmd
}

func newItemSetCmd(app *App) *cobra.Command {
	flags := &itemFlags{}

	cmd := &cobra.Command{
		Use:   "set <item>",
		Short: "Update fields of a line item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID, err := resolveItemID(app, args[0])
			if err != nil {
				return err
			}
			cat, _, _ := app.Store.Budget().FindItem(itemID)
			if cat == nil {
				return budget.ErrItemNotFound
			}

			patch, err := flags.patch(cmd.Flags())
			if err != nil {
				return err
			}
			if len(patch) == 0 {
				return fmt.Errorf("nothing to update: pass at least one field flag")
			}

			if err := app.Store.UpdateItem(cat.ID, itemID, patch); err != nil {
				return err
			}
			if err := app.SaveBudget(cmd.Context()); err != nil {
				return err
			}

			fmt.Printf("Updated item %s\n", formatter.TruncID(itemID))
			return nil
		},
	}

	registerItemFlags(cmd.Flags(), flags)
	return cmd
}

func newItemRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <item>",
		Short: "Delete a line item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID, err := resolveItemID(app, args[0])
			if err != nil {
				return err
			}
			cat, _, item := app.Store.Budget().FindItem(itemID)
			if cat == nil {
				return budget.ErrItemNotFound
			}

			app.Store.DeleteItem(cat.ID, itemID)
			if err := app.SaveBudget(cmd.Context()); err != nil {
				return err
			}

			fmt.Printf("Deleted item %s\n", formatter.Bold(item.Description))
			return nil
		},
	}
}

func newItemMoveCmd(app *App) *cobra.Command {
	var index string

	cmd := &cobra.Command{
		Use:   "move <item> <category>",
		Short: "Move a line item into a category",
		Long: `Move a line item to a target category. The --index flag positions the
item within the target ("insert before the item currently at that slot");
without it the item lands at the end.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID, err := resolveItemID(app, args[0])
			if err != nil {
				return err
			}
			catID, err := resolveCategoryID(app, args[1])
			if err != nil {
				return err
			}

			target := len(app.Store.Budget().FindCategory(catID).Items)
			if index != "" {
				n, err := strconv.Atoi(index)
				if err != nil {
					return fmt.Errorf("invalid index %q: expected an integer", index)
				}
				target = n
			}

			if err := app.Store.MoveItem(itemID, catID, target); err != nil {
				return err
			}
			if err := app.SaveBudget(cmd.Context()); err != nil {
				return err
			}

			fmt.Printf("Moved item %s\n", formatter.TruncID(itemID))
			return nil
		},
	}

	cmd.Flags().StringVar(&index, "index", "", "Target position within the category")
	return cmd
}
