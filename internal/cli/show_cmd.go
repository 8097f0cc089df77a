package cli

import (
	"fmt"

	"github.com/lucianotheforce/quotedesk/internal/budget"
	"github.com/lucianotheforce/quotedesk/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the quote with per-category and per-billing totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			b := app.Store.Budget()
			fmt.Print(formatter.FormatBudgetShow(b, budget.ComputeTotals(b)))
			return nil
		},
	}
}

func newEditCmd(app *App) *cobra.Command {
	var title, description, notes string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Update the quote title, description, or notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := budget.FieldPatch{}
			if cmd.Flags().Changed("title") {
				patch[budget.FieldTitle] = title
			}
			if cmd.Flags().Changed("description") {
				patch[budget.FieldDescription] = description
			}
			if cmd.Flags().Changed("notes") {
				patch[budget.FieldNotes] = notes
			}
			if len(patch) == 0 {
				return fmt.Errorf("nothing to update: pass --title, --description, or --notes")
			}

			if err := app.Store.UpdateMeta(patch); err != nil {
				return err
			}
			if err := app.SaveBudget(cmd.Context()); err != nil {
				return err
			}

			fmt.Printf("Updated quote %s\n", formatter.Bold(app.Store.Budget().Title))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Quote title")
	cmd.Flags().StringVar(&description, "description", "", "Quote description")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	return cmd
}

func newResetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Discard the stored quote and start from the factory default",
		RunE: func(cmd *cobra.Command, args []string) error {
			fresh, err := app.Budgets.Reset(cmd.Context())
			if err != nil {
				return err
			}
			app.Store.Replace(fresh)
			fmt.Printf("Reset to %s\n", formatter.Bold(fresh.Title))
			return nil
		},
	}
}
