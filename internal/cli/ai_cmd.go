package cli

import (
	"fmt"
	"strings"

	"github.com/lucianotheforce/quotedesk/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAICmd(app *App) *cobra.Command {
	var items []string

	cmd := &cobra.Command{
		Use:   "ai <instruction>",
		Short: "Apply a natural-language edit to line items",
		Long: `Send the selected line items and an instruction to the AI generator
and merge the validated response back into the quote. Without --item the
whole quote is targeted.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.BulkEdit == nil {
				return fmt.Errorf("AI features are disabled (set QUOTEDESK_AI_ENABLED=true)")
			}
			if !app.BulkEdit.Available(cmd.Context()) {
				return fmt.Errorf("AI generator is unreachable (check QUOTEDESK_AI_ENDPOINT)")
			}

			targets := app.Store.Budget().ItemIDs()
			if len(items) > 0 {
				targets = targets[:0]
				for _, in := range items {
					id, err := resolveItemID(app, in)
					if err != nil {
						return err
					}
					targets = append(targets, id)
				}
			}

			outcome, err := app.BulkEdit.Edit(cmd.Context(), targets, strings.Join(args, " "))
			if err != nil {
				return err
			}

			saveErr := ""
			if outcome.SaveErr != nil {
				saveErr = outcome.SaveErr.Error()
			}
			fmt.Println(formatter.FormatBulkEditOutcome(
				outcome.TargetedItems, outcome.ChangedItems, outcome.NoChanges, saveErr))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&items, "item", nil, "Target item ID (repeatable); defaults to all items")
	return cmd
}
