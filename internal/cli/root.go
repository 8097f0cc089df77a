package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/lucianotheforce/quotedesk/internal/budget"
	"github.com/lucianotheforce/quotedesk/internal/domain"
	"github.com/lucianotheforce/quotedesk/internal/intelligence"
	"github.com/lucianotheforce/quotedesk/internal/repository"
	"github.com/spf13/cobra"
)

// App holds the ledger store and services used by CLI commands and the TUI.
type App struct {
	Store   *budget.Store
	Budgets repository.BudgetRepo

	// BulkEdit is nil when AI features are disabled.
	BulkEdit intelligence.BulkEditService

	// IsInteractive reports whether stdin is attached to a terminal.
	IsInteractive func() bool
}

// SaveBudget persists the current in-memory ledger.
func (a *App) SaveBudget(ctx context.Context) error {
	return a.SaveSnapshot(ctx, a.Store.Budget())
}

// SaveSnapshot persists a budget snapshot. Async callers pass a clone
// taken before handing off to another goroutine.
func (a *App) SaveSnapshot(ctx context.Context, b *domain.Budget) error {
	if a.Budgets == nil {
		return nil
	}
	return a.Budgets.Save(ctx, b)
}

// NewRootCmd creates the top-level "quotedesk" command and registers all
// subcommands against the provided App. Running it without a subcommand
// opens the interactive ledger when attached to a terminal.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "quotedesk",
		Short: "Interactive commercial quote ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return RunTUI(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newShowCmd(app),
		newEditCmd(app),
		newCategoryCmd(app),
		newItemCmd(app),
		newAICmd(app),
		newResetCmd(app),
	)

	return root
}

// resolveCategoryID matches input against category IDs (exact, then
// prefix) and finally against category names, case-insensitively.
func resolveCategoryID(app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("category is required")
	}

	cats := app.Store.Budget().Categories
	for _, c := range cats {
		if c.ID == input {
			return c.ID, nil
		}
	}

	var matches []string
	for _, c := range cats {
		if strings.HasPrefix(c.ID, input) {
			matches = append(matches, c.ID)
		}
	}
	if len(matches) == 1 {
		return matches[0], nil
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("category ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}

	for _, c := range cats {
		if strings.EqualFold(c.Name, input) {
			return c.ID, nil
		}
	}
	return "", fmt.Errorf("category not found: %q", input)
}

// resolveItemID matches input against item IDs (exact, then prefix).
func resolveItemID(app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("item ID is required")
	}

	ids := app.Store.Budget().ItemIDs()
	for _, id := range ids {
		if id == input {
			return id, nil
		}
	}

	var matches []string
	for _, id := range ids {
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("item not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("item ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
