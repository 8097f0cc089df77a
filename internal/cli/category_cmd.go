package cli

import (
	"fmt"

	"github.com/lucianotheforce/quotedesk/internal/budget"
	"github.com/lucianotheforce/quotedesk/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCategoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage quote categories",
	}

	cmd.AddCommand(
		newCategoryAddCmd(app),
		newCategorySetCmd(app),
		newCategoryRemoveCmd(app),
	)

	return cmd
}

func newCategoryAddCmd(app *App) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a new category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := app.Store.AddCategory(args[0], description)
			if err := app.SaveBudget(cmd.Context()); err != nil {
				return err
			}
			fmt.Printf("Created category %s %s\n",
				formatter.Bold(c.Name), formatter.TruncID(c.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Category description")
	return cmd
}

func newCategorySetCmd(app *App) *cobra.Command {
	var name, description string

	cmd := &cobra.Command{
		Use:   "set <category>",
		Short: "Update a category's name or description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveCategoryID(app, args[0])
			if err != nil {
				return err
			}

			patch := budget.FieldPatch{}
			if cmd.Flags().Changed("name") {
				patch[budget.FieldName] = name
			}
			if cmd.Flags().Changed("description") {
				patch[budget.FieldDescription] = description
			}
			if len(patch) == 0 {
				return fmt.Errorf("nothing to update: pass --name or --description")
			}

			if err := app.Store.UpdateCategory(id, patch); err != nil {
				return err
			}
			if err := app.SaveBudget(cmd.Context()); err != nil {
				return err
			}

			fmt.Printf("Updated category %s\n", formatter.TruncID(id))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Category name")
	cmd.Flags().StringVar(&description, "description", "", "Category description")
	return cmd
}

func newCategoryRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <category>",
		Short: "Delete a category and all its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveCategoryID(app, args[0])
			if err != nil {
				return err
			}

			c := app.Store.Budget().FindCategory(id)
			name := ""
			if c != nil {
				name = c.Name
			}

			app.Store.DeleteCategory(id)
			if err := app.SaveBudget(cmd.Context()); err != nil {
				return err
			}

			fmt.Printf("Deleted category %s\n", formatter.Bold(name))
			return nil
		},
	}
}
