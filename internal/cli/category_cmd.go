package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tikk-app/tikk/internal/cli/formatter"
	"github.com/tikk-app/tikk/internal/domain"
)

func newCategoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "category",
		Aliases: []string{"cat"},
		Short:   "Manage the category registry",
	}

	cmd.AddCommand(
		newCategoryListCmd(app),
		newCategoryAddCmd(app),
		newCategoryRemoveCmd(app),
		newCategoryRenameCmd(app),
		newCategoryIconsCmd(),
	)

	return cmd
}

func newCategoryListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			cats, err := app.Categories.List(context.Background())
			if err != nil {
				return err
			}
			if len(cats) == 0 {
				fmt.Println(formatter.Dim("No categories."))
				return nil
			}
			for _, c := range cats {
				fmt.Printf("%s  %s\n", formatter.TruncID(c.ID), formatter.CategoryLabel(c))
			}
			fmt.Println(formatter.Dim(fmt.Sprintf("%d/%d used", len(cats), domain.MaxCategories)))
			return nil
		},
	}
}

func newCategoryAddCmd(app *App) *cobra.Command {
	var icon string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := domain.IconName(icon)
			if icon != "" && !name.Valid() {
				return fmt.Errorf("unknown icon %q; run 'tikk category icons'", icon)
			}
			c, err := app.Categories.Add(context.Background(), args[0], name)
			if err != nil {
				return err
			}
			fmt.Printf("Added %s\n", formatter.CategoryLabel(c))
			return nil
		},
	}

	cmd.Flags().StringVarP(&icon, "icon", "i", "", "Icon name from the catalog")
	return cmd
}

func newCategoryRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "rm <category-id>",
		Short: "Delete a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if !yes {
				ok, err := confirmDestructive("Delete this category? Logged sessions keep its name.")
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}
			}
			if err := app.Categories.Delete(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")
	return cmd
}

func newCategoryRenameCmd(app *App) *cobra.Command {
	var icon string

	cmd := &cobra.Command{
		Use:   "rename <category-id> <new-name>",
		Short: "Rename a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := domain.IconName(icon)
			if icon != "" && !name.Valid() {
				return fmt.Errorf("unknown icon %q; run 'tikk category icons'", icon)
			}
			c, err := app.Categories.Rename(context.Background(), args[0], args[1], name)
			if err != nil {
				return err
			}
			fmt.Printf("Renamed to %s\n", formatter.CategoryLabel(c))
			return nil
		},
	}

	cmd.Flags().StringVarP(&icon, "icon", "i", "", "New icon name from the catalog")
	return cmd
}

func newCategoryIconsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "icons",
		Short: "List the icon catalog",
		Run: func(cmd *cobra.Command, args []string) {
			for _, icon := range domain.AvailableIcons {
				fmt.Printf("%s  %s\n", icon.Glyph(), icon)
			}
		},
	}
}
