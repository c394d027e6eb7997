package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/tikk-app/tikk/internal/cli/formatter"
)

func newLogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Manage the session log",
	}

	cmd.AddCommand(
		newLogListCmd(app),
		newLogRemoveCmd(app),
		newLogEditCmd(app),
		newLogResumeCmd(app),
	)

	return cmd
}

func newLogListCmd(app *App) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List logged sessions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Sessions.Page(context.Background(), page)
			if err != nil {
				return err
			}
			fmt.Print(formatter.SessionTable(p.Sessions))
			if p.TotalPages > 1 {
				fmt.Println(formatter.PageIndicator(p.Page, p.TotalPages))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 1, "Page to show")
	return cmd
}

func newLogRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "rm <session-id>",
		Short: "Delete a logged session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := app.Sessions.GetByID(ctx, args[0])
			if err != nil {
				return err
			}

			if !yes {
				ok, err := confirmDestructive(fmt.Sprintf("Delete %q (%s)?",
					s.Description, s.Category))
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}
			}

			if err := app.Sessions.Delete(ctx, s.ID); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")
	return cmd
}

func newLogEditCmd(app *App) *cobra.Command {
	var description, category string

	cmd := &cobra.Command{
		Use:   "edit <session-id>",
		Short: "Edit a session's description or category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := app.Sessions.GetByID(ctx, args[0])
			if err != nil {
				return err
			}

			// Unset flags keep the existing value.
			if !cmd.Flags().Changed("description") {
				description = s.Description
			}
			if !cmd.Flags().Changed("category") {
				category = s.Category
			}

			updated, err := app.Sessions.Update(ctx, s.ID, description, category)
			if err != nil {
				return err
			}
			fmt.Println(formatter.SessionLine(updated))
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "New description")
	cmd.Flags().StringVarP(&category, "category", "c", "", "New category")
	return cmd
}

func newLogResumeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "resume <session-id>",
		Short: "Start a new timer seeded from a past session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			committed, err := app.Timer.Resume(ctx, args[0], time.Now())
			if err != nil {
				return err
			}
			if committed != nil {
				fmt.Printf("Logged %s (%s) first.\n", committed.Description, committed.Category)
			}
			cur, err := app.Timer.Current(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("Resumed %s · %s\n", cur.Description, cur.Category)
			return nil
		},
	}
}
