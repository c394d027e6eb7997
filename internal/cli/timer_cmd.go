package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/tikk-app/tikk/internal/cli/formatter"
	"github.com/tikk-app/tikk/internal/domain"
	"github.com/tikk-app/tikk/internal/service"
)

func newStartCmd(app *App) *cobra.Command {
	var category, description string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the timer",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			cur, err := app.Timer.Current(ctx)
			if err != nil {
				return err
			}
			if cur.Running {
				fmt.Printf("Timer already running on %s (%s elapsed)\n",
					cur.Category, domain.FormatDurationExact(cur.Elapsed(time.Now())))
				return nil
			}

			t, err := app.Timer.Start(ctx, category)
			if err != nil {
				return err
			}
			if description != "" {
				if err := app.Timer.SetDescription(ctx, description); err != nil {
					return err
				}
			}
			fmt.Printf("Started tracking %s\n", t.Category)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Category to track")
	cmd.Flags().StringVarP(&description, "description", "d", "", "What you are working on")
	return cmd
}

func newStopCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the timer and log the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Timer.Stop(context.Background(), time.Now())
			if err != nil {
				if errors.Is(err, service.ErrTimerNotRunning) {
					fmt.Println("Timer is not running.")
					return nil
				}
				return err
			}
			fmt.Printf("Logged %s · %s (%s)\n",
				s.Description, s.Category, domain.FormatDurationExact(s.Duration))
			return nil
		},
	}
}

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the timer state",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := app.Timer.Current(context.Background())
			if err != nil {
				return err
			}
			if !t.Running {
				fmt.Println(formatter.Dim("Idle."))
				return nil
			}
			desc := t.Description
			if desc == "" {
				desc = domain.DefaultDescription
			}
			fmt.Printf("%s  %s · %s\n",
				formatter.RenderClock(t.Elapsed(time.Now())), desc, t.Category)
			return nil
		},
	}
}

func newSwitchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "switch <category>",
		Short: "Reassign a running uncategorized timer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := app.Timer.SwitchCategory(context.Background(), args[0])
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Switch only applies while the timer runs uncategorized; use stop + start instead.")
				return nil
			}
			fmt.Printf("Now tracking %s\n", args[0])
			return nil
		},
	}
}

func newDescribeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <text>",
		Short: "Set the running timer's description",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			t, err := app.Timer.Current(ctx)
			if err != nil {
				return err
			}
			if !t.Running {
				fmt.Println("Timer is not running.")
				return nil
			}
			desc := args[0]
			for _, a := range args[1:] {
				desc += " " + a
			}
			return app.Timer.SetDescription(ctx, desc)
		},
	}
}
