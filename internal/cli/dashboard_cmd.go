package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/tikk-app/tikk/internal/cli/formatter"
	"github.com/tikk-app/tikk/internal/domain"
	"github.com/tikk-app/tikk/internal/stats"
)

func newDashboardCmd(app *App) *cobra.Command {
	var rangeFlag, category string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show totals and activity for a rolling window",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := stats.Range(rangeFlag)
			switch r {
			case stats.Last24Hours, stats.LastWeek, stats.AllTime:
			default:
				return fmt.Errorf("unknown range %q (24h, 1w, all)", rangeFlag)
			}

			sessions, err := app.Sessions.List(context.Background())
			if err != nil {
				return err
			}

			var opts []stats.Option
			if category != "" {
				opts = append(opts, stats.WithCategoryFilter(category))
			}
			summary := stats.Summarize(sessions, r, time.Now(), opts...)

			fmt.Println(formatter.Header("Dashboard " + string(r)))
			fmt.Printf("Total %s\n\n", formatter.Bold(domain.FormatDuration(summary.Total)))
			fmt.Println(formatter.RenderCategoryBars(summary.ByCategory, 24))
			if len(summary.Series) > 0 {
				fmt.Println(formatter.RenderSeries(summary.Series, 6))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&rangeFlag, "range", "r", "24h", "Window: 24h, 1w or all")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Filter the series to one category")
	return cmd
}
