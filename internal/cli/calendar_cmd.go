package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/tikk-app/tikk/internal/calendar"
	"github.com/tikk-app/tikk/internal/cli/formatter"
)

func newCalendarCmd(app *App) *cobra.Command {
	var granularity, dateFlag string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Browse sessions by day, week, month or year",
		RunE: func(cmd *cobra.Command, args []string) error {
			g := calendar.Granularity(granularity)
			switch g {
			case calendar.Day, calendar.Week, calendar.Month, calendar.Year:
			default:
				return fmt.Errorf("unknown granularity %q (day, week, month, year)", granularity)
			}

			selected := time.Now()
			if dateFlag != "" {
				parsed, err := time.ParseInLocation("2006-01-02", dateFlag, time.Local)
				if err != nil {
					return fmt.Errorf("parsing date %q: %w", dateFlag, err)
				}
				selected = parsed
			}

			sessions, err := app.Sessions.List(context.Background())
			if err != nil {
				return err
			}

			switch g {
			case calendar.Day:
				fmt.Println(formatter.Header(selected.Format("Monday, Jan 2 2006")))
				fmt.Print(formatter.RenderDaySlots(calendar.DaySlots(sessions, selected)))
			case calendar.Week:
				start := calendar.StartOfWeek(selected)
				fmt.Println(formatter.Header("Week of " + start.Format("Jan 2")))
				fmt.Print(formatter.RenderWeek(calendar.WeekDays(sessions, selected)))
			case calendar.Month:
				fmt.Print(formatter.RenderMonth(calendar.MonthCells(selected, time.Now()), selected))
			case calendar.Year:
				fmt.Print(formatter.RenderYear(calendar.YearGrids(selected, time.Now()), selected))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&granularity, "zoom", "z", "day", "day, week, month or year")
	cmd.Flags().StringVarP(&dateFlag, "date", "d", "", "Anchor date (YYYY-MM-DD), default today")
	return cmd
}
