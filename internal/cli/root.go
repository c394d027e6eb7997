package cli

import (
	"github.com/spf13/cobra"
	"github.com/tikk-app/tikk/internal/db"
	"github.com/tikk-app/tikk/internal/repository"
	"github.com/tikk-app/tikk/internal/service"
	"go.uber.org/zap"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Sessions   service.SessionService
	Categories service.CategoryService
	Timer      service.TimerService

	// Raw store access for snapshot export/import.
	SessionRepo  repository.SessionRepo
	CategoryRepo repository.CategoryRepo
	UoW          db.UnitOfWork

	Logger *zap.Logger

	// IsInteractive reports whether stdin is a terminal; the bare
	// "tikk" invocation opens the TUI only when it is.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "tikk" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "tikk",
		Short: "Terminal time tracker",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runUI(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newUICmd(app),
		newStartCmd(app),
		newStopCmd(app),
		newStatusCmd(app),
		newSwitchCmd(app),
		newDescribeCmd(app),
		newLogCmd(app),
		newCategoryCmd(app),
		newDashboardCmd(app),
		newCalendarCmd(app),
		newExportCmd(app),
		newImportCmd(app),
	)

	return root
}
