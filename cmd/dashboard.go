package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"pocketdash/internal/config"
	"pocketdash/internal/dashboard"
	"pocketdash/internal/pocket"
	"pocketdash/internal/tui"
	"pocketdash/pkg/logging"
)

var (
	configPath string // --config
	noTUI      bool   // --no-tui
)

func newDashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the application dashboard",
		Long: `Loads the config file, queries each configured application address
through pocketd, and renders the results.

It can run in two modes:

1. Interactive TUI Mode (default):
   - Launches a terminal dashboard with a live-refreshing application table.
   - Key bindings: r refresh, / search, enter details, y copy address,
     : command line (q quit, g <n> gateway, sa/sp/sv sort), ? help.

2. Non-TUI / CLI Mode (using --no-tui flag):
   - Performs a single refresh and prints the table to stdout, then exits.
   - Useful for scripting or when a TUI is not desired.

A missing or malformed config file aborts with a non-zero exit before any
query is attempted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			client := pocket.NewClient(cfg.RPCEndpoint, pocket.NewExecRunner())

			if noTUI {
				logging.InitForCLI(logging.LevelInfo, os.Stderr)
				rows := dashboard.Refresh(cmd.Context(), client, cfg.Applications, cfg.DefaultGateway())
				return printRows(cmd.OutOrStdout(), rows)
			}

			logCh := logging.InitForTUI(logging.LevelInfo)
			defer logging.CloseTUIChannel()

			program := tea.NewProgram(tui.New(cfg, client, logCh), tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("running dashboard: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", config.DefaultPath, "path to the config file")
	cmd.Flags().BoolVar(&noTUI, "no-tui", false, "print the table once and exit")
	return cmd
}

// printRows writes the row set as an aligned text table for --no-tui mode.
func printRows(w io.Writer, rows []dashboard.Row) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "APP ADDRESS\tSTAKE (POKT)\tSERVICE ID\tGATEWAY")
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", row.Address, row.Stake, row.Service, row.Gateway)
	}
	return tw.Flush()
}
