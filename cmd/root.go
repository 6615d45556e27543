package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pocketdash",
	Short: "Terminal dashboard for Pocket Network applications",
	Long: `pocketdash queries on-chain application records (stake, service
configs, balances) from a pocketd node and renders them in a
live-refreshing terminal table with a k9s-style command line.`,
	// SilenceUsage prevents printing the usage message on errors we handle
	// ourselves (e.g. a missing or malformed config file)
	SilenceUsage: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "pocketdash version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newDashboardCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
