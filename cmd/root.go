// =============================================================================
// Sales Reporting Engine - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that the other commands ('generate', 'validate',
// 'version') are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (salesreport)
//   ├── generateCmd (salesreport generate)
//   ├── validateCmd (salesreport validate)
//   └── versionCmd (salesreport version)
//
// CONFIGURATION:
//   The root command owns the global flags (--config, --verbose), loads the
//   YAML configuration before any subcommand runs, and configures logging.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/salesdesk/salesreport/internal/config"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// cfg is the loaded application configuration, available to all commands.
var cfg *config.Config

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "salesreport",
	Short: "Sales reporting engine - generate CPI dashboards from the sales workbook",
	Long: `Sales Reporting Engine reads the sales data workbook maintained by the
data-entry application and produces a styled multi-sheet Excel report:
a summary dashboard, invoiced / not-invoiced / forecast-won segment reports
with month-by-salesperson pivot tables and charts, and the full normalized
detail data.

Example Usage:
  salesreport generate                          # default input, timestamped output
  salesreport generate data.xlsx report.xlsx    # explicit paths
  salesreport validate data.xlsx                # check columns without generating`,

	// PersistentPreRunE runs before every subcommand: load the config and
	// wire up logging.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		configureLogging()
		return nil
	},

	Run: func(cmd *cobra.Command, args []string) {
		// No subcommand: print the help message.
		cmd.Help()
	},
}

// configureLogging applies the configured log level; --verbose wins.
func configureLogging() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
		return
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	// Persistent flags are available to this command and all subcommands.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file (default is config.yaml)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
