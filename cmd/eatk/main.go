// Command eatk evaluates Effective Attack and balances substat rolls.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/iwvelando/substat-optimizer/pkg/constants"
	"github.com/spf13/cobra"
)

// version is replaced at build time with -ldflags "-X main.version=...".
var version = "dev"

var errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))

type rootOptions struct {
	configPath   string
	logLevel     string
	outputFormat string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "eatk",
		Short:         "Effective Attack calculator and substat optimizer",
		Long:          "eatk computes Effective Attack from attack, buffs, crit rate and crit damage, and searches for the roll allocation that equalizes the marginal gain of each stat.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", constants.DefaultConfigFile, "path to configuration file (- reads stdin)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	flags.StringVar(&opts.outputFormat, "output-format", "", "type of output override: pretty, csv, json")

	cmd.AddCommand(
		newEvaluateCmd(opts),
		newOptimizeCmd(opts),
		newServeCmd(opts),
		newConfigCmd(opts),
	)
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error: "+err.Error()))
		os.Exit(1)
	}
}
