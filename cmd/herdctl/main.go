package main

import (
	"os"
	"strings"

	"herd-analytics/internal/domain/analytics"

	"github.com/spf13/cobra"
)

type rootFlags struct {
	snapshot   string
	heuristics string
	envFile    string
}

func main() {
	var flags rootFlags

	rootCmd := &cobra.Command{
		Use:           "herdctl",
		Short:         "Herd production estimates and analytics from the command line",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVar(&flags.snapshot, "snapshot", "", "JSON snapshot file {animals, vaccines, stables}; default: source from env")
	rootCmd.PersistentFlags().StringVar(&flags.heuristics, "heuristics", "", "YAML file overriding breed/milk/age tables and prices")
	rootCmd.PersistentFlags().StringVar(&flags.envFile, "env-file", ".env", "env file with UPSTREAM_BASE_URL / DB_DSN")

	rootCmd.AddCommand(reportCmd(&flags))
	rootCmd.AddCommand(estimateCmd(&flags))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func reportCmd(flags *rootFlags) *cobra.Command {
	var mode, format string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Compute production KPIs and distributions for the herd",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd.Context(), cmd.OutOrStdout(), flags, mode, format)
		},
	}
	cmd.Flags().StringVar(&mode, "mode", string(analytics.ModeDaily), "production mode: "+modeNames())
	cmd.Flags().StringVar(&format, "format", "text", "output format: text | json")
	return cmd
}

func modeNames() string {
	names := make([]string, 0, len(analytics.Modes))
	for _, m := range analytics.Modes {
		names = append(names, string(m))
	}
	return strings.Join(names, " | ")
}

func estimateCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "estimate",
		Short: "List effective weight and age per animal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEstimate(cmd.Context(), cmd.OutOrStdout(), flags)
		},
	}
}
