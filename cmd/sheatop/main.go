package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shea/internal/app"
	"shea/internal/config"
)

var cfg = config.DefaultTop()

var rootCmd = &cobra.Command{
	Use:           "sheatop",
	Short:         "Interactive process monitor",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.RunTop(cfg)
	},
}

func init() {
	rootCmd.Flags().DurationVar(&cfg.Tick, "tick", cfg.Tick, "refresh interval")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "sheatop: %v\n", err)
		os.Exit(1)
	}
}
