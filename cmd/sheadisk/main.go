package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"shea/internal/app"
	"shea/internal/config"
)

var rootCmd = &cobra.Command{
	Use:           "sheadisk [path]",
	Short:         "Show disk usage, or explore directory sizes interactively",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.DefaultDisk()
		if len(args) == 1 {
			path, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			info, err := os.Stat(path)
			if err != nil {
				return fmt.Errorf("path does not exist: %s", path)
			}
			if !info.IsDir() {
				return fmt.Errorf("not a directory: %s", path)
			}
			cfg.Path = path
		}
		return app.RunDisk(cfg)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "sheadisk: %v\n", err)
		os.Exit(1)
	}
}
