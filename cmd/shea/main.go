package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shea/internal/config"
	"shea/internal/listing"
)

var errBadDepth = errors.New("depth must be >= 0")

var cfg = config.DefaultList()

var rootCmd = &cobra.Command{
	Use:           "shea [path]",
	Short:         "List directory contents with optional tree view",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("depth") && cfg.Depth < 0 {
			return errBadDepth
		}
		if len(args) == 1 {
			cfg.Path = args[0]
		}
		lister := listing.NewLister(listing.NewOSReader(), listing.Options{
			ShowHidden: cfg.ShowHidden,
		})
		if cfg.Tree {
			return lister.Tree(cmd.OutOrStdout(), cfg.Path, cfg.Depth)
		}
		return lister.Flat(cmd.OutOrStdout(), cfg.Path)
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&cfg.Tree, "tree", "t", false, "show tree view (recursive)")
	rootCmd.Flags().BoolVarP(&cfg.ShowHidden, "all", "a", false, "include hidden entries (starting with .)")
	rootCmd.Flags().IntVarP(&cfg.Depth, "depth", "d", -1, "maximum recursion depth for tree view (0 means root only)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "shea: %v\n", err)
		if errors.Is(err, errBadDepth) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
