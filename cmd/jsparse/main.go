// Command jsparse parses ECMAScript source files and reports syntax errors,
// optionally dumping the resulting AST as JSON or watching files for changes.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logger *zap.Logger

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "jsparse [files...]",
		Short: "Parse ECMAScript source files and report syntax errors",
		Args:  cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if verbose {
				logger, err = zap.NewDevelopment()
			} else {
				logger, err = zap.NewProduction()
			}
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Sync()
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable development-mode (human-readable) logging")

	cmd.AddCommand(newParseCmd())
	cmd.AddCommand(newWatchCmd())
	return cmd
}
