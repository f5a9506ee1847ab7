package main

import (
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/t14raptor/jsparse/parser"
)

func newWatchCmd() *cobra.Command {
	var flags optionFlags
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "watch [files...]",
		Short: "Re-parse files on every write and report errors as they appear",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return watchFiles(args, flags.toOptions(), asJSON)
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the parsed AST as JSON on every successful reparse")
	return cmd
}

func watchFiles(paths []string, opts parser.Options, asJSON bool) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, path := range paths {
		if err := watcher.Add(path); err != nil {
			return err
		}
		// Parse once up front so a watch session reports the starting state.
		_ = parseFile(path, opts, asJSON)
	}

	logger.Info("watching for changes", zap.Strings("paths", paths))
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			_ = parseFile(ev.Name, opts, asJSON)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", zap.Error(err))
		}
	}
}
