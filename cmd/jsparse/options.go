package main

import (
	"github.com/spf13/cobra"

	"github.com/t14raptor/jsparse/parser"
)

// optionFlags binds the parser's Options surface to command-line flags so
// every toggle spec.md's C1 Options type exposes is reachable from the CLI.
type optionFlags struct {
	sourceType                  string
	allowReturnOutsideFunction  bool
	allowImportExportEverywhere bool
	allowAwaitOutsideFunction   bool
	allowSuperOutsideMethod     bool
	allowHashBang               bool
}

func (f *optionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.sourceType, "source-type", "script", `grammar to parse under: "script" or "module"`)
	cmd.Flags().BoolVar(&f.allowReturnOutsideFunction, "allow-return-outside-function", false, "allow top-level return statements")
	cmd.Flags().BoolVar(&f.allowImportExportEverywhere, "allow-import-export-everywhere", false, "allow import/export statements outside the top level")
	cmd.Flags().BoolVar(&f.allowAwaitOutsideFunction, "allow-await-outside-function", false, "allow top-level await")
	cmd.Flags().BoolVar(&f.allowSuperOutsideMethod, "allow-super-outside-method", false, "allow super outside a method body")
	cmd.Flags().BoolVar(&f.allowHashBang, "allow-hashbang", true, "strip a leading #! line before parsing")
}

func (f *optionFlags) toOptions() parser.Options {
	return parser.Options{
		SourceType:                  f.sourceType,
		AllowReturnOutsideFunction:  f.allowReturnOutsideFunction,
		AllowImportExportEverywhere: f.allowImportExportEverywhere,
		AllowAwaitOutsideFunction:   f.allowAwaitOutsideFunction,
		AllowSuperOutsideMethod:     f.allowSuperOutsideMethod,
		AllowHashBang:               f.allowHashBang,
	}
}
