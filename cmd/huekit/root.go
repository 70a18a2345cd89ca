package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/huekit/internal/logger"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "huekit",
		Short:         "huekit is a terminal colour picker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newPickCmd(flags))
	cmd.AddCommand(newConvertCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// commandLogger writes to w, which should be stderr since stdout carries the
// command's result.
func commandLogger(flags *rootFlags, w io.Writer, component string) (*logger.Logger, error) {
	log, err := logger.New(logger.Options{Level: logLevel(flags), HumanReadable: true, Writer: w})
	if err != nil {
		return nil, err
	}
	return log.Component(component), nil
}

func logLevel(flags *rootFlags) string {
	if flags != nil && flags.verbose {
		return "debug"
	}
	return "info"
}
