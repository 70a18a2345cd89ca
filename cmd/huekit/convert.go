package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/huekit/pkg/color"
)

type convertOptions struct {
	To    string
	Alpha bool
}

func newConvertCmd() *cobra.Command {
	opts := convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert <color>",
		Short: "Re-encode a colour in another mode",
		Example: `  huekit convert "#FF000080" --to hsl --alpha
  huekit convert "hsv(200, 50%, 40%)" --to hex`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := color.ParseModeName(opts.To)
			if err != nil {
				return err
			}

			out, err := color.Convert(args[0], mode, opts.Alpha)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.To, "to", "t", string(color.ModeHex), "Target mode (rgb, hex, hsl, hsv)")
	cmd.Flags().BoolVarP(&opts.Alpha, "alpha", "a", false, "Include the alpha channel")

	return cmd
}
