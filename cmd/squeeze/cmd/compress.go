package cmd

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newCompressCommand() *cobra.Command {
	var formatName, output string

	c := &cobra.Command{
		Use:   "compress <input>",
		Short: "Compress a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := lookupFormat(formatName)
			if err != nil {
				return err
			}

			input, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, "reading %s", args[0])
			}

			start := time.Now()
			out := f.compress(input)
			logger.Debugf("compressed %d -> %d bytes in %s", len(input), len(out), time.Since(start))

			dest := output
			if dest == "" {
				dest = args[0] + "." + f.name
			}
			if err := os.WriteFile(dest, out, 0o644); err != nil {
				return errors.Wrapf(err, "writing %s", dest)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&formatName, "type", "t", "lz80", "format: lz80, lz01, or lz03")
	c.Flags().StringVarP(&output, "output", "o", "", "output path (default: <input>.<type>)")
	return c
}
