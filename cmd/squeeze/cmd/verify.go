package cmd

import (
	"bytes"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// ErrVerifyMismatch is returned when a compress-then-decompress round trip
// doesn't reproduce the original input.
var ErrVerifyMismatch = errors.New("squeeze: round-trip mismatch")

func newVerifyCommand() *cobra.Command {
	var formatName string

	c := &cobra.Command{
		Use:   "verify <input>",
		Short: "Compress then decompress a file and compare against the original",
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
			compressed := f.compress(input)
			back, err := f.decompress(compressed)
			logger.Debugf("round-tripped %d -> %d -> %d bytes in %s", len(input), len(compressed), len(back), time.Since(start))
			if err != nil {
				return errors.Wrapf(err, "decompressing round trip of %s", args[0])
			}

			if !bytes.Equal(back, input) {
				return errors.Wrapf(ErrVerifyMismatch, "%s", args[0])
			}
			return nil
		},
	}

	c.Flags().StringVarP(&formatName, "type", "t", "lz80", "format: lz80, lz01, or lz03")
	return c
}
