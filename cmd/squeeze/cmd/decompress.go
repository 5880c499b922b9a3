package cmd

import (
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newDecompressCommand() *cobra.Command {
	var formatName, output string

	c := &cobra.Command{
		Use:   "decompress <input>",
		Short: "Decompress a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := formatName
			if name == "" {
				name = guessFormat(args[0])
			}
			f, err := lookupFormat(name)
			if err != nil {
				return err
			}

			input, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, "reading %s", args[0])
			}

			start := time.Now()
			out, err := f.decompress(input)
			if err != nil {
				return errors.Wrapf(err, "decompressing %s", args[0])
			}
			logger.Debugf("decompressed %d -> %d bytes in %s", len(input), len(out), time.Since(start))

			dest := output
			if dest == "" {
				dest = strings.TrimSuffix(args[0], "."+name)
			}
			if err := os.WriteFile(dest, out, 0o644); err != nil {
				return errors.Wrapf(err, "writing %s", dest)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&formatName, "type", "t", "", "format: lz80, lz01, or lz03 (default: inferred from the input's extension)")
	c.Flags().StringVarP(&output, "output", "o", "", "output path (default: <input> minus its .<type> suffix)")
	return c
}

// guessFormat infers a format name from an input path's extension when
// --type is omitted, falling back to lz80 when the extension isn't one of
// squeeze's own.
func guessFormat(path string) string {
	for _, f := range formats {
		if strings.HasSuffix(path, "."+f.name) {
			return f.name
		}
	}
	return "lz80"
}
