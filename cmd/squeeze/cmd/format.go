package cmd

import (
	"github.com/pkg/errors"

	"github.com/lzsqueeze/squeeze/f80"
	"github.com/lzsqueeze/squeeze/lz0103"
)

// ErrUnknownFormat is returned when --type names a format squeeze doesn't
// implement.
var ErrUnknownFormat = errors.New("squeeze: unknown format")

type format struct {
	name       string
	compress   func([]byte) []byte
	decompress func([]byte) ([]byte, error)
}

// formats is the registry newCompressCommand/newDecompressCommand/
// newVerifyCommand resolve --type against. Grounded on
// original_source/examples/Main.cc's `compressions` map, extended with
// lz01/lz03 (Main.cc only ever wired lz80). Names match spec.md §6's
// external --type values exactly, not this port's internal f80/lz0103
// package names.
var formats = []format{
	{name: "lz80", compress: f80.Compress, decompress: f80.Decompress},
	{name: "lz01", compress: lz0103.CompressF01, decompress: lz0103.DecompressF01},
	{name: "lz03", compress: lz0103.CompressF03, decompress: lz0103.DecompressF03},
}

func lookupFormat(name string) (format, error) {
	for _, f := range formats {
		if f.name == name {
			return f, nil
		}
	}
	return format{}, errors.Wrapf(ErrUnknownFormat, "%q", name)
}
