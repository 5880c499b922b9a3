// Command squeeze is a CLI wrapper around the lz/f80/lz0103 codecs: it
// compresses or decompresses a file through one of the supported formats.
//
// Grounded on original_source/examples/Main.cc (compress/decompress
// subcommands, --type/--output flags, positional input path), rebuilt atop
// github.com/spf13/cobra the way grafana-k6/cmd/root.go builds its command
// tree, since the original uses CLI11 and this port follows the Go
// ecosystem's idiom for the same job instead.
package main

import (
	"os"

	"github.com/lzsqueeze/squeeze/cmd/squeeze/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
