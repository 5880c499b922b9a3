package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logger = logrus.StandardLogger()

// Execute builds and runs the squeeze command tree.
func Execute() error {
	return newRootCommand().Execute()
}

func newRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "squeeze",
		Short:         "Compress and decompress F80/F01/F03 streams",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newCompressCommand())
	root.AddCommand(newDecompressCommand())
	root.AddCommand(newVerifyCommand())
	return root
}
