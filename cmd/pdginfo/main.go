package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/pganoti/O2Physics/pkg/logging"
)

const version = "0.1.0"

type options struct {
	logLevel string
	json     bool
	logger   hclog.Logger
}

func buildRevision() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				return setting.Value
			}
		}
	}
	return "unknown"
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "pdginfo",
		Short:         "Inspect the heavy-flavour PDG code and mass table",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.logger = logging.NewLogger("pdginfo", logging.ResolveLogLevel(opts.logLevel), stderr)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetVersionTemplate(fmt.Sprintf("pdginfo {{.Version}} (rev %s)\n", buildRevision()))

	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&opts.json, "json", false, "Print JSON instead of a table")
	rootCmd.Flags().BoolP("version", "V", false, "Show version information")

	rootCmd.AddCommand(newListCmd(opts), newShowCmd(opts))
	return rootCmd
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
