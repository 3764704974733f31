package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"bigint/internal/config"
	"bigint/internal/observ"
	"bigint/internal/version"
)

// app carries what PersistentPreRunE resolved for the running command.
type app struct {
	cfg      config.Config
	cfgPath  string
	timer    *observ.Timer // nil unless --timings
	cleanups []func()
}

// newRootCmd builds the command tree. Each call returns an independent tree.
func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default()}
	root := &cobra.Command{
		Use:           "bigint",
		Short:         "Arbitrary-precision integer toolkit",
		Long:          `bigint parses, formats, multiplies and compares integers of any size, and can verify its own arithmetic.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.prepare(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "path to bigint.toml (default: search upwards from the working directory)")
	flags.String("color", "auto", "colorize output (auto|on|off)")
	flags.Bool("timings", false, "show timing information")
	flags.String("trace", "", "trace output file (- for stderr)")
	flags.String("trace-level", "off", "trace level (off|command|suite|op)")
	flags.String("trace-mode", "stream", "trace storage mode (stream|ring|both)")
	flags.String("cpuprofile", "", "write a CPU profile to this file")
	flags.String("memprofile", "", "write a heap profile to this file on exit")

	root.AddCommand(
		newParseCmd(a),
		newMulCmd(a),
		newCmpCmd(),
		newScalarCmd(),
		newPow2Cmd(),
		newDemoCmd(),
		newSelfcheckCmd(a),
		newVersionCmd(),
	)
	return root
}

// main runs the root command and exits with status 1 if it fails.
func main() {
	if err := execute(newRootCmd(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "bigint: %v\n", err)
		os.Exit(1)
	}
}

func execute(root *cobra.Command, args []string) error {
	root.SetArgs(args)
	cmd, err := root.ExecuteC()
	if a := appOf(cmd); a != nil {
		a.finish(cmd)
	}
	return err
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
