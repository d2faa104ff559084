// Package main implements the fhirmodel CLI: it validates and normalizes FHIR R4 JSON
// records and lists the code sets the model knows.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/config"
	"github.com/gofhir/model/pkg/logger"
)

// errFailed makes the process exit with status 1 after the command has already reported why.
var errFailed = errors.New("one or more inputs failed")

// app carries the state shared by the subcommands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	verbose bool

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	cfg *config.Config
	log *logger.Logger
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdin, stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{v: config.New(), stdin: stdin, stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "fhirmodel",
		Short:         "Validate and normalize FHIR R4 JSON records",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load()
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default ./fhirmodel.yaml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log progress to stderr")
	flags.String("log-level", "warn", "log level: debug, info, warn, error, none")
	_ = a.v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))

	root.AddCommand(
		a.validateCmd(),
		a.normalizeCmd(),
		a.codesCmd(),
		a.versionCmd(),
	)
	return root
}

// load resolves the configuration and installs the console logger.
func (a *app) load() error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.Level()
	if a.verbose && level > logger.LevelInfo {
		level = logger.LevelInfo
	}
	a.log = logger.NewConsole(a.stderr, level)
	logger.SetDefault(a.log)
	return nil
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(a.stdout, "fhirmodel v%s (FHIR %s %s)\n", fhirmodel.Version, fhirmodel.R4, fhirmodel.R4.Release())
			return nil
		},
	}
}
