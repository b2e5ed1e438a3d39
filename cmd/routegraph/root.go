package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/routegraph/internal/config"
	"github.com/katalvlaran/routegraph/internal/logging"
)

var (
	errNoInput     = errors.New("no input file: pass one as an argument or set it in the config")
	errBadProfile  = errors.New("profile must be cpu or mem")
	errMissingFlag = errors.New("missing required flag")
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	configPath  string
	verbosity   int
	logFile     string
	profileMode string
	profileDir  string

	cfg         config.Config
	log         *zap.Logger
	closeLog    func()
	stopProfile func()
}

// execute runs the CLI with args and releases every resource it opened.
func execute(ctx context.Context, args []string, out, errOut io.Writer) error {
	a := &app{}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)

	err := root.ExecuteContext(ctx)
	a.close()

	return err
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "routegraph",
		Short: "Spanning trees, shortest paths and attribute groups over plain-text inputs",
		Long: `routegraph reads a weighted edge list or an entity CSV and reports:

- the total cost of a minimum spanning tree (mst)
- the all-pairs shortest-path table and single routes (paths)
- the entities connected to a target attribute value (connected)`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "TOML configuration file")
	pf.CountVarP(&a.verbosity, "verbose", "v", "Increase log verbosity (repeatable)")
	pf.StringVar(&a.logFile, "log-file", "", "Also write JSON logs to this rotating file")
	pf.StringVar(&a.profileMode, "profile", "", "Write a cpu or mem profile")
	pf.StringVar(&a.profileDir, "profile-dir", ".", "Directory for profile output")

	root.AddCommand(a.mstCmd(), a.pathsCmd(), a.connectedCmd())

	return root
}

// setup loads configuration, applies flag overrides and starts logging and
// profiling.
func (a *app) setup(cmd *cobra.Command) error {
	a.cfg = config.Default()
	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	flags := cmd.Flags()
	if flags.Changed("verbose") {
		a.cfg.Log.Verbosity = a.verbosity
	}
	if flags.Changed("log-file") {
		a.cfg.Log.File = a.logFile
	}

	logger, closeLog, err := logging.New(logging.Options{
		Verbosity:  a.cfg.Log.Verbosity,
		File:       a.cfg.Log.File,
		MaxSizeMB:  a.cfg.Log.MaxSizeMB,
		MaxBackups: a.cfg.Log.MaxBackups,
	})
	if err != nil {
		return err
	}
	a.log = logger.With(zap.String("run", uuid.NewString()), zap.String("command", cmd.Name()))
	a.closeLog = closeLog

	switch a.profileMode {
	case "":
	case "cpu":
		a.stopProfile = profile.Start(profile.CPUProfile, profile.ProfilePath(a.profileDir),
			profile.Quiet, profile.NoShutdownHook).Stop
	case "mem":
		a.stopProfile = profile.Start(profile.MemProfile, profile.ProfilePath(a.profileDir),
			profile.Quiet, profile.NoShutdownHook).Stop
	default:
		return fmt.Errorf("%w: %q", errBadProfile, a.profileMode)
	}

	a.log.Debug("configuration",
		zap.String("config", a.configPath),
		zap.Int("workers", a.cfg.Engine.Workers),
		zap.Int("verbosity", a.cfg.Log.Verbosity))

	return nil
}

// close stops profiling and flushes logs.
func (a *app) close() {
	if a.stopProfile != nil {
		a.stopProfile()
		a.stopProfile = nil
	}
	if a.closeLog != nil {
		a.closeLog()
		a.closeLog = nil
	}
}

// inputPath picks the positional argument over the configured path.
func inputPath(args []string, configured string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if configured != "" {
		return configured, nil
	}

	return "", errNoInput
}

// logInput records the size of an input file before it is parsed.
func (a *app) logInput(kind, path string) {
	st, err := os.Stat(path)
	if err != nil {
		return
	}
	a.log.Info("reading input",
		zap.String("kind", kind),
		zap.String("path", path),
		zap.String("size", humanize.Bytes(uint64(st.Size()))))
}

// count renders n with thousands separators for log fields.
func count(n int) string { return humanize.Comma(int64(n)) }
