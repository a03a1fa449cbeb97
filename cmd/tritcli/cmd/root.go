package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tritdataset/trits/config"
	"github.com/tritdataset/trits/tritset"
)

var (
	Version = "0.0.0"
	Commit  = ""
)

var ErrTooLong = errors.New("set exceeds max-trits")

// app carries what the subcommands share once the root has loaded the config.
type app struct {
	configPath  string
	printConfig bool

	cfg    *config.Config
	logger *zap.Logger
}

// parseSet parses a command-line argument into a set, enforcing max-trits.
func (a *app) parseSet(arg string) (*tritset.Set, error) {
	if len(arg) > a.cfg.MaxTrits {
		return nil, fmt.Errorf("%q: %w (%d > %d)", arg, ErrTooLong, len(arg), a.cfg.MaxTrits)
	}
	set, err := tritset.Parse(arg, tritset.WithLogger(a.logger))
	if err != nil {
		return nil, fmt.Errorf("%q: %w", arg, err)
	}
	return set, nil
}

func (a *app) parseSets(args []string) ([]*tritset.Set, error) {
	sets := make([]*tritset.Set, 0, len(args))
	for _, arg := range args {
		set, err := a.parseSet(arg)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	return sets, nil
}

func newLogger(level zapcore.Level) (*zap.Logger, error) {
	zapCfg := zap.Config{
		Level:    zap.NewAtomicLevelAt(level),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "T",
			LevelKey:       "L",
			NameKey:        "N",
			MessageKey:     "M",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	return zapCfg.Build()
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "tritcli",
		Short: "Kleene three-valued logic over packed trit sets",
		Long: `tritcli evaluates NOT, AND and OR over trit sets written as strings of
F, U and T (case-insensitive), position 0 first. Trailing Unknowns are not
part of a set, so "TUU" and "T" are the same set.`,
		Version:       fmt.Sprintf("%s (%s)", Version, Commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath, cmd.Flags())
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			a.cfg = cfg

			logger, err := newLogger(cfg.Level())
			if err != nil {
				return fmt.Errorf("failed to initialize zap logger: %w", err)
			}
			a.logger = logger.Named("tritcli")

			if a.printConfig {
				spew.Fdump(cmd.ErrOrStderr(), cfg)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "path to the config file (default: "+config.DefaultConfigDir+"/config.yaml)")
	flags.BoolVar(&a.printConfig, "print-config", false, "print the effective config to stderr")
	flags.String(config.KeyLogLevel, config.DefaultLogLevel, "log level (debug, info, warn, error)")
	flags.StringP(config.KeyOutput, "o", config.DefaultOutput, "output format (plain, table, yaml)")
	flags.Bool(config.KeyShrink, false, "release unused storage of results before reporting them")
	flags.Int(config.KeyMaxTrits, config.DefaultMaxTrits, "maximum length of a set argument")

	rootCmd.AddCommand(
		newNotCmd(a),
		newAndCmd(a),
		newOrCmd(a),
		newTrimCmd(a),
		newStatCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
