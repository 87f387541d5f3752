package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/leveldesign/field"
	"github.com/leveldesign/field/layout"
)

const (
	layoutEnv   = "FIELDQUERY_LAYOUT"
	logLevelEnv = "FIELDQUERY_LOG_LEVEL"
)

// config holds the global flags and the layout they select.
type config struct {
	Layout   string
	LogLevel string

	set *layout.Set
}

func newRootCmd() *cobra.Command {
	cfg := &config{}

	root := &cobra.Command{
		Use:           "fieldquery",
		Short:         "Query the fields of a layout file",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.startup(cmd.Flags())
		},
	}
	root.PersistentFlags().StringVarP(&cfg.Layout, "layout", "l", "field.toml", "layout file location (env "+layoutEnv+")")
	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", "warning", "log level: debug, info, warning or error (env "+logLevelEnv+")")

	root.AddCommand(
		newSideCmd(cfg),
		newClosestCmd(cfg),
		newGridCmd(cfg),
		newVersionCmd(),
	)
	return root
}

// envDefault replaces the value of an unset flag with the environment
// variable env, if that is set.
func envDefault(flags *pflag.FlagSet, name, env string) error {
	if flags.Changed(name) {
		return nil
	}
	v, ok := os.LookupEnv(env)
	if !ok || v == "" {
		return nil
	}
	return flags.Set(name, v)
}

func (cfg *config) startup(flags *pflag.FlagSet) error {
	if err := envDefault(flags, "layout", layoutEnv); err != nil {
		return err
	}
	if err := envDefault(flags, "log-level", logLevelEnv); err != nil {
		return err
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(level)
	field.SetLogger(logger)

	doc, err := layout.Load(cfg.Layout)
	if err != nil {
		return err
	}
	cfg.set, err = doc.Build()
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Layout, err)
	}
	logger.WithFields(logrus.Fields{
		"layout": cfg.Layout,
		"fields": len(cfg.set.Fields),
	}).Info("layout loaded")
	return nil
}

var errNoFieldName = errors.New("no field name given")

// lookup returns the field called name.
func (cfg *config) lookup(name string) (field.Field, error) {
	if name == "" {
		return nil, errNoFieldName
	}
	f, ok := cfg.set.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("no field named %q in %s", name, cfg.Layout)
	}
	return f, nil
}

// fields returns the named field, or all fields when name is empty.
func (cfg *config) fields(name string) ([]layout.Named, error) {
	if name == "" {
		return cfg.set.Fields, nil
	}
	f, err := cfg.lookup(name)
	if err != nil {
		return nil, err
	}
	return []layout.Named{{Name: name, Field: f}}, nil
}

func parsePoint(args []string) (field.Point, error) {
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return field.Point{}, fmt.Errorf("x: %w", err)
	}
	y, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return field.Point{}, fmt.Errorf("y: %w", err)
	}
	return field.Pt(x, y), nil
}
