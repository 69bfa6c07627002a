// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli implements the avlset command line tool, which builds
// integer sets from flags, environment or a config file and prints
// the result of set operations on them.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type (
	App struct {
		rootCmd    *cobra.Command
		rootConfig *rootConfiguration
	}

	rootConfiguration struct {
		// Config file location. Optional.
		CfgFile string
		// One of trace, debug, info, warn, error, disabled.
		LogLevel string
		// One of tree, list, yaml, json.
		Output string

		log zerolog.Logger
	}
)

const (
	// The prefix for configuration keys inside environment.
	envPrefix = "AVLSET"

	defaultLogLevel = "info"
	defaultOutput   = outputTree
)

// New creates the avlset application.
func New() *App {
	rootCmd, rootConfig := newRootCmd()
	return &App{rootCmd: rootCmd, rootConfig: rootConfig}
}

// Execute runs the command selected by os.Args.
func (a *App) Execute(ctx context.Context) error {
	return a.rootCmd.ExecuteContext(ctx)
}

func newRootCmd() (*cobra.Command, *rootConfiguration) {
	config := &rootConfiguration{log: zerolog.Nop()}
	rootCmd := &cobra.Command{
		Use:           "avlset",
		Short:         "Ordered integer sets on AVL trees",
		Long:          `avlset builds AVL-tree backed integer sets and prints the result of inserting, removing, splitting and combining them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initializeConfig(cmd, config); err != nil {
				return err
			}
			return config.initLogger(cmd)
		},
	}
	rootCmd.PersistentFlags().StringVar(&config.CfgFile, "config", "", "config file location (YAML)")
	rootCmd.PersistentFlags().StringVar(&config.LogLevel, "log-level", defaultLogLevel, "logging level (trace, debug, info, warn, error, disabled)")
	rootCmd.PersistentFlags().StringVarP(&config.Output, "output", "o", defaultOutput, "output format (tree, list, yaml, json)")

	rootCmd.AddCommand(
		newShowCmd(config),
		newSetOpCmd(config, opUnion),
		newSetOpCmd(config, opIntersect),
		newSetOpCmd(config, opDiff),
		newSplitCmd(config),
	)
	return rootCmd, config
}

func (c *rootConfiguration) initLogger(cmd *cobra.Command) error {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	c.log = zerolog.New(zerolog.ConsoleWriter{
		Out:        cmd.ErrOrStderr(),
		TimeFormat: "15:04:05.000",
	}).Level(lvl).With().Timestamp().Str("cmd", cmd.Name()).Logger()
	return nil
}

// initializeConfig reads in config file and ENV variables if set.
func initializeConfig(cmd *cobra.Command, rootConfig *rootConfiguration) error {
	v := viper.New()

	if rootConfig.CfgFile != "" {
		v.SetConfigFile(rootConfig.CfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %q: %w", rootConfig.CfgFile, err)
		}
	}

	// Flags bind to environment variables with the AVLSET_ prefix,
	// e.g. --log-level is AVLSET_LOG_LEVEL.
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := bindFlags(cmd, v); err != nil {
		return fmt.Errorf("bind flags failed: %w", err)
	}
	return nil
}

// Bind each cobra flag to its associated viper configuration (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var bindFlagErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if bindFlagErr != nil {
			return
		}
		// Environment variables can't have dashes in them, so bind them to their equivalent
		// keys with underscores, e.g. --log-level to AVLSET_LOG_LEVEL
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name, fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				bindFlagErr = fmt.Errorf("could not bind env to flag %q: %w", f.Name, err)
				return
			}
		}

		// Apply the viper config value to the flag when the flag is not set and viper has a value
		if !f.Changed && v.IsSet(f.Name) {
			if err := cmd.Flags().Set(f.Name, configValue(v, f)); err != nil {
				bindFlagErr = fmt.Errorf("could not set value to flag %q: %w", f.Name, err)
				return
			}
		}
	})
	return bindFlagErr
}

// configValue returns the viper value of f in the form f.Set accepts.
// Lists from the config file and comma separated env values both
// end up as "1,2,3" for slice flags.
func configValue(v *viper.Viper, f *pflag.Flag) string {
	if strings.HasSuffix(f.Value.Type(), "Slice") {
		return strings.Join(v.GetStringSlice(f.Name), ",")
	}
	return fmt.Sprintf("%v", v.Get(f.Name))
}
