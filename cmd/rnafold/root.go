package main

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/rnafold/internal/config"
	"github.com/katalvlaran/rnafold/internal/logging"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	configFile string
	v          *viper.Viper
	cfg        config.Config
	log        logr.Logger
}

// newRootCmd builds the command tree. A fresh tree per call keeps tests
// independent of each other.
func newRootCmd() *cobra.Command {
	a := &app{log: logr.Discard()}

	root := &cobra.Command{
		Use:           "rnafold",
		Short:         "Predict RNA secondary structure by minimising a pair score matrix",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (default ./rnafold.yaml if present)")
	pf.String("log-level", "info", "log verbosity: info, debug, trace")
	pf.String("log-format", "console", "log format: console or json")

	root.AddCommand(
		newFoldCmd(a),
		newBenchCmd(a),
		newVersionCmd(),
	)

	return root
}

// init loads configuration, binds this command's flags and builds the
// logger, which is then attached to the command context.
func (a *app) init(cmd *cobra.Command) error {
	v, err := config.New(a.configFile)
	if err != nil {
		return err
	}
	a.v = v

	binds := map[string]string{
		"log.level":  "log-level",
		"log.format": "log-format",
	}
	for key, name := range binds {
		if err = bindFlag(v, key, cmd.Flags().Lookup(name)); err != nil {
			return err
		}
	}
	if b, ok := cmd.Annotations[bindAnnotation]; ok {
		if err = bindCommandFlags(v, cmd, b); err != nil {
			return err
		}
	}

	if a.cfg, err = config.Load(v); err != nil {
		return err
	}
	if a.log, err = logging.New(a.cfg.Log); err != nil {
		return err
	}
	cmd.SetContext(logr.NewContext(cmd.Context(), a.log))
	a.log.V(logging.DEBUG).Info("configuration loaded", "file", v.ConfigFileUsed())

	return nil
}

// bindAnnotation names the cobra annotation holding a command's viper
// section ("fold", "bench"); each flag binds to "<section>.<flag>".
const bindAnnotation = "rnafold/config-section"

func bindCommandFlags(v *viper.Viper, cmd *cobra.Command, section string) error {
	var err error
	cmd.LocalFlags().VisitAll(func(f *pflag.Flag) {
		if err == nil {
			err = bindFlag(v, section+"."+f.Name, f)
		}
	})

	return err
}

func bindFlag(v *viper.Viper, key string, f *pflag.Flag) error {
	if f == nil {
		return nil
	}
	if err := v.BindPFlag(key, f); err != nil {
		return fmt.Errorf("bind %s: %w", key, err)
	}

	return nil
}
