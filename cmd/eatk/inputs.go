package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/iwvelando/substat-optimizer/internal/config"
	"github.com/iwvelando/substat-optimizer/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// profileFlags are the stat inputs shared by evaluate and optimize.
type profileFlags struct {
	initialAtk    float64
	critRate      float64
	critDamage    float64
	flatAtkBuff   float64
	combatAtkBuff float64
	atkRoll       float64
	maxIterations int
}

func (f *profileFlags) register(cmd *cobra.Command, withIterations bool) {
	flags := cmd.Flags()
	flags.Float64Var(&f.initialAtk, "atk", 0, "initial ATK (stat screen value)")
	flags.Float64Var(&f.critRate, "cr", 0, "combat crit rate in percent (0 to 100)")
	flags.Float64Var(&f.critDamage, "cd", 0, "combat crit damage in percent (e.g. 160)")
	flags.Float64Var(&f.flatAtkBuff, "flat-atk", 0, "flat ATK buff from external sources")
	flags.Float64Var(&f.combatAtkBuff, "combat-atk", 0, "combat ATK% buff in percent (e.g. 25)")
	flags.Float64Var(&f.atkRoll, "atk-roll", 0, "ATK gained from one ATK% substat roll")
	if withIterations {
		flags.IntVar(&f.maxIterations, "max-iterations", 0, "optimizer iteration cap")
	}
}

// overrides returns only the values whose flags were set on the command line.
func (f *profileFlags) overrides(cmd *cobra.Command, opts *rootOptions) config.Overrides {
	var o config.Overrides
	flags := cmd.Flags()
	floatFlags := []struct {
		name string
		dst  **float64
		src  *float64
	}{
		{"atk", &o.InitialAtk, &f.initialAtk},
		{"cr", &o.CritRate, &f.critRate},
		{"cd", &o.CritDamage, &f.critDamage},
		{"flat-atk", &o.FlatAtkBuff, &f.flatAtkBuff},
		{"combat-atk", &o.CombatAtkBuff, &f.combatAtkBuff},
		{"atk-roll", &o.AtkRoll, &f.atkRoll},
	}
	for _, ff := range floatFlags {
		if flags.Changed(ff.name) {
			*ff.dst = ff.src
		}
	}
	if flags.Changed("max-iterations") {
		o.MaxIterations = &f.maxIterations
	}
	o.OutputFormat = &opts.outputFormat
	o.LogLevel = &opts.logLevel
	return o
}

// loadConfiguration reads the configuration named by --config. A missing
// default file falls back to the built-in defaults; an explicitly named file
// must exist.
func loadConfiguration(cmd *cobra.Command, opts *rootOptions) (*config.Configuration, error) {
	switch {
	case opts.configPath == "-":
		return config.LoadConfigurationFromReader(cmd.InOrStdin())
	case opts.configPath == "":
		return config.LoadConfiguration("")
	}

	if _, err := os.Stat(opts.configPath); errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config") {
		return config.LoadConfiguration("")
	}
	return config.LoadConfiguration(opts.configPath)
}

// prepare loads configuration, applies flag overrides, builds the logger and
// validates the inputs, in that order.
func prepare(cmd *cobra.Command, opts *rootOptions, overrides config.Overrides) (*config.Configuration, *zap.Logger, error) {
	conf, err := loadConfiguration(cmd, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration at %s: %w", opts.configPath, err)
	}
	conf.ApplyOverrides(overrides)

	logger, err := initializeLogger(conf.Logging, "")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := validation.ValidateOutputFormat(conf.Output.Format); err != nil {
		logger.Error("invalid output format", zap.String("op", "main.prepare"), zap.Error(err))
		return nil, nil, err
	}
	if err := conf.Validate(); err != nil {
		logger.Error("invalid inputs", zap.String("op", "main.prepare"), zap.Error(err))
		return nil, nil, err
	}
	return conf, logger, nil
}
