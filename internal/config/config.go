// Package config defines the data structures related to configuration and
// includes functions for loading and normalizing the config.
package config

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/substat-optimizer/internal/eatk"
	"github.com/iwvelando/substat-optimizer/pkg/constants"
	"github.com/iwvelando/substat-optimizer/pkg/validation"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Configuration holds all configuration for the calculator.
type Configuration struct {
	Profile   eatk.StatProfile `yaml:"profile"`
	Rolls     eatk.RollSpec    `yaml:"rolls"`
	Optimizer OptimizerConfig  `yaml:"optimizer"`
	Logging   LoggingConfig    `yaml:"logging,omitempty"`
	Output    OutputConfig     `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// Default returns the configuration used when no file is provided.
func Default() *Configuration {
	return &Configuration{
		Profile: eatk.StatProfile{
			InitialAtk:    constants.DefaultInitialAtk,
			CritRate:      constants.DefaultCritRate,
			CritDamage:    constants.DefaultCritDamage,
			FlatAtkBuff:   constants.DefaultFlatAtkBuff,
			CombatAtkBuff: constants.DefaultCombatAtkBuff,
		},
		Rolls: eatk.DefaultRollSpec(constants.DefaultAtkRoll),
		Optimizer: OptimizerConfig{
			MaxIterations: constants.DefaultMaxIterations,
			Tolerance:     constants.EquilibriumTolerance,
		},
		Output: OutputConfig{Format: constants.OutputFormatPretty},
	}
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there on top of the defaults. An empty path loads only the
// defaults and EATK_* environment overrides.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file, %s", err)
		}
	}
	return decode(v)
}

// LoadConfigurationFromReader loads YAML configuration from r on top of the
// defaults.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	v := newViper()
	if len(bytes.TrimSpace(data)) > 0 {
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("error reading config data, %s", err)
		}
	}
	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Every key needs a default so AutomaticEnv can see it during Unmarshal.
	d := Default()
	v.SetDefault("profile.initialAtk", d.Profile.InitialAtk)
	v.SetDefault("profile.critRate", d.Profile.CritRate)
	v.SetDefault("profile.critDamage", d.Profile.CritDamage)
	v.SetDefault("profile.flatAtkBuff", d.Profile.FlatAtkBuff)
	v.SetDefault("profile.combatAtkBuff", d.Profile.CombatAtkBuff)
	v.SetDefault("rolls.atk", d.Rolls.Atk)
	v.SetDefault("rolls.critRate", d.Rolls.CritRate)
	v.SetDefault("rolls.critDamage", d.Rolls.CritDamage)
	v.SetDefault("optimizer.maxIterations", d.Optimizer.MaxIterations)
	v.SetDefault("optimizer.tolerance", d.Optimizer.Tolerance)
	v.SetDefault("logging.level", "")
	v.SetDefault("logging.format", "")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", d.Output.Format)
	return v
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	configuration.Normalize()
	return &configuration, nil
}

// Normalize applies defaults to unset optional values.
func (c *Configuration) Normalize() {
	c.Optimizer.Normalize()
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = constants.OutputFormatPretty
	}
}

// Validate checks the profile and roll inputs against the accepted ranges
// and the optimizer settings for consistency.
func (c *Configuration) Validate() error {
	if err := validation.ValidateInputs(c.Profile, c.Rolls); err != nil {
		return err
	}
	return c.Optimizer.Validate()
}

// Overrides holds values that replace configuration entries when set, such as
// command line flags.
type Overrides struct {
	InitialAtk    *float64
	CritRate      *float64
	CritDamage    *float64
	FlatAtkBuff   *float64
	CombatAtkBuff *float64
	AtkRoll       *float64
	MaxIterations *int
	OutputFormat  *string
	LogLevel      *string
}

// ApplyOverrides copies every non-nil override into the configuration.
func (c *Configuration) ApplyOverrides(o Overrides) {
	setFloat(&c.Profile.InitialAtk, o.InitialAtk)
	setFloat(&c.Profile.CritRate, o.CritRate)
	setFloat(&c.Profile.CritDamage, o.CritDamage)
	setFloat(&c.Profile.FlatAtkBuff, o.FlatAtkBuff)
	setFloat(&c.Profile.CombatAtkBuff, o.CombatAtkBuff)
	setFloat(&c.Rolls.Atk, o.AtkRoll)
	if o.MaxIterations != nil {
		c.Optimizer.MaxIterations = *o.MaxIterations
	}
	if o.OutputFormat != nil && *o.OutputFormat != "" {
		c.Output.Format = *o.OutputFormat
	}
	if o.LogLevel != nil && *o.LogLevel != "" {
		c.Logging.Level = *o.LogLevel
	}
	c.Normalize()
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

// YAML renders the effective configuration.
func (c *Configuration) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode configuration: %w", err)
	}
	return out, nil
}
