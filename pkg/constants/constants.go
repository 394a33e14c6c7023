// Package constants provides shared constants for the substat-optimizer application.
package constants

// Stat bounds enforced by the optimizer. Critical rate and critical damage are
// expressed in percent.
const (
	// CritRateLower is the smallest critical rate a move may leave behind
	CritRateLower = 5.0

	// CritRateUpper is the critical rate cap; rate beyond it contributes nothing
	CritRateUpper = 100.0

	// CritDamageLower is the smallest critical damage a move may leave behind
	CritDamageLower = 50.0

	// AtkLower is the floor for initial attack
	AtkLower = 0.0
)

// Roll defaults
const (
	// DefaultAtkRoll is the ATK% substat roll expressed as flat initial attack
	DefaultAtkRoll = 49.26

	// DefaultCritRateRoll is one critical rate roll (2.4%)
	DefaultCritRateRoll = 2.4

	// DefaultCritDamageRoll is one critical damage roll (4.8%)
	DefaultCritDamageRoll = 4.8
)

// Optimizer defaults
const (
	// DefaultMaxIterations caps the exchange loop
	DefaultMaxIterations = 100

	// EquilibriumTolerance is the spread between the largest and smallest
	// marginal gain under which the optimizer stops
	EquilibriumTolerance = 1e-6
)

// Default starting profile used when neither config nor flags provide one.
const (
	DefaultInitialAtk    = 2900.0
	DefaultCritRate      = 80.0
	DefaultCritDamage    = 160.0
	DefaultFlatAtkBuff   = 200.0
	DefaultCombatAtkBuff = 25.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix prefixes environment overrides for the calculator configuration
	EnvPrefix = "EATK"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024

	// DefaultServerMaxIterations is the largest iteration cap an API client may request
	DefaultServerMaxIterations = 10000
)

// Numeric constants
const (
	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)
