// Package config loads the settings of the fhirmodel command from a config file,
// FHIRMODEL_* environment variables and command-line flags, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/pkg/logger"
)

// Keys shared by the config file, the environment and the flag bindings.
const (
	KeyStrictCodes     = "strict_codes"
	KeyMaxIssues       = "max_issues"
	KeyInvariants      = "invariants"
	KeyUnknownElements = "unknown_elements"
	KeyWorkers         = "workers"
	KeyLogLevel        = "log_level"
	KeyOutput          = "output"
	KeyCodeSystems     = "codesystems"
)

// EnvPrefix is prepended to every key looked up in the environment.
const EnvPrefix = "FHIRMODEL"

// Config holds the settings of a validation run.
type Config struct {
	StrictCodes     bool     `mapstructure:"strict_codes"`
	MaxIssues       int      `mapstructure:"max_issues" validate:"gte=0"`
	Invariants      bool     `mapstructure:"invariants"`
	UnknownElements bool     `mapstructure:"unknown_elements"`
	Workers         int      `mapstructure:"workers" validate:"gte=0,lte=1024"`
	LogLevel        string   `mapstructure:"log_level" validate:"oneof=debug info warn warning error none off"`
	Output          string   `mapstructure:"output" validate:"oneof=text json"`
	CodeSystems     []string `mapstructure:"codesystems" validate:"dive,required"`
}

var validate = validator.New()

// New returns a viper instance with the defaults and the environment bindings in place.
// Flags are bound by the caller with BindPFlag.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyStrictCodes, false)
	v.SetDefault(KeyMaxIssues, 0)
	v.SetDefault(KeyInvariants, true)
	v.SetDefault(KeyUnknownElements, true)
	v.SetDefault(KeyWorkers, 0)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyOutput, "text")
	v.SetDefault(KeyCodeSystems, []string{})
	return v
}

// Load reads file into v, or fhirmodel.yaml from the working directory when file is
// empty, and returns the validated result. A missing default file is not an error.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("fhirmodel")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	// A comma-separated environment value arrives as a single entry.
	if len(cfg.CodeSystems) == 1 && strings.Contains(cfg.CodeSystems[0], ",") {
		cfg.CodeSystems = strings.Split(cfg.CodeSystems[0], ",")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q (got %v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Options returns the validation options described by c.
func (c *Config) Options() []fhirmodel.Option {
	return []fhirmodel.Option{
		fhirmodel.WithStrictCodes(c.StrictCodes),
		fhirmodel.WithMaxIssues(c.MaxIssues),
		fhirmodel.WithInvariants(c.Invariants),
		fhirmodel.WithUnknownElements(c.UnknownElements),
		fhirmodel.WithWorkerCount(c.Workers),
	}
}

// Level returns the configured log level. Validate has already rejected unknown names.
func (c *Config) Level() logger.Level {
	l, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return logger.LevelWarn
	}
	return l
}
