package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"gosets/internal/log"
	"gosets/pkg/setexpr"
)

const (
	// DefaultConfigName is the base name of the config file looked up in
	// the home directory (setexpr.yaml, setexpr.toml, setexpr.json, ...).
	DefaultConfigName = "setexpr"

	// EnvPrefix prefixes every environment override, e.g. SETEXPR_SETS.
	EnvPrefix = "SETEXPR"
)

// Config selects the universe expressions are evaluated in and how the
// tools log.
type Config struct {
	// Declared set names. Their order fixes the region numbering.
	Sets []string `mapstructure:"sets"`

	// Region numbering: "venn3" or "canonical". Empty picks venn3 for
	// three sets and canonical otherwise.
	Layout string `mapstructure:"layout"`

	LogLevel  string `mapstructure:"log-level"`
	LogFormat string `mapstructure:"log-format"`
}

// DefaultConfig returns the curriculum configuration: sets A, B, C in the
// three-set Venn numbering, plain info logging.
func DefaultConfig() *Config {
	return &Config{
		Sets:      []string{"A", "B", "C"},
		LogLevel:  log.LogLevelInfo,
		LogFormat: log.LogFormatPlain,
	}
}

// SetDefaults registers the defaults of DefaultConfig with v.
func SetDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault("sets", def.Sets)
	v.SetDefault("layout", def.Layout)
	v.SetDefault("log-level", def.LogLevel)
	v.SetDefault("log-format", def.LogFormat)
}

// Load reads the optional config file from home, applies environment
// overrides and decodes the result. A missing config file is not an error.
func Load(v *viper.Viper, home string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if home != "" {
		v.SetConfigName(DefaultConfigName)
		v.AddConfigPath(home)
		v.AddConfigPath(filepath.Join(home, "config"))
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	conf := &Config{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	conf.Sets = splitSets(conf.Sets)
	if err := conf.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("error in config: %w", err)
	}
	return conf, nil
}

// splitSets accepts both list form and a single comma separated string,
// which is what an environment variable or a flag provides.
func splitSets(sets []string) []string {
	var out []string
	for _, s := range sets {
		for _, name := range strings.Split(s, ",") {
			if name = strings.TrimSpace(name); name != "" {
				out = append(out, name)
			}
		}
	}
	return out
}

// ValidateBasic performs checks that do not build anything.
func (c *Config) ValidateBasic() error {
	if len(c.Sets) == 0 {
		return errors.New("sets: at least one set must be declared")
	}
	if _, err := setexpr.ParseLayout(c.Layout); err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	switch c.LogFormat {
	case log.LogFormatPlain, log.LogFormatJSON:
	default:
		return fmt.Errorf("log-format: unknown format %q", c.LogFormat)
	}
	return nil
}

// Universe builds the universe described by c.
func (c *Config) Universe() (*setexpr.Universe, error) {
	if c.Layout == "" && len(c.Sets) == 3 {
		return setexpr.NewUniverse(setexpr.LayoutVenn3, c.Sets...)
	}
	layout, err := setexpr.ParseLayout(c.Layout)
	if err != nil {
		return nil, err
	}
	return setexpr.NewUniverse(layout, c.Sets...)
}
