package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/thoreinstein/munconf/internal/errors"
	"github.com/thoreinstein/munconf/internal/paths"
)

// EnvPrefix is prepended to environment variable overrides.
const EnvPrefix = "MUNCONF"

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// DefaultWatchDebounce is the quiet period before a watched file is
// revalidated.
const DefaultWatchDebounce = 200 * time.Millisecond

// Config is the top-level configuration.
type Config struct {
	Version       int           `mapstructure:"version" yaml:"version"`
	CatalogFile   string        `mapstructure:"catalog_file" yaml:"catalog_file"`
	FAQDir        string        `mapstructure:"faq_dir" yaml:"faq_dir"`
	Output        string        `mapstructure:"output" yaml:"output"`
	WatchDebounce time.Duration `mapstructure:"watch_debounce" yaml:"watch_debounce"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version:       1,
		Output:        OutputText,
		WatchDebounce: DefaultWatchDebounce,
	}
}

// Settings returns cfg keyed by config file names, with durations rendered
// as strings.
func (c *Config) Settings() map[string]any {
	return map[string]any{
		"version":        c.Version,
		"catalog_file":   c.CatalogFile,
		"faq_dir":        c.FAQDir,
		"output":         c.Output,
		"watch_debounce": c.WatchDebounce.String(),
	}
}

// JSONOutput reports whether machine-readable output is configured.
func (c *Config) JSONOutput() bool {
	return c.Output == OutputJSON
}

// Init resets Viper and registers defaults, search paths and environment
// overrides. Call it once at startup before Load.
func Init() {
	viper.Reset()

	viper.SetConfigName(strings.TrimSuffix(paths.ConfigFileName, filepath.Ext(paths.ConfigFileName)))
	viper.SetConfigType("yaml")

	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	def := Default()
	viper.SetDefault("version", def.Version)
	viper.SetDefault("catalog_file", "")
	viper.SetDefault("faq_dir", "")
	viper.SetDefault("output", def.Output)
	viper.SetDefault("watch_debounce", def.WatchDebounce)
}

// Load reads the configuration file. With an explicit path the file must
// exist; otherwise the search paths are tried and defaults are used when
// nothing is found.
func Load(path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return nil, errors.Wrapf(errors.ErrNotFound, "config file %s", path)
			}
			return nil, errors.Wrapf(err, "config file %s", path)
		}
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrapf(errors.ErrInvalidConfig, "reading config file: %v", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "unmarshaling config: %v", err)
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "validating config: %s", strings.Join(msgs, "; "))
	}

	return &cfg, nil
}

// FileUsed returns the config file Load read, or "" when defaults applied.
func FileUsed() string {
	return viper.ConfigFileUsed()
}
