// Package flags provides shared state for CLI commands.
// This package exists to avoid import cycles between the root command
// and noun subpackages (register, ...).
package flags

import (
	"github.com/thoreinstein/munconf/internal/catalog"
	"github.com/thoreinstein/munconf/internal/config"
)

// cfg holds the configuration loaded by the root command.
var cfg *config.Config

// Config returns the loaded configuration, or the defaults before loading.
func Config() *config.Config {
	if cfg == nil {
		return config.Default()
	}
	return cfg
}

// SetConfig is called by the root command once configuration is loaded,
// and by tests.
func SetConfig(c *config.Config) {
	cfg = c
}

// JSON reports whether a command should emit JSON: either its own --json
// flag was given or output: json is configured.
func JSON(flag bool) bool {
	return flag || Config().JSONOutput()
}

// CatalogOptions returns where the catalog should be loaded from.
func CatalogOptions() catalog.LoadOptions {
	c := Config()
	return catalog.LoadOptions{File: c.CatalogFile, FAQDir: c.FAQDir}
}
