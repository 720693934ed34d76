package doctor

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/thoreinstein/munconf/internal/catalog"
	"github.com/thoreinstein/munconf/internal/errors"
)

// maxSecureFilePerm is the widest acceptable mode for the config file (-rw-r--r--).
const maxSecureFilePerm os.FileMode = 0o644

// ConfigCheck reports the outcome of loading the configuration.
type ConfigCheck struct {
	// File is the config file that was read, or "" when defaults applied.
	File string
	// Err is the load error, if any.
	Err error
}

var _ Check = (*ConfigCheck)(nil)

func (c *ConfigCheck) Name() string     { return "config-load" }
func (c *ConfigCheck) Category() string { return "config" }

// Run reports whether the configuration loaded and validated.
func (c *ConfigCheck) Run(context.Context) *CheckResult {
	switch {
	case c.Err != nil:
		return &CheckResult{
			Status:  SeverityError,
			Message: c.Err.Error(),
			FixHint: "Fix the reported keys, then run: munconf config show",
		}
	case c.File == "":
		return &CheckResult{Status: SeverityInfo, Message: "no config file found, using defaults"}
	default:
		return &CheckResult{
			Status:  SeverityPass,
			Message: "loaded " + c.File,
			Details: map[string]any{"path": c.File},
		}
	}
}

// PermissionCheck warns when the config file is writable by others.
type PermissionCheck struct {
	Path string
}

var _ Check = (*PermissionCheck)(nil)

func (c *PermissionCheck) Name() string     { return "config-permissions" }
func (c *PermissionCheck) Category() string { return "config" }

// Run inspects the file mode of Path.
func (c *PermissionCheck) Run(context.Context) *CheckResult {
	if c.Path == "" {
		return &CheckResult{Status: SeverityPass, Message: "no config file to check"}
	}

	info, err := os.Stat(c.Path)
	if os.IsNotExist(err) {
		return &CheckResult{Status: SeverityPass, Message: "no config file to check"}
	}
	if err != nil {
		return &CheckResult{Status: SeverityError, Message: fmt.Sprintf("cannot stat %s: %v", c.Path, err)}
	}

	mode := info.Mode().Perm()
	details := map[string]any{"path": c.Path, "permissions": fmt.Sprintf("%04o", mode)}

	// Unix permissions don't apply on Windows
	if runtime.GOOS != "windows" && mode&^maxSecureFilePerm != 0 {
		return &CheckResult{
			Status:  SeverityWarning,
			Message: fmt.Sprintf("%s has permissions %04o", c.Path, mode),
			Details: details,
			FixHint: "chmod 600 " + c.Path,
		}
	}
	return &CheckResult{Status: SeverityPass, Message: "config file permissions ok", Details: details}
}

// CatalogCheck loads the catalog, which runs its self-check.
type CatalogCheck struct {
	Options catalog.LoadOptions
}

var _ Check = (*CatalogCheck)(nil)

func (c *CatalogCheck) Name() string     { return "catalog" }
func (c *CatalogCheck) Category() string { return "catalog" }

// Run loads the catalog and summarizes its contents.
func (c *CatalogCheck) Run(context.Context) *CheckResult {
	cat, err := catalog.Load(c.Options)
	if err != nil {
		hint := "Check catalog_file and faq_dir in: munconf config show"
		if errors.Is(err, errors.ErrNotFound) {
			hint = "catalog_file points to a missing file"
		}
		return &CheckResult{Status: SeverityError, Message: err.Error(), FixHint: hint}
	}

	source := "embedded catalog"
	if c.Options.File != "" {
		source = c.Options.File
	}
	return &CheckResult{
		Status: SeverityPass,
		Message: fmt.Sprintf("%s: %d committees, %d FAQs, %d timeline events",
			source, len(cat.Committees), len(cat.FAQs), len(cat.Timeline)),
		Details: map[string]any{
			"committees": len(cat.Committees),
			"faqs":       len(cat.FAQs),
			"timeline":   len(cat.Timeline),
		},
	}
}

// FAQDirCheck inspects the extra FAQ document directory.
type FAQDirCheck struct {
	Dir string
}

var _ Check = (*FAQDirCheck)(nil)

func (c *FAQDirCheck) Name() string     { return "faq-dir" }
func (c *FAQDirCheck) Category() string { return "catalog" }

// Run parses every document in Dir.
func (c *FAQDirCheck) Run(context.Context) *CheckResult {
	if c.Dir == "" {
		return &CheckResult{Status: SeverityInfo, Message: "faq_dir not configured"}
	}

	info, err := os.Stat(c.Dir)
	switch {
	case os.IsNotExist(err):
		return &CheckResult{
			Status:  SeverityWarning,
			Message: c.Dir + " does not exist",
			FixHint: "mkdir -p " + c.Dir,
		}
	case err != nil:
		return &CheckResult{Status: SeverityError, Message: err.Error()}
	case !info.IsDir():
		return &CheckResult{Status: SeverityError, Message: "expected directory but found file: " + c.Dir}
	}

	docs, err := catalog.LoadFAQDir(c.Dir)
	if err != nil {
		return &CheckResult{
			Status:  SeverityError,
			Message: err.Error(),
			FixHint: "Each document needs YAML frontmatter with question and category",
		}
	}
	return &CheckResult{
		Status:  SeverityPass,
		Message: fmt.Sprintf("%d FAQ document(s) in %s", len(docs), c.Dir),
		Details: map[string]any{"documents": len(docs)},
	}
}
