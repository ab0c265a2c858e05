package config

import (
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/nao1215/macroscan/internal/model"
)

// Default configuration values.
const (
	// DefaultRoot is the corpus location relative to the working directory,
	// where the original content repository is usually checked out.
	DefaultRoot = "external/original-content"

	// DefaultLimit caps the number of ranked macros considered for the report.
	DefaultLimit = model.DefaultReportLimit

	// AppName is the application name used for XDG directory paths.
	AppName = "macroscan"
)

// DefaultIgnoredFolders are folder names skipped while walking the corpus:
// version-control metadata and vendored external content.
var DefaultIgnoredFolders = []string{".git", "external"}

// Config holds all configuration options for macroscan.
// It is populated from the config file and CLI flags and passed through
// the application explicitly.
type Config struct {
	// Root is the directory to scan.
	Root string

	// Allowlist holds the names of macros that are already implemented.
	// Entries are compared with lower-cased macro names, so they must be
	// lower-case themselves.
	Allowlist []string

	// IgnoredFolders are folder base names skipped during the walk when
	// SkipIgnored is true.
	IgnoredFolders []string

	// SkipIgnored enables IgnoredFolders. When false every folder is walked.
	SkipIgnored bool

	// Limit is the rank cap applied before allowlisted macros are removed.
	Limit int

	// Trace prints each visited document and every raw match to standard
	// output before the report.
	Trace bool

	// Verbose enables detailed log output using slog.LevelDebug.
	Verbose bool

	// Color enables ANSI colours in the text report.
	Color bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches the default locations.
	ConfigFilePath string

	// JSONReport enables JSON report output. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	ReportFile string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	allow := make([]string, len(model.DefaultImplementedMacros))
	copy(allow, model.DefaultImplementedMacros)

	ignored := make([]string, len(DefaultIgnoredFolders))
	copy(ignored, DefaultIgnoredFolders)

	return &Config{
		Root:           DefaultRoot,
		Allowlist:      allow,
		IgnoredFolders: ignored,
		SkipIgnored:    true,
		Limit:          DefaultLimit,
		Color:          true,
	}
}

// XDGConfigDir returns the XDG config directory for macroscan.
// On Linux: ~/.config/macroscan
// On macOS: ~/Library/Application Support/macroscan
// On Windows: %APPDATA%\macroscan
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Apply merges values from a configuration file into c.
// Zero values in the file leave the current settings untouched.
func (c *Config) Apply(f *File) {
	if f == nil {
		return
	}
	if f.Root != "" {
		c.Root = f.Root
	}
	if len(f.Allowlist) > 0 {
		c.Allowlist = append([]string(nil), f.Allowlist...)
	}
	if len(f.ExtraAllowlist) > 0 {
		c.Allowlist = append(c.Allowlist, f.ExtraAllowlist...)
	}
	if f.IgnoreFolders != nil {
		c.IgnoredFolders = append([]string(nil), f.IgnoreFolders...)
	}
	if f.SkipIgnored != nil {
		c.SkipIgnored = *f.SkipIgnored
	}
	if f.Limit != 0 {
		c.Limit = f.Limit
	}
}

// AllowlistSet returns the configured allowlist as a model.Allowlist.
func (c *Config) AllowlistSet() *model.Allowlist {
	return model.NewAllowlist(c.Allowlist...)
}

// WalkIgnores returns the folder names to skip, or nil when skipping is off.
func (c *Config) WalkIgnores() []string {
	if !c.SkipIgnored {
		return nil
	}
	return c.IgnoredFolders
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Root) == "" {
		return ErrNoRoot
	}

	if c.Limit <= 0 {
		return ErrInvalidLimit
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	for _, name := range c.Allowlist {
		if name == "" {
			return ErrEmptyAllowlistEntry
		}
		if model.Key(name) != name {
			return &AllowlistCaseError{Name: name}
		}
	}

	return nil
}
