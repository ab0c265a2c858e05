package config

// File represents the structure of the .macroscan configuration file.
type File struct {
	// Root is the directory to scan.
	Root string `yaml:"root,omitempty"`

	// Allowlist replaces the built-in list of implemented macros when non-empty.
	Allowlist []string `yaml:"allowlist,omitempty"`

	// ExtraAllowlist is appended to the allowlist.
	ExtraAllowlist []string `yaml:"extraAllowlist,omitempty"`

	// IgnoreFolders replaces the folder names skipped during the walk.
	// An explicit empty list disables the built-in names.
	IgnoreFolders []string `yaml:"ignoreFolders,omitempty"`

	// SkipIgnored turns folder skipping on or off. Unset keeps the default.
	SkipIgnored *bool `yaml:"skipIgnored,omitempty"`

	// Limit overrides the rank cap.
	Limit int `yaml:"limit,omitempty"`
}
