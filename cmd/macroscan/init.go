package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nao1215/macroscan/internal/config"
	"github.com/spf13/cobra"
)

//go:embed templates/macroscan.yaml
var configTemplate embed.FS

// templatePath is the location of the config template inside configTemplate.
const templatePath = "templates/macroscan.yaml"

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new macroscan configuration file",
		Long: `Initialize creates a new .macroscan configuration file in the current directory.

The generated file includes:
- The scan root and the rank limit
- The list of implemented macros, ready to be extended
- The folders skipped while walking the corpus

Examples:
  # Create .macroscan in current directory
  macroscan init

  # Create config file at a specific path
  macroscan init -o myconfig.yaml

  # Force overwrite existing file
  macroscan init -f`,
		Args: cobra.NoArgs,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultConfigFile,
		"Output file path for the configuration")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing configuration file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := configTemplate.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("failed to read config template: %w", err)
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created configuration file: %s\n", outputPath)
	fmt.Fprintln(out, "\nEdit this file to adjust settings such as:")
	fmt.Fprintln(out, "  - The directory to scan")
	fmt.Fprintln(out, "  - Macros that are already implemented")
	fmt.Fprintln(out, "  - Folders to skip")

	return nil
}
