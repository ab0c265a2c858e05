package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for macroscan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "macroscan",
		Short: "Report template macros that are used but not implemented",
		Long: `macroscan scans a directory tree of Markdown documents for template
macro invocations such as {{cssxref("color")}} and reports, by descending
frequency, every macro that is missing from the list of implemented macros.

Macro names are compared case-insensitively. Ranks count every macro,
including the implemented ones that are not shown, so the numbering of
the report may skip values.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewScanCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
