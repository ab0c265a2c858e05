// Package main provides the entry point for the macroscan CLI.
//
// macroscan walks a tree of Markdown documents, counts the template macros
// they invoke and lists the macros that are not implemented yet, most used
// first.
//
// Usage:
//
//	macroscan scan [root]
//	macroscan scan --json -o report.json path/to/content
//
// See --help for all available options.
package main

// main is the entry point for macroscan.
func main() {
	Execute()
}
