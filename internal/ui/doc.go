// Package ui provides styled one-shot terminal output for the travelist CLI.
//
// The interactive screen lives in package tui. The components here follow a
// "print and exit" pattern: the catalog, config and scan commands render
// their results as lipgloss boxes and tables without taking over the
// terminal.
//
// # Components
//
//   - Header: command banner showing the operation name and parameters
//   - Result: success, failure or warning box with key/value details
//   - Catalog: countries and their tourist places
//   - Table: aligned rows, used for scan results and preferences
//   - Confirm: a warning box that asks before overwriting a file
//
// Example:
//
//	p := ui.NewPrinter(cmd.OutOrStdout())
//	p.PrintHeader("Catalog", "travelist catalog", map[string]string{"Source": "built-in"})
//	p.PrintCatalog(countries)
//
// # Logging Integration
//
// Logging is controlled via the TRAVELIST_LOG_LEVEL environment variable.
// When unset or empty, zap logging is silent so that the styled output is
// displayed cleanly.
package ui
