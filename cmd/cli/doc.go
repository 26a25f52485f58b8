// Package cli constructs the audit-tags command-line interface, wiring the
// Cobra root command, the layered configuration loader, and structured
// logging around the collector scan.
package cli
