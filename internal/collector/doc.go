// Package collector implements the audit tag scan: it walks a repository,
// aggregates annotation records from every candidate file, and publishes the
// JSON and Markdown reports.
//
// It exposes CommandBuilder for wiring the Cobra command, Service for driving
// the scan programmatically, and CommandConfiguration for the persisted
// settings consumed by both.
package collector
