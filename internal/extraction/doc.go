// Package extraction scans file contents for audit annotations and captures
// the surrounding context of every match as a Record.
package extraction
