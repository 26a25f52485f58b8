// Package report renders aggregated annotation records as a JSON dump and as
// a categorized Markdown document, and writes the rendered artifacts to disk.
//
// The JSON and Markdown renderers are independent pure functions over the same
// record sequence; Writer is the only part that touches the file system.
package report
