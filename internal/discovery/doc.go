// Package discovery enumerates candidate source files beneath a repository
// root, filtered by extension and by an exclusion list of file names.
package discovery
