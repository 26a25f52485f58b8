// Package tags defines the registry of recognized audit annotation tags.
//
// Each Definition pairs a tag identifier such as "audit-question" with the
// line predicate that detects it and the category title used by reports.
package tags
