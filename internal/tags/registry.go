package tags

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Boundaries are Unicode-aware: any Unicode space (including NBSP, \v and the
// separators U+001C-U+001F, U+0085) ends the base tag, and a suffixed tag ends
// at the first character that is not a letter, digit, or underscore.
const (
	commentMarkerPrefixConstant          = "// @"
	baseTagBoundaryPatternConstant       = `(?:\s|\p{Z}|[\x{0B}\x{1C}-\x{1F}\x{85}])`
	suffixedTagBoundaryPatternConstant   = `(?:[^\p{L}\p{N}_]|$)`
	emptyTagNameMessageConstant          = "tag name must be non-empty"
	emptyCategoryTitleTemplateConstant   = "tag %s requires a category title"
	duplicateTagNameTemplateConstant     = "tag %s registered more than once"
	patternCompilationErrorTemplateConst = "unable to compile pattern for tag %s: %w"
	unknownCategoryTagTemplateConstant   = "category order names unknown tag %s"
	duplicateCategoryTagTemplateConstant = "category order lists tag %s more than once"
	incompleteCategoryOrderTemplateConst = "category order covers %d of %d tags"
	missingRegistryMessageConstant       = "registry is not configured"
)

// Registered tag identifiers.
const (
	TagAudit            = "audit"
	TagAuditQuestion    = "audit-question"
	TagAuditOK          = "audit-ok"
	TagAuditInfo        = "audit-info"
	TagAuditIssue       = "audit-issue"
	TagAuditGas         = "audit-gas"
	TagAuditNonCritical = "audit-noncritical"
	TagAuditWarning     = "audit-warning"
	TagAuditTodo        = "audit-todo"
	TagAuditClarify     = "audit-clarify"
	TagAuditTest        = "audit-test"
)

// Definition describes a single annotation tag.
type Definition struct {
	name          string
	categoryTitle string
	pattern       *regexp.Regexp
}

// Name returns the tag identifier.
func (definition Definition) Name() string {
	return definition.name
}

// CategoryTitle returns the report section heading for the tag.
func (definition Definition) CategoryTitle() string {
	return definition.categoryTitle
}

// Matches reports whether the line carries the tag's comment marker.
func (definition Definition) Matches(line string) bool {
	if definition.pattern == nil {
		return false
	}
	return definition.pattern.MatchString(line)
}

// NewDefinition builds a Definition for the provided tag name and title.
//
// The bare "audit" tag must be followed by whitespace so that it never
// matches its hyphenated siblings; every other tag only needs a word boundary.
func NewDefinition(name string, categoryTitle string) (Definition, error) {
	trimmedName := strings.TrimSpace(name)
	if len(trimmedName) == 0 {
		return Definition{}, errors.New(emptyTagNameMessageConstant)
	}

	trimmedTitle := strings.TrimSpace(categoryTitle)
	if len(trimmedTitle) == 0 {
		return Definition{}, fmt.Errorf(emptyCategoryTitleTemplateConstant, trimmedName)
	}

	boundaryPattern := suffixedTagBoundaryPatternConstant
	if trimmedName == TagAudit {
		boundaryPattern = baseTagBoundaryPatternConstant
	}

	pattern, compileError := regexp.Compile(regexp.QuoteMeta(commentMarkerPrefixConstant+trimmedName) + boundaryPattern)
	if compileError != nil {
		return Definition{}, fmt.Errorf(patternCompilationErrorTemplateConst, trimmedName, compileError)
	}

	return Definition{
		name:          trimmedName,
		categoryTitle: trimmedTitle,
		pattern:       pattern,
	}, nil
}

// Registry is an ordered, immutable set of tag definitions.
//
// Registration order drives matching; report sections follow the category
// order, which defaults to registration order.
type Registry struct {
	definitions   []Definition
	lookup        map[string]int
	categoryOrder []int
}

// NewRegistry assembles a registry preserving the order of the provided definitions.
func NewRegistry(definitions ...Definition) (*Registry, error) {
	registry := &Registry{
		definitions: make([]Definition, 0, len(definitions)),
		lookup:      make(map[string]int, len(definitions)),
	}

	for _, definition := range definitions {
		if _, exists := registry.lookup[definition.name]; exists {
			return nil, fmt.Errorf(duplicateTagNameTemplateConstant, definition.name)
		}
		registry.lookup[definition.name] = len(registry.definitions)
		registry.definitions = append(registry.definitions, definition)
	}

	return registry, nil
}

// Definitions returns the definitions in registration order.
func (registry *Registry) Definitions() []Definition {
	if registry == nil {
		return nil
	}
	duplicated := make([]Definition, len(registry.definitions))
	copy(duplicated, registry.definitions)
	return duplicated
}

// Categories returns the definitions in report section order.
func (registry *Registry) Categories() []Definition {
	if registry == nil {
		return nil
	}
	if len(registry.categoryOrder) == 0 {
		return registry.Definitions()
	}
	ordered := make([]Definition, 0, len(registry.categoryOrder))
	for _, definitionIndex := range registry.categoryOrder {
		ordered = append(ordered, registry.definitions[definitionIndex])
	}
	return ordered
}

// WithCategoryOrder returns a copy of the registry whose report sections follow
// tagNames. Every registered tag must appear exactly once.
func (registry *Registry) WithCategoryOrder(tagNames ...string) (*Registry, error) {
	if registry == nil {
		return nil, errors.New(missingRegistryMessageConstant)
	}
	categoryOrder := make([]int, 0, len(tagNames))
	seen := make(map[string]struct{}, len(tagNames))
	for _, tagName := range tagNames {
		definitionIndex, exists := registry.lookup[tagName]
		if !exists {
			return nil, fmt.Errorf(unknownCategoryTagTemplateConstant, tagName)
		}
		if _, duplicate := seen[tagName]; duplicate {
			return nil, fmt.Errorf(duplicateCategoryTagTemplateConstant, tagName)
		}
		seen[tagName] = struct{}{}
		categoryOrder = append(categoryOrder, definitionIndex)
	}
	if len(categoryOrder) != len(registry.definitions) {
		return nil, fmt.Errorf(incompleteCategoryOrderTemplateConst, len(categoryOrder), len(registry.definitions))
	}

	return &Registry{
		definitions:   registry.definitions,
		lookup:        registry.lookup,
		categoryOrder: categoryOrder,
	}, nil
}

// Lookup finds a definition by tag name.
func (registry *Registry) Lookup(name string) (Definition, bool) {
	if registry == nil {
		return Definition{}, false
	}
	index, exists := registry.lookup[name]
	if !exists {
		return Definition{}, false
	}
	return registry.definitions[index], true
}

// MatchingTags returns the names of every tag matching the line, in registration order.
func (registry *Registry) MatchingTags(line string) []string {
	if registry == nil {
		return nil
	}
	var matched []string
	for _, definition := range registry.definitions {
		if definition.Matches(line) {
			matched = append(matched, definition.name)
		}
	}
	return matched
}
