package tags

type builtinTag struct {
	name          string
	categoryTitle string
}

var builtinTags = []builtinTag{
	{name: TagAudit, categoryTitle: "General Audit"},
	{name: TagAuditQuestion, categoryTitle: "Questions"},
	{name: TagAuditOK, categoryTitle: "OK"},
	{name: TagAuditInfo, categoryTitle: "Information"},
	{name: TagAuditIssue, categoryTitle: "Issues"},
	{name: TagAuditGas, categoryTitle: "Gas"},
	{name: TagAuditNonCritical, categoryTitle: "Non-Critical Issues"},
	{name: TagAuditWarning, categoryTitle: "Warnings"},
	{name: TagAuditTodo, categoryTitle: "TODOs"},
	{name: TagAuditClarify, categoryTitle: "Clarifications"},
	{name: TagAuditTest, categoryTitle: "Tests"},
}

// builtinCategoryOrder lists report sections: questions first, then general
// notes and findings by severity.
var builtinCategoryOrder = []string{
	TagAuditQuestion,
	TagAudit,
	TagAuditIssue,
	TagAuditNonCritical,
	TagAuditOK,
	TagAuditInfo,
	TagAuditGas,
	TagAuditWarning,
	TagAuditTodo,
	TagAuditClarify,
	TagAuditTest,
}

// DefaultRegistry returns the built-in registry of eleven audit tags.
func DefaultRegistry() *Registry {
	definitions := make([]Definition, 0, len(builtinTags))
	for _, tag := range builtinTags {
		definition, definitionError := NewDefinition(tag.name, tag.categoryTitle)
		if definitionError != nil {
			panic(definitionError)
		}
		definitions = append(definitions, definition)
	}

	registry, registryError := NewRegistry(definitions...)
	if registryError != nil {
		panic(registryError)
	}

	orderedRegistry, orderError := registry.WithCategoryOrder(builtinCategoryOrder...)
	if orderError != nil {
		panic(orderError)
	}
	return orderedRegistry
}
