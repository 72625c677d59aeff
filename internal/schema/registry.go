package schema

// registry is the process-wide, read-only set of component schemas. Loaded
// once at init, never mutated afterwards.
var registry = map[ComponentType]*ComponentSchema{
	TypeHero:          heroSchema,
	TypeFAQSection:    faqSchema,
	TypeSEOTextBlock:  seoTextSchema,
	TypeAccordionItem: accordionSchema,
	TypePage:          pageSchema,
}

// Get returns the schema for a component type, or nil for unknown types.
func Get(t ComponentType) *ComponentSchema {
	return registry[t]
}

// Types returns every registered component type.
func Types() []ComponentType {
	out := make([]ComponentType, 0, len(registry))
	for t := range registry {
		out = append(out, t)
	}
	return out
}
