package mapping

import (
	"time"

	"github.com/seoforge/seoforge/internal/schema"
)

// MapPage builds the customStaticPage entry referencing every component
// created in this publish cycle, in the order the assembler produced.
// Meta title and description fall back to derived values when the AI
// supplied none. publishedAt is a metadata stamp and must be excluded from
// equality checks between repeated mappings.
func MapPage(data *PageData, componentIDs []string, locale string) *MappedEntry {
	entry := NewMappedEntry()

	title := CleanText(data.MetaTitle)
	if title == "" {
		title = CleanText(data.MainKeywords)
	}
	entry.Set("title", locale, title)

	description := CleanText(data.MetaDescription)
	if description == "" {
		description = schema.GenerateMetaDescription(data.MainKeywords, data.SecondaryKeywords)
	}
	entry.Set("description", locale, description)

	entry.Set("urlPath", locale, schema.GenerateURLPath(data.MainKeywords))

	if len(componentIDs) > 0 {
		entry.Set("sections", locale, EntryLinks(componentIDs))
	}

	cs := schema.Get(schema.TypePage)
	entry.Set("showModalsFromAncestorPages", locale, cs.DefaultValues["showModalsFromAncestorPages"])
	entry.Set("noIndex", locale, cs.DefaultValues["noIndex"])
	entry.Set("noFollow", locale, cs.DefaultValues["noFollow"])

	entry.Set("publishedAt", locale, time.Now().UTC().Format(time.RFC3339))

	return entry
}
