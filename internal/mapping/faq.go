package mapping

import (
	"github.com/seoforge/seoforge/internal/schema"
)

// MapAccordionItem converts one question/answer pair into an spAccordionItem
// entry: question becomes the plain-text title, answer becomes a
// single-paragraph rich-text document.
func MapAccordionItem(item FAQItem, locale string) *MappedEntry {
	entry := NewMappedEntry()
	entry.Set("title", locale, CleanText(item.Question))
	entry.Set("content", locale, RichTextDocument(CleanText(item.Answer)))
	return entry
}

// MapFAQSection builds the parent spFaQs entry once its accordion items have
// been created. A zero-length id list still maps (questions becomes an empty
// list); the validator then flags the minimum-count violation.
func MapFAQSection(s *FAQSection, accordionItemIDs []string, locale, defaultAssetID string) *MappedEntry {
	cs := schema.Get(schema.TypeFAQSection)
	entry := NewMappedEntry()

	title := CleanText(s.Title)
	if title == "" {
		title = cs.DefaultValues["title"].(string)
	}
	entry.Set("title", locale, title)
	entry.Set("name", locale, cs.DefaultValues["name"])
	entry.Set("image", locale, AssetLink(defaultAssetID))
	entry.Set("questions", locale, EntryLinks(accordionItemIDs))

	return entry
}
