package mapping

// MappedEntry is a CMS-entry-shaped record: field name -> locale -> value.
// Non-localized fields use the same locale-keyed layout with a single
// implicit locale, matching the management API's storage convention.
// An entry is never mutated after creation except to inject CMS-assigned
// asset or entry references.
type MappedEntry struct {
	Fields map[string]map[string]interface{} `json:"fields"`
}

func NewMappedEntry() *MappedEntry {
	return &MappedEntry{Fields: map[string]map[string]interface{}{}}
}

// Set writes a locale-keyed value for a field.
func (e *MappedEntry) Set(field, locale string, value interface{}) {
	if e.Fields[field] == nil {
		e.Fields[field] = map[string]interface{}{}
	}
	e.Fields[field][locale] = value
}

// Value returns the field value at a locale, or nil.
func (e *MappedEntry) Value(field, locale string) interface{} {
	if e.Fields[field] == nil {
		return nil
	}
	return e.Fields[field][locale]
}

// Link is a CMS sys link to an entry or asset.
type Link struct {
	Sys LinkSys `json:"sys"`
}

type LinkSys struct {
	Type     string `json:"type"`
	LinkType string `json:"linkType"`
	ID       string `json:"id"`
}

func AssetLink(assetID string) Link {
	return Link{Sys: LinkSys{Type: "Link", LinkType: "Asset", ID: assetID}}
}

func EntryLink(entryID string) Link {
	return Link{Sys: LinkSys{Type: "Link", LinkType: "Entry", ID: entryID}}
}

func EntryLinks(entryIDs []string) []Link {
	links := make([]Link, 0, len(entryIDs))
	for _, id := range entryIDs {
		links = append(links, EntryLink(id))
	}
	return links
}

// RichTextDocument wraps plain text as a minimal CMS rich-text document:
// one paragraph holding one unmarked text node.
func RichTextDocument(text string) map[string]interface{} {
	return map[string]interface{}{
		"nodeType": "document",
		"data":     map[string]interface{}{},
		"content": []interface{}{
			map[string]interface{}{
				"nodeType": "paragraph",
				"data":     map[string]interface{}{},
				"content": []interface{}{
					map[string]interface{}{
						"nodeType": "text",
						"value":    text,
						"marks":    []interface{}{},
						"data":     map[string]interface{}{},
					},
				},
			},
		},
	}
}
