package schema

import "regexp"

// ComponentType tags every AI-generated section and selects the schema that
// governs its mapping and validation. The string values are the wire format
// shared with the AI prompt and the wizard.
type ComponentType string

const (
	TypeHero          ComponentType = "hero"
	TypeFAQSection    ComponentType = "faqs"
	TypeSEOTextBlock  ComponentType = "seoText"
	TypeAccordionItem ComponentType = "accordionItem"
	TypePage          ComponentType = "page"
)

// PriorityOrder governs the visual order of sections on the published page.
// Types not listed here are appended in encounter order.
var PriorityOrder = []ComponentType{TypeHero, TypeSEOTextBlock, TypeFAQSection}

type FieldType string

const (
	FieldString   FieldType = "string"
	FieldBoolean  FieldType = "boolean"
	FieldArray    FieldType = "array"
	FieldObject   FieldType = "object"
	FieldMedia    FieldType = "media"
	FieldRichText FieldType = "richText"
)

// FieldSchema is the per-field contract of a CMS content type. Localized
// fields carry one value per locale; non-localized fields still use the
// locale-keyed storage convention with a single implicit locale.
type FieldSchema struct {
	Type          FieldType
	Required      bool
	Localized     bool
	MinLength     *int
	MaxLength     *int
	MinItems      *int
	MaxItems      *int
	AllowedValues []string
	Pattern       *regexp.Regexp
	Default       interface{}
}

// ComponentSchema is the full contract for one CMS content type.
type ComponentSchema struct {
	ContentTypeID string
	Fields        map[string]FieldSchema

	// RequiredFields is the derivation source for missing-field checks.
	RequiredFields []string
	// LocalizedFields lists fields whose values differ per locale.
	LocalizedFields []string
	// DefaultValues are injected for required fields the AI does not supply.
	DefaultValues map[string]interface{}
	// AIFieldMapping renames AI payload keys to CMS field names.
	AIFieldMapping map[string]string
}

func intPtr(v int) *int { return &v }
