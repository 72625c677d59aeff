package schema

const (
	// FAQMinQuestions and FAQMaxQuestions bound the questions reference list
	// on the published FAQ section.
	FAQMinQuestions = 3
	FAQMaxQuestions = 12
)

// faqSchema mirrors the spFaQs content type. Its questions field holds
// references to accordion item entries created in a prior step.
var faqSchema = &ComponentSchema{
	ContentTypeID: "spFaQs",
	Fields: map[string]FieldSchema{
		"title": {
			Type:      FieldString,
			Required:  true,
			Localized: true,
		},
		"image": {
			Type:     FieldMedia,
			Required: true,
		},
		"questions": {
			Type:      FieldArray,
			Required:  true,
			Localized: true,
			MinItems:  intPtr(FAQMinQuestions),
			MaxItems:  intPtr(FAQMaxQuestions),
		},
		"name": {
			Type:     FieldString,
			Required: true,
		},
	},
	RequiredFields:  []string{"title", "image", "questions", "name"},
	LocalizedFields: []string{"title", "questions"},
	DefaultValues: map[string]interface{}{
		"name":  "FAQ Section",
		"title": "Frequently Asked Questions",
	},
}

// accordionSchema mirrors spAccordionItem, the sub-component each FAQ
// question/answer pair is stored as.
var accordionSchema = &ComponentSchema{
	ContentTypeID: "spAccordionItem",
	Fields: map[string]FieldSchema{
		"title": {
			Type:      FieldString,
			Required:  true,
			Localized: true,
		},
		"content": {
			Type:      FieldRichText,
			Required:  true,
			Localized: true,
		},
	},
	RequiredFields:  []string{"title", "content"},
	LocalizedFields: []string{"title", "content"},
	AIFieldMapping: map[string]string{
		"question": "title",
		"answer":   "content",
	},
}
