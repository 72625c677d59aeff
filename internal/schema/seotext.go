package schema

// SEOTextShortDescriptionMax is the hard cap the CMS enforces on
// smallPhotoText. Longer AI copy is silently truncated, not rejected.
const SEOTextShortDescriptionMax = 400

// seoTextSchema mirrors the spTwoColumnComponent content type.
var seoTextSchema = &ComponentSchema{
	ContentTypeID: "spTwoColumnComponent",
	Fields: map[string]FieldSchema{
		"title": {
			Type:      FieldString,
			Required:  true,
			Localized: true,
		},
		"description": {
			Type:      FieldString,
			Localized: true,
		},
		"imageOn": {
			Type:          FieldString,
			Required:      true,
			AllowedValues: []string{"left", "right"},
			Default:       "right",
		},
		"imageAltText": {
			Type:      FieldString,
			Localized: true,
		},
		"smallPhotoText": {
			Type:      FieldString,
			Localized: true,
			MaxLength: intPtr(SEOTextShortDescriptionMax),
		},
		"imageUrl": {Type: FieldMedia},
		"isFrame": {
			Type:     FieldBoolean,
			Required: true,
			Default:  false,
		},
		"isThicker": {
			Type:     FieldBoolean,
			Required: true,
			Default:  false,
		},
		"smallPhotoTextBlock": {
			Type:    FieldBoolean,
			Default: false,
		},
		"anchorElementId": {
			Type:    FieldString,
			Default: "",
		},
		"isVideo": {
			Type:    FieldBoolean,
			Default: false,
		},
	},
	RequiredFields:  []string{"title", "imageOn", "isFrame", "isThicker"},
	LocalizedFields: []string{"title", "description", "imageAltText", "smallPhotoText"},
	DefaultValues: map[string]interface{}{
		"imageOn":             "right",
		"isFrame":             false,
		"isThicker":           false,
		"smallPhotoTextBlock": false,
		"anchorElementId":     "",
		"isVideo":             false,
	},
}
