package schema

// heroSchema mirrors the spHero content type. The hero never exposes a CTA
// in the current product rules: cta is forced to false at mapping time even
// when the AI supplies CTA copy.
var heroSchema = &ComponentSchema{
	ContentTypeID: "spHero",
	Fields: map[string]FieldSchema{
		"name": {
			Type:      FieldString,
			Required:  true,
			Localized: true,
			MinLength: intPtr(1),
			MaxLength: intPtr(200),
		},
		"imageUrl": {
			Type:     FieldMedia,
			Required: true,
		},
		"showTrustpilotWidget": {
			Type:     FieldBoolean,
			Required: true,
			Default:  true,
		},
		"showBookingWidget": {Type: FieldBoolean},
		"isHourly":          {Type: FieldBoolean},
		"cta": {
			Type:      FieldBoolean,
			Localized: true,
			Default:   false,
		},
		"ctaText": {
			Type:      FieldString,
			Localized: true,
			MinLength: intPtr(3),
			MaxLength: intPtr(50),
		},
		"ctaTargetLink": {
			Type:      FieldString,
			Localized: true,
		},
		"imageAltText": {
			Type:      FieldString,
			MinLength: intPtr(10),
			MaxLength: intPtr(150),
		},
		"onlyVideo": {
			Type:    FieldBoolean,
			Default: false,
		},
		"videoSources": {Type: FieldArray},
		"hideImageOnMobile": {
			Type:     FieldBoolean,
			Required: true,
			Default:  false,
		},
		"imageFocus": {
			Type:          FieldString,
			AllowedValues: []string{"face", "faces", "left", "right", "center"},
		},
	},
	RequiredFields:  []string{"name", "imageUrl", "showTrustpilotWidget", "hideImageOnMobile"},
	LocalizedFields: []string{"name", "cta", "ctaText", "ctaTargetLink"},
	DefaultValues: map[string]interface{}{
		"showTrustpilotWidget": true,
		"hideImageOnMobile":    false,
		"onlyVideo":            false,
	},
	AIFieldMapping: map[string]string{
		"title":        "name",
		"heading":      "name",
		"imageAltText": "imageAltText",
	},
}
