package mapping

import (
	"github.com/seoforge/seoforge/internal/schema"
)

// MapSEOText converts an AI SEO text section into an spTwoColumnComponent
// entry. shortDescription is silently truncated to the CMS limit before
// assignment; this is not an error.
func MapSEOText(s *SEOTextSection, locale, defaultAssetID string) *MappedEntry {
	cs := schema.Get(schema.TypeSEOTextBlock)
	entry := NewMappedEntry()
	content := s.Content

	entry.Set("title", locale, CleanText(content.Title))

	if content.Description != "" {
		entry.Set("description", locale, CleanText(content.Description))
	}

	imageOn := content.ImagePosition
	if imageOn == "" {
		imageOn = cs.DefaultValues["imageOn"].(string)
	}
	entry.Set("imageOn", locale, imageOn)

	if content.ImageAltText != "" {
		entry.Set("imageAltText", locale, CleanText(content.ImageAltText))
	}

	if content.ShortDescription != "" {
		short := truncateRunes(CleanText(content.ShortDescription), schema.SEOTextShortDescriptionMax)
		entry.Set("smallPhotoText", locale, short)
	}

	entry.Set("imageUrl", locale, AssetLink(defaultAssetID))
	entry.Set("isFrame", locale, cs.DefaultValues["isFrame"])
	entry.Set("isThicker", locale, cs.DefaultValues["isThicker"])
	entry.Set("smallPhotoTextBlock", locale, cs.DefaultValues["smallPhotoTextBlock"])
	entry.Set("anchorElementId", locale, cs.DefaultValues["anchorElementId"])
	entry.Set("isVideo", locale, cs.DefaultValues["isVideo"])

	return entry
}

// truncateRunes caps s at max characters without splitting a rune. CMS
// length limits are in characters, and byte slicing would corrupt
// multibyte copy.
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
