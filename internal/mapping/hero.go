package mapping

import (
	"sort"

	"github.com/seoforge/seoforge/internal/schema"
)

// applyAIFieldMapping copies truthy AI values into their CMS field names,
// locale-wrapped regardless of whether the field is localized. When two AI
// keys target the same CMS field, the alphabetically first truthy key wins,
// so the result is deterministic for a fixed payload.
func applyAIFieldMapping(entry *MappedEntry, cs *schema.ComponentSchema, aiValues map[string]string, locale string) {
	keys := make([]string, 0, len(cs.AIFieldMapping))
	for k := range cs.AIFieldMapping {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, aiField := range keys {
		cmsField := cs.AIFieldMapping[aiField]
		value := CleanText(aiValues[aiField])
		if value == "" || entry.Value(cmsField, locale) != nil {
			continue
		}
		entry.Set(cmsField, locale, value)
	}
}

// MapHero converts an AI hero section into an spHero entry. imageAssetID
// is an already-created CMS asset; when empty the configured default asset
// is linked instead. The hero CTA is forced off regardless of AI input.
func MapHero(s *HeroSection, locale, imageAssetID, defaultAssetID string) *MappedEntry {
	cs := schema.Get(schema.TypeHero)
	entry := NewMappedEntry()

	applyAIFieldMapping(entry, cs, map[string]string{
		"title":        s.Title,
		"heading":      s.Heading,
		"imageAltText": s.ImageAltText,
	}, locale)

	assetID := imageAssetID
	if assetID == "" {
		assetID = defaultAssetID
	}
	entry.Set("imageUrl", locale, AssetLink(assetID))

	entry.Set("showTrustpilotWidget", locale, cs.DefaultValues["showTrustpilotWidget"])
	entry.Set("hideImageOnMobile", locale, cs.DefaultValues["hideImageOnMobile"])
	entry.Set("cta", locale, false)

	return entry
}
