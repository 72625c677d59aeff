package schema

import (
	"fmt"
	"regexp"
	"strings"
)

// PageTitleMax caps the SEO meta title length.
const PageTitleMax = 80

// URLPathPattern is the CMS validation for urlPath: the path must begin and
// end with a slash.
var URLPathPattern = regexp.MustCompile(`^(\/.*\/|\/)$`)

// pageSchema mirrors the customStaticPage content type, the parent entry
// that references every created component.
var pageSchema = &ComponentSchema{
	ContentTypeID: "customStaticPage",
	Fields: map[string]FieldSchema{
		"urlPath": {
			Type:      FieldString,
			Required:  true,
			Localized: true,
			Pattern:   URLPathPattern,
		},
		"title": {
			Type:      FieldString,
			Required:  true,
			Localized: true,
			MaxLength: intPtr(PageTitleMax),
		},
		"description": {
			Type:      FieldString,
			Required:  true,
			Localized: true,
		},
		"canonical": {
			Type:      FieldString,
			Localized: true,
		},
		"noIndex": {
			Type:      FieldBoolean,
			Localized: true,
			Default:   false,
		},
		"noFollow": {
			Type:      FieldBoolean,
			Localized: true,
			Default:   false,
		},
		"keywords": {Type: FieldString},
		"sections": {Type: FieldArray},
		"showModalsFromAncestorPages": {
			Type:     FieldBoolean,
			Required: true,
			Default:  false,
		},
		"publishedAt": {Type: FieldString},
	},
	RequiredFields:  []string{"title", "description", "urlPath", "showModalsFromAncestorPages"},
	LocalizedFields: []string{"urlPath", "title", "description", "canonical", "noIndex", "noFollow"},
	DefaultValues: map[string]interface{}{
		"showModalsFromAncestorPages": false,
		"noIndex":                     false,
		"noFollow":                    false,
	},
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9\s-]`)
var whitespaceRun = regexp.MustCompile(`\s+`)
var hyphenRun = regexp.MustCompile(`-+`)

// GenerateURLPath slugifies the main keyword into the page's URL path:
// lowercase, strip anything outside [a-z0-9 -], spaces to hyphens, collapse
// hyphen runs, trim edge hyphens, wrap in leading/trailing slashes.
func GenerateURLPath(mainKeywords string) string {
	safe := mainKeywords
	if safe == "" {
		safe = "page"
	}

	slug := strings.ToLower(safe)
	slug = nonSlugChars.ReplaceAllString(slug, "")
	slug = whitespaceRun.ReplaceAllString(slug, "-")
	slug = hyphenRun.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")

	return "/" + slug + "/"
}

// GenerateMetaDescription builds a fallback meta description from the main
// keyword and up to the first three secondary keywords when the AI supplied
// none.
func GenerateMetaDescription(mainKeywords, secondaryKeywords string) string {
	safeMain := mainKeywords
	if safeMain == "" {
		safeMain = "our services"
	}

	var secondary []string
	for _, k := range strings.Split(secondaryKeywords, ",") {
		if k = strings.TrimSpace(k); k != "" {
			secondary = append(secondary, k)
		}
	}
	if len(secondary) > 3 {
		secondary = secondary[:3]
	}

	if len(secondary) == 0 {
		return fmt.Sprintf("Discover %s. Professional services designed to meet your needs.", strings.ToLower(safeMain))
	}

	return fmt.Sprintf("Discover %s with %s. Professional services designed to meet your needs.",
		strings.ToLower(safeMain), strings.Join(secondary, ", "))
}
