package mapping

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/seoforge/seoforge/internal/schema"
)

// ValidationResult is advisory: callers decide whether a failed component
// aborts the publish or is skipped.
type ValidationResult struct {
	IsValid       bool     `json:"isValid"`
	MissingFields []string `json:"missingFields"`
	Errors        []string `json:"errors"`
}

// Validate checks a mapped entry against the schema registry contract for
// its component type. Required fields must be present and non-nil at the
// locale (non-blank for strings); structural and bounds violations are
// collected as errors, independent from missing fields. The entry is never
// mutated.
func Validate(entry *MappedEntry, componentType schema.ComponentType, locale string) ValidationResult {
	result := ValidationResult{
		MissingFields: []string{},
		Errors:        []string{},
	}

	cs := schema.Get(componentType)
	if cs == nil {
		result.Errors = append(result.Errors, fmt.Sprintf("unknown component type: %s", componentType))
		return result
	}

	for _, field := range cs.RequiredFields {
		value := entry.Value(field, locale)
		if value == nil {
			result.MissingFields = append(result.MissingFields, field)
			continue
		}
		if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
			result.MissingFields = append(result.MissingFields, field)
		}
	}

	names := make([]string, 0, len(cs.Fields))
	for name := range cs.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fs := cs.Fields[name]
		value := entry.Value(name, locale)
		if value == nil {
			continue
		}

		switch fs.Type {
		case schema.FieldRichText:
			if !hasDocumentMarker(value) {
				result.Errors = append(result.Errors, fmt.Sprintf("field '%s' must be a rich text document", name))
			}
		case schema.FieldArray:
			if count, ok := itemCount(value); ok {
				if fs.MinItems != nil && count < *fs.MinItems {
					result.Errors = append(result.Errors, fmt.Sprintf("field '%s' must have at least %d items, got %d", name, *fs.MinItems, count))
				}
				if fs.MaxItems != nil && count > *fs.MaxItems {
					result.Errors = append(result.Errors, fmt.Sprintf("field '%s' cannot have more than %d items, got %d", name, *fs.MaxItems, count))
				}
			}
		case schema.FieldString:
			s, ok := value.(string)
			if !ok {
				result.Errors = append(result.Errors, fmt.Sprintf("field '%s' must be a string", name))
				continue
			}
			length := utf8.RuneCountInString(s)
			if fs.MinLength != nil && length < *fs.MinLength {
				result.Errors = append(result.Errors, fmt.Sprintf("field '%s' must be at least %d characters, got %d", name, *fs.MinLength, length))
			}
			if fs.MaxLength != nil && length > *fs.MaxLength {
				result.Errors = append(result.Errors, fmt.Sprintf("field '%s' exceeds %d characters: %d", name, *fs.MaxLength, length))
			}
			if fs.Pattern != nil && !fs.Pattern.MatchString(s) {
				result.Errors = append(result.Errors, fmt.Sprintf("field '%s' must match %s", name, fs.Pattern.String()))
			}
			if len(fs.AllowedValues) > 0 && !contains(fs.AllowedValues, s) {
				result.Errors = append(result.Errors, fmt.Sprintf("field '%s' must be one of [%s], got: %s", name, strings.Join(fs.AllowedValues, ", "), s))
			}
		}
	}

	result.IsValid = len(result.MissingFields) == 0 && len(result.Errors) == 0
	return result
}

func hasDocumentMarker(value interface{}) bool {
	doc, ok := value.(map[string]interface{})
	if !ok {
		return false
	}
	marker, ok := doc["nodeType"].(string)
	return ok && marker != ""
}

func itemCount(value interface{}) (int, bool) {
	switch v := value.(type) {
	case []Link:
		return len(v), true
	case []interface{}:
		return len(v), true
	default:
		return 0, false
	}
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
