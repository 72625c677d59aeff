package ai

import (
	"fmt"
	"strings"
)

// componentExamples shows the model the exact JSON shape each section type
// must take inside generatedSections.
var componentExamples = map[string]string{
	"hero": `{
  "type": "hero",
  "title": "Main headline for the page",
  "subtitle": "Supporting line under the headline",
  "description": "One or two sentences expanding on the offer",
  "imageAltText": "Descriptive alt text for the hero image"
}`,
	"faqs": `{
  "type": "faqs",
  "title": "Frequently Asked Questions",
  "items": [
    {"question": "A question customers actually ask?", "answer": "A clear, helpful answer."},
    {"question": "Another common question?", "answer": "Another useful answer."},
    {"question": "A third question?", "answer": "A third answer."}
  ]
}`,
	"seoText": `{
  "type": "seoText",
  "content": {
    "title": "Section heading",
    "description": "Two to four sentences of informative copy for this section.",
    "shortDescription": "A one sentence summary of the section.",
    "imagePosition": "right",
    "imageAltText": "Alt text for the section image"
  }
}`,
}

var componentRules = map[string]string{
	"hero":    "- Include exactly ONE hero section and place it first.",
	"faqs":    "- The faqs section must contain between 3 and 12 items. Use the provided questions where given; invent realistic ones otherwise.",
	"seoText": "- Include exactly THREE seoText sections, each covering a distinct aspect of the topic.",
}

// BuildPrompt composes the generation prompt from the wizard inputs. The
// conversation context, when present, is prepended so refinement requests
// keep earlier answers in view.
func BuildPrompt(params GenerationParams, siteName, siteBaseURL string) string {
	if siteName == "" {
		siteName = "our website"
	}

	language := params.Language
	if language == "" {
		language = "en"
	}

	var b strings.Builder

	if len(params.ConversationContext) > 0 {
		b.WriteString("Previous conversation:\n")
		for _, m := range params.ConversationContext {
			fmt.Fprintf(&b, "%s: %s\n", m.Role, m.Content)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Generate SEO landing page content for %s", siteName)
	if siteBaseURL != "" {
		fmt.Fprintf(&b, " (%s)", siteBaseURL)
	}
	b.WriteString(".\n\n")

	fmt.Fprintf(&b, "Main keywords: %s\n", params.MainKeywords)
	if params.SecondaryKeywords != "" {
		fmt.Fprintf(&b, "Secondary keywords: %s\n", params.SecondaryKeywords)
	}
	if params.Questions != "" {
		fmt.Fprintf(&b, "Questions customers ask: %s\n", params.Questions)
	}
	fmt.Fprintf(&b, "Output language: %s\n\n", language)

	b.WriteString("Return a single JSON object with this exact structure:\n")
	b.WriteString(`{
  "mainKeywords": "...",
  "secondaryKeywords": "...",
  "language": "...",
  "metaTitle": "...",
  "metaDescription": "...",
  "generatedSections": [ ... ]
}` + "\n\n")

	b.WriteString("Requested section types and their required shapes:\n\n")
	for _, ct := range params.ContentTypes {
		example, ok := componentExamples[ct]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "%s:\n%s\n\n", ct, example)
	}

	b.WriteString("Rules:\n")
	for _, ct := range params.ContentTypes {
		if rule, ok := componentRules[ct]; ok {
			b.WriteString(rule + "\n")
		}
	}
	b.WriteString("- metaTitle must be at most 80 characters and contain the main keywords.\n")
	b.WriteString("- metaDescription must be 120-160 characters.\n")
	b.WriteString("- All copy must be in the output language.\n")
	b.WriteString("- Return ONLY the JSON object, no markdown fences, no commentary.\n")

	return b.String()
}
