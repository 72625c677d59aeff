// Package publisher drives the end-to-end publish flow: map each generated
// section, validate it, create it in the CMS, assemble references, then
// create the parent page and optionally batch everything into a release.
package publisher

import (
	"context"
	"fmt"
	"log"

	"github.com/seoforge/seoforge/internal/contentful"
	"github.com/seoforge/seoforge/internal/mapping"
	"github.com/seoforge/seoforge/internal/schema"
)

// State names the orchestrator's progress through a publish operation.
// Terminal states are StateDone and StateFailed; there are no retries
// anywhere, every external call is attempted exactly once.
type State string

const (
	StateIdle                  State = "idle"
	StateConnecting            State = "connecting"
	StateCreatingComponents    State = "creatingComponents"
	StateAssemblingReferences  State = "assemblingReferences"
	StateCreatingPage          State = "creatingPage"
	StateCreatingRelease       State = "creatingRelease"
	StateDone                  State = "done"
	StateFailed                State = "failed"
)

// ComponentResult records the outcome of one section. Skipped sections are
// returned to the caller instead of only being logged, so partial failures
// are assertable.
type ComponentResult struct {
	Type    schema.ComponentType `json:"type"`
	EntryID string               `json:"entryId,omitempty"`
	Success bool                 `json:"success"`
	Errors  []string             `json:"errors,omitempty"`
}

type Summary struct {
	TotalComponents int `json:"totalComponents"`
	SuccessCount    int `json:"successCount"`
	FailureCount    int `json:"failureCount"`
}

type Result struct {
	Success      bool              `json:"success"`
	State        State             `json:"state"`
	PageID       string            `json:"pageId,omitempty"`
	ReleaseID    string            `json:"releaseId,omitempty"`
	ComponentIDs []string          `json:"componentIds"`
	Components   []ComponentResult `json:"components"`
	Summary      Summary           `json:"summary"`
	Errors       []string          `json:"errors,omitempty"`
}

// Options control one publish operation. ImageURLs maps component types to
// publicly reachable image URLs to be turned into CMS assets.
type Options struct {
	ImageURLs    map[string]string
	ReleaseTitle string
	WithRelease  bool
}

type Publisher struct {
	cms            contentful.ManagementAPI
	locale         string
	defaultAssetID string
}

func New(cms contentful.ManagementAPI, locale, defaultAssetID string) *Publisher {
	return &Publisher{cms: cms, locale: locale, defaultAssetID: defaultAssetID}
}

// Publish runs the full state machine for one page. Per-component failures
// are skipped and recorded (best-effort publish); a page-level validation or
// create failure fails the whole operation. Components already created stay
// behind as orphaned drafts, there is no rollback.
func (p *Publisher) Publish(ctx context.Context, data *mapping.PageData, opts Options) *Result {
	result := &Result{
		State:        StateIdle,
		ComponentIDs: []string{},
		Components:   []ComponentResult{},
	}

	result.State = StateConnecting
	if err := p.cms.CheckConnection(ctx); err != nil {
		return fail(result, fmt.Sprintf("CMS connection failed: %v", err))
	}

	sections := mapping.EnsureHero(data.GeneratedSections, data.MainKeywords)

	result.State = StateCreatingComponents
	idsByType := map[schema.ComponentType][]string{}
	encounterOrder := []schema.ComponentType{}

	for _, section := range sections {
		cr := p.createComponent(ctx, section, opts)
		result.Components = append(result.Components, cr)
		result.Summary.TotalComponents++

		if !cr.Success {
			result.Summary.FailureCount++
			log.Printf("⚠️  Skipping %s component: %v", cr.Type, cr.Errors)
			continue
		}

		result.Summary.SuccessCount++
		if len(idsByType[cr.Type]) == 0 {
			encounterOrder = append(encounterOrder, cr.Type)
		}
		idsByType[cr.Type] = append(idsByType[cr.Type], cr.EntryID)
	}

	result.State = StateAssemblingReferences
	result.ComponentIDs = mapping.AssembleReferences(idsByType, encounterOrder)

	result.State = StateCreatingPage
	pageEntry := mapping.MapPage(data, result.ComponentIDs, p.locale)
	if v := mapping.Validate(pageEntry, schema.TypePage, p.locale); !v.IsValid {
		return fail(result, validationErrors("page", v)...)
	}

	pageID, err := p.cms.CreateEntry(ctx, schema.Get(schema.TypePage).ContentTypeID, pageEntry)
	if err != nil {
		return fail(result, fmt.Sprintf("page creation failed: %v", err))
	}
	result.PageID = pageID
	log.Printf("✅ Page created: %s", pageID)

	if opts.WithRelease {
		result.State = StateCreatingRelease
		entryIDs := append([]string{pageID}, result.ComponentIDs...)
		release, err := p.cms.CreateRelease(ctx, opts.ReleaseTitle, entryIDs)
		if err != nil {
			// Page and components exist as drafts; report the partial result.
			return fail(result, fmt.Sprintf("release creation failed: %v", err))
		}
		result.ReleaseID = release.ID
		log.Printf("✅ Release created: %s (%d entries)", release.ID, len(entryIDs))
	}

	result.State = StateDone
	result.Success = true
	return result
}

// createComponent maps, validates and creates one section. FAQ sections run
// the two-stage flow: accordion items first, then the parent referencing
// their ids in creation order.
func (p *Publisher) createComponent(ctx context.Context, section mapping.GeneratedSection, opts Options) ComponentResult {
	cr := ComponentResult{Type: section.Type}

	switch section.Type {
	case schema.TypeHero:
		assetID := p.resolveHeroAsset(ctx, section.Hero, opts.ImageURLs)
		entry := mapping.MapHero(section.Hero, p.locale, assetID, p.defaultAssetID)
		return p.validateAndCreate(ctx, cr, entry, schema.TypeHero)

	case schema.TypeSEOTextBlock:
		entry := mapping.MapSEOText(section.SEOText, p.locale, p.defaultAssetID)
		return p.validateAndCreate(ctx, cr, entry, schema.TypeSEOTextBlock)

	case schema.TypeFAQSection:
		return p.createFAQSection(ctx, cr, section.FAQ)

	default:
		cr.Errors = []string{fmt.Sprintf("unknown component type: %s", section.Type)}
		return cr
	}
}

func (p *Publisher) createFAQSection(ctx context.Context, cr ComponentResult, faq *mapping.FAQSection) ComponentResult {
	itemIDs := []string{}
	accordionTypeID := schema.Get(schema.TypeAccordionItem).ContentTypeID

	for _, item := range faq.Items {
		entry := mapping.MapAccordionItem(item, p.locale)
		if v := mapping.Validate(entry, schema.TypeAccordionItem, p.locale); !v.IsValid {
			log.Printf("⚠️  Skipping accordion item: %v", validationErrors("accordionItem", v))
			continue
		}

		id, err := p.cms.CreateEntry(ctx, accordionTypeID, entry)
		if err != nil {
			cr.Errors = append(cr.Errors, fmt.Sprintf("accordion item creation failed: %v", err))
			continue
		}
		itemIDs = append(itemIDs, id)
	}

	entry := mapping.MapFAQSection(faq, itemIDs, p.locale, p.defaultAssetID)
	return p.validateAndCreate(ctx, cr, entry, schema.TypeFAQSection)
}

func (p *Publisher) validateAndCreate(ctx context.Context, cr ComponentResult, entry *mapping.MappedEntry, t schema.ComponentType) ComponentResult {
	if v := mapping.Validate(entry, t, p.locale); !v.IsValid {
		cr.Errors = append(cr.Errors, validationErrors(string(t), v)...)
		return cr
	}

	id, err := p.cms.CreateEntry(ctx, schema.Get(t).ContentTypeID, entry)
	if err != nil {
		cr.Errors = append(cr.Errors, fmt.Sprintf("%s creation failed: %v", t, err))
		return cr
	}

	cr.EntryID = id
	cr.Success = true
	log.Printf("✅ %s component created: %s", t, id)
	return cr
}

// resolveHeroAsset turns a caller-provided hero image URL into a CMS asset.
// Asset failures fall back to the default asset instead of failing the hero.
func (p *Publisher) resolveHeroAsset(ctx context.Context, hero *mapping.HeroSection, imageURLs map[string]string) string {
	url := imageURLs[string(schema.TypeHero)]
	if url == "" {
		return ""
	}

	title := hero.Title
	if title == "" {
		title = "Hero Image"
	}

	assetID, err := p.cms.CreateAsset(ctx, url, title, hero.ImageAltText)
	if err != nil {
		log.Printf("⚠️  Hero asset creation failed, using default asset: %v", err)
		return ""
	}
	return assetID
}

func fail(result *Result, errs ...string) *Result {
	result.State = StateFailed
	result.Success = false
	result.Errors = append(result.Errors, errs...)
	return result
}

func validationErrors(unit string, v mapping.ValidationResult) []string {
	errs := make([]string, 0, len(v.MissingFields)+len(v.Errors))
	for _, f := range v.MissingFields {
		errs = append(errs, fmt.Sprintf("%s: missing required field: %s", unit, f))
	}
	for _, e := range v.Errors {
		errs = append(errs, fmt.Sprintf("%s: %s", unit, e))
	}
	return errs
}
