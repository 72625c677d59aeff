package contentful

import (
	"context"

	"github.com/seoforge/seoforge/internal/mapping"
)

// ManagementAPI is the slice of the CMS management surface the publisher
// needs. Every entry is created as an unpublished draft; only releases can
// be explicitly published through this interface.
type ManagementAPI interface {
	CheckConnection(ctx context.Context) error
	CreateEntry(ctx context.Context, contentTypeID string, entry *mapping.MappedEntry) (string, error)
	CreateAsset(ctx context.Context, imageURL, title, description string) (string, error)
	CreateRelease(ctx context.Context, title string, entryIDs []string) (*Release, error)
	GetRelease(ctx context.Context, releaseID string) (*Release, error)
	AddToRelease(ctx context.Context, releaseID string, entryIDs []string) (*Release, error)
	PublishRelease(ctx context.Context, releaseID string) (*Release, error)
	ListReleases(ctx context.Context) ([]Release, error)
}

// Release is a named batch of entry references.
type Release struct {
	ID       string
	Title    string
	EntryIDs []string
	Version  int
}

type sys struct {
	ID      string `json:"id"`
	Type    string `json:"type,omitempty"`
	Version int    `json:"version,omitempty"`
}

type entryResponse struct {
	Sys sys `json:"sys"`
}

type releaseEntities struct {
	Sys   sys            `json:"sys"`
	Items []mapping.Link `json:"items"`
}

type releasePayload struct {
	Title    string          `json:"title"`
	Entities releaseEntities `json:"entities"`
}

type releaseResponse struct {
	Sys      sys             `json:"sys"`
	Title    string          `json:"title"`
	Entities releaseEntities `json:"entities"`
}

type releaseList struct {
	Items []releaseResponse `json:"items"`
}

func (r releaseResponse) toRelease() *Release {
	ids := make([]string, 0, len(r.Entities.Items))
	for _, item := range r.Entities.Items {
		ids = append(ids, item.Sys.ID)
	}
	return &Release{
		ID:       r.Sys.ID,
		Title:    r.Title,
		EntryIDs: ids,
		Version:  r.Sys.Version,
	}
}
