package publish

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/seoforge/seoforge/internal/mapping"
)

func TestReleaseTitleFallbacks(t *testing.T) {
	data := &mapping.PageData{MetaTitle: "Meta Title"}

	assert.Equal(t, "Configured", releaseTitle("Configured", data))
	assert.Equal(t, "Meta Title", releaseTitle("", data))
	assert.Equal(t, "AI Generated Page Release", releaseTitle("", &mapping.PageData{}))
}
