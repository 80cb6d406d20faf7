package blog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"First Post", "first-post"},
		{"  Spaces   Everywhere  ", "spaces-everywhere"},
		{"Teeth Whitening: Before & After!", "teeth-whitening-before-after"},
		{"Already-Hyphenated --- Title", "already-hyphenated-title"},
		{"UPPER case 123", "upper-case-123"},
		{"", ""},
	}

	for _, tc := range cases {
		t.Run(tc.title, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.title))
		})
	}
}

func TestNewPost_GeneratesSlug(t *testing.T) {
	p := NewPost("Caring For Your Implants", "<p>body</p>")

	assert.Equal(t, "caring-for-your-implants", p.Slug)
	assert.Zero(t, p.VisitCounter)
	assert.NoError(t, p.Validate(t.Context()))
}

func TestPost_Validate(t *testing.T) {
	p := NewPost("", "<p>body</p>")
	assert.Error(t, p.Validate(t.Context()))

	p = NewPost("Title", "")
	assert.Error(t, p.Validate(t.Context()))
}
