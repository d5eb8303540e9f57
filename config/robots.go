package config

import (
	"strconv"
	"strings"
)

// Robots holds page-level robots directives. Nil fields are unset and
// inherit from whatever they are merged onto.
type Robots struct {
	Index           *bool  `yaml:"index"`
	Follow          *bool  `yaml:"follow"`
	NoArchive       *bool  `yaml:"noarchive"`
	MaxImagePreview string `yaml:"max_image_preview"`
	MaxSnippet      *int   `yaml:"max_snippet"`
}

// RobotsFor returns the default directives for the given indexing state.
func RobotsFor(indexing bool) Robots {
	if indexing {
		return Robots{
			Index:           Bool(true),
			Follow:          Bool(true),
			MaxImagePreview: "large",
			MaxSnippet:      Int(160),
		}
	}
	return Robots{
		Index:           Bool(false),
		Follow:          Bool(false),
		NoArchive:       Bool(true),
		MaxImagePreview: "none",
		MaxSnippet:      Int(0),
	}
}

// String renders the directives as a robots meta tag or X-Robots-Tag value,
// e.g. "index, follow, max-image-preview:large, max-snippet:160".
func (r Robots) String() string {
	var parts []string
	if r.Index != nil {
		if *r.Index {
			parts = append(parts, "index")
		} else {
			parts = append(parts, "noindex")
		}
	}
	if r.Follow != nil {
		if *r.Follow {
			parts = append(parts, "follow")
		} else {
			parts = append(parts, "nofollow")
		}
	}
	if r.NoArchive != nil && *r.NoArchive {
		parts = append(parts, "noarchive")
	}
	if r.MaxImagePreview != "" {
		parts = append(parts, "max-image-preview:"+r.MaxImagePreview)
	}
	if r.MaxSnippet != nil {
		parts = append(parts, "max-snippet:"+strconv.Itoa(*r.MaxSnippet))
	}
	return strings.Join(parts, ", ")
}
