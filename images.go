package seokit

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/eringen/seokit/jsonld"
)

// ProbeLogo reads the dimensions of the image at path without decoding its
// pixels and describes it as an ImageObject served at url.
func ProbeLogo(path, url string) (jsonld.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return jsonld.Image{}, fmt.Errorf("seokit: open logo: %w", err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return jsonld.Image{}, fmt.Errorf("seokit: decode logo %s: %w", path, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return jsonld.Image{}, fmt.Errorf("seokit: logo %s (%s) has no dimensions", path, format)
	}
	return jsonld.Image{URL: url, Width: cfg.Width, Height: cfg.Height}, nil
}
