package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"io"

	"github.com/disintegration/imaging"
)

// ImageProcessor produces listing thumbnails.
type ImageProcessor struct {
	maxWidth  int
	maxHeight int
	quality   int
}

// NewImageProcessor creates a processor fitting thumbnails into maxWidth x maxHeight.
func NewImageProcessor(maxWidth, maxHeight int) *ImageProcessor {
	return &ImageProcessor{maxWidth: maxWidth, maxHeight: maxHeight, quality: 80}
}

// Thumbnail decodes a JPEG or PNG listing photo and returns a JPEG thumbnail.
func (p *ImageProcessor) Thumbnail(content io.Reader) (io.Reader, error) {
	img, _, err := image.Decode(content)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	thumb := imaging.Fit(img, p.maxWidth, p.maxHeight, imaging.Lanczos)

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, thumb, &jpeg.Options{Quality: p.quality}); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	return buf, nil
}
