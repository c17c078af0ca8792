package ioutils

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoder registration

	"golang.org/x/image/draw"
)

// ImageService shrinks feed artwork before it is embedded in ID3 tags.
//
// Feed thumbnails can be several megabytes; embedding one in every episode
// file multiplies that cost, so the organizer can optionally scale the
// artwork down once per run.
type ImageService struct {
	quality int
}

// NewImageService creates a new ImageService that encodes JPEG at quality 90.
func NewImageService() *ImageService {
	return &ImageService{quality: 90}
}

// FitWithin scales an image so neither side exceeds maxSize pixels.
//
// The aspect ratio is preserved. Images already within bounds are
// re-encoded without scaling. The result is always JPEG.
//
// Example:
//
//	// A 3000x2000 PNG becomes a 1000x666 JPEG
//	small, err := svc.FitWithin(ctx, artwork, 1000)
func (s *ImageService) FitWithin(ctx context.Context, data []byte, maxSize int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if maxSize > 0 && (width > maxSize || height > maxSize) {
		if width >= height {
			height = height * maxSize / width
			width = maxSize
		} else {
			width = width * maxSize / height
			height = maxSize
		}
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: s.quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
