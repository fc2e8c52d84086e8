package image

import (
	"fmt"

	"github.com/disintegration/imaging"
)

// imagingResizer implements the Resizer interface using the imaging library.
type imagingResizer struct{}

var _ Resizer = (*imagingResizer)(nil)

func NewImagingResizer() Resizer {
	return &imagingResizer{}
}

func (ir *imagingResizer) ResizeFile(path string, width, height int) error {
	img, err := imaging.Open(path)
	if err != nil {
		return fmt.Errorf("open image %s: %w", path, err)
	}

	resized := imaging.Resize(img, width, height, imaging.Lanczos)
	if err := imaging.Save(resized, path); err != nil {
		return fmt.Errorf("save resized image %s: %w", path, err)
	}

	return nil
}
