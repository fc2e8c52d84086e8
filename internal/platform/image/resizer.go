package image

// Resizer defines the image processing applied to uploaded files.
type Resizer interface {
	// ResizeFile decodes the image at path, scales it to width x height, and
	// writes the result back in place.
	ResizeFile(path string, width, height int) error
}
