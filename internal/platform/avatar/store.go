package avatar

import "io"

// Store persists uploaded avatar files under a publicly served directory.
type Store interface {
	// Save writes src to permanent storage under filename. It returns the
	// path of the stored file on disk and the public URL path clients use to
	// fetch it.
	Save(filename string, src io.Reader) (diskPath, publicURL string, err error)
}
