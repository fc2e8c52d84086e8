package avatar

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ferdiebergado/userkit/internal/config"
)

// FSStore stores avatar files on the local filesystem under the configured
// public directory.
type FSStore struct {
	dir        string
	publicPath string
}

var _ Store = (*FSStore)(nil)

func NewFSStore(cfg *config.Avatar) (*FSStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create avatar directory %s: %w", cfg.Dir, err)
	}

	return &FSStore{
		dir:        cfg.Dir,
		publicPath: cfg.PublicPath,
	}, nil
}

func (s *FSStore) Save(filename string, src io.Reader) (diskPath, publicURL string, err error) {
	// Reject separators smuggled into the upload filename.
	filename = filepath.Base(filename)
	diskPath = filepath.Join(s.dir, filename)

	dst, err := os.Create(diskPath)
	if err != nil {
		return "", "", fmt.Errorf("create avatar file %s: %w", diskPath, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", "", fmt.Errorf("write avatar file %s: %w", diskPath, err)
	}

	if err := dst.Close(); err != nil {
		return "", "", fmt.Errorf("close avatar file %s: %w", diskPath, err)
	}

	return diskPath, s.publicPath + "/" + filename, nil
}

// Dir returns the directory where avatar files are stored.
func (s *FSStore) Dir() string {
	return s.dir
}
