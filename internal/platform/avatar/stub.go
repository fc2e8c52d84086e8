package avatar

import (
	"errors"
	"io"
)

type StubStore struct {
	SaveFunc func(filename string, src io.Reader) (diskPath, publicURL string, err error)
}

var _ Store = &StubStore{}

func (s *StubStore) Save(filename string, src io.Reader) (string, string, error) {
	if s.SaveFunc == nil {
		return "", "", errors.New("Save not implemented by stub")
	}
	return s.SaveFunc(filename, src)
}
