package image

import "errors"

type StubResizer struct {
	ResizeFileFunc func(path string, width, height int) error
}

var _ Resizer = &StubResizer{}

func (r *StubResizer) ResizeFile(path string, width, height int) error {
	if r.ResizeFileFunc == nil {
		return errors.New("ResizeFile not implemented by stub")
	}
	return r.ResizeFileFunc(path, width, height)
}
