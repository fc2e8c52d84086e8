package hash

import "errors"

type StubHasher struct {
	HashFunc   func(plain string) (string, error)
	VerifyFunc func(plain, hashed string) (bool, error)
}

var _ Hasher = &StubHasher{}

func (h *StubHasher) Hash(plain string) (string, error) {
	if h.HashFunc == nil {
		return "", errors.New("Hash not implemented by stub")
	}
	return h.HashFunc(plain)
}

func (h *StubHasher) Verify(plain, hashed string) (bool, error) {
	if h.VerifyFunc == nil {
		return false, errors.New("Verify not implemented by stub")
	}
	return h.VerifyFunc(plain, hashed)
}
