package hash

// Hasher defines methods for one-way password hashing and verification.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hashed string) (bool, error)
}
