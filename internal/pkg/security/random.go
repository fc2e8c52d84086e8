package security

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
)

func GenerateRandomBytes(length uint32) ([]byte, error) {
	key := make([]byte, length)

	if _, err := rand.Read(key); err != nil {
		return nil, err
	}

	return key, nil
}

// GenerateRandomBytesURLEncoded returns length random bytes encoded with the
// unpadded URL-safe base64 alphabet, suitable for use in links and headers.
func GenerateRandomBytesURLEncoded(length uint32) (string, error) {
	key, err := GenerateRandomBytes(length)
	if err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(key), nil
}

var ErrMissingBearer = errors.New("missing or malformed authorization header")

// ExtractBearerToken returns the token from the Authorization header.
func ExtractBearerToken(r *http.Request) (string, error) {
	const prefix = "Bearer "
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, prefix)
	if !ok || token == "" {
		return "", ErrMissingBearer
	}
	return token, nil
}
