// Package gravatar builds deterministic profile image URLs from email
// addresses using the Gravatar service.
package gravatar

import (
	"crypto/md5" //nolint:gosec //Gravatar addresses are keyed by md5, not used for security.
	"encoding/hex"
	"fmt"
	"strings"
)

const baseURL = "https://www.gravatar.com/avatar"

// URL returns the Gravatar URL for the given email at the requested pixel
// size. The email is trimmed and lowercased before hashing, so the same
// address always maps to the same image. Unknown addresses fall back to a
// generated "retro" image rated "pg".
func URL(email string, size int) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized)) //nolint:gosec
	hash := hex.EncodeToString(sum[:])
	return fmt.Sprintf("%s/%s?s=%d&r=pg&d=retro", baseURL, hash, size)
}
