// Package credentials hashes and verifies user passwords. Hashes are
// argon2id over a random per-password salt, encoded as
// base64(salt):base64(hash). Plaintext is never stored.
package credentials

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	saltLen    = 16
	argonTime  = 1
	argonMem   = 64 * 1024
	argonLanes = 4
	hashLen    = 32
)

func Hash(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	hash := argon2.IDKey([]byte(password), salt, argonTime, argonMem, argonLanes, hashLen)

	return fmt.Sprintf("%s:%s",
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

// Verify reports whether password matches the encoded credential. The
// comparison is constant time; a malformed credential never matches.
func Verify(password, encoded string) bool {
	saltB64, hashB64, ok := strings.Cut(encoded, ":")
	if !ok {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(saltB64)
	if err != nil {
		return false
	}

	expectedHash, err := base64.RawStdEncoding.DecodeString(hashB64)
	if err != nil {
		return false
	}

	hash := argon2.IDKey([]byte(password), salt, argonTime, argonMem, argonLanes, hashLen)
	return subtle.ConstantTimeCompare(hash, expectedHash) == 1
}
