package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// CredentialHasher derives and checks salted password hashes.
type CredentialHasher interface {
	// GenerateSalt returns a fresh random salt.
	GenerateSalt() (string, error)

	// Hash derives the stored hash for password and salt.
	// Identical inputs always produce the same output.
	Hash(password, salt string) (string, error)

	// Compare reports whether password with salt produces hash.
	Compare(hash, password, salt string) (bool, error)
}

// argon2id parameters
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 2
	argonKeyLen  = 32

	// SaltBytes is the number of random bytes in a generated salt.
	SaltBytes = 16
)

// Argon2Hasher implements CredentialHasher with argon2id.
type Argon2Hasher struct {
	rand io.Reader
}

var _ CredentialHasher = (*Argon2Hasher)(nil)

// NewArgon2Hasher creates a hasher that draws salts from crypto/rand.
func NewArgon2Hasher() *Argon2Hasher {
	return &Argon2Hasher{rand: rand.Reader}
}

// GenerateSalt implements CredentialHasher.GenerateSalt
func (h *Argon2Hasher) GenerateSalt() (string, error) {
	buf := make([]byte, SaltBytes)
	if _, err := io.ReadFull(h.rand, buf); err != nil {
		return "", fmt.Errorf("%w: reading random salt: %v", ErrHashing, err)
	}
	return base64.RawStdEncoding.EncodeToString(buf), nil
}

// Hash implements CredentialHasher.Hash
func (h *Argon2Hasher) Hash(password, salt string) (string, error) {
	if salt == "" {
		return "", fmt.Errorf("%w: salt is empty", ErrHashing)
	}
	key := argon2.IDKey([]byte(password), []byte(salt), argonTime, argonMemory, argonThreads, argonKeyLen)
	return base64.RawStdEncoding.EncodeToString(key), nil
}

// Compare implements CredentialHasher.Compare
func (h *Argon2Hasher) Compare(hash, password, salt string) (bool, error) {
	computed, err := h.Hash(password, salt)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hash)) == 1, nil
}
