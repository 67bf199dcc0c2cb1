package mocks

import (
	"github.com/phrazzld/task-tracker-api/internal/service/auth"
)

// MockCredentialHasher implements auth.CredentialHasher for testing.
// By default it hashes as "salt:password" and returns Salt from GenerateSalt.
type MockCredentialHasher struct {
	GenerateSaltFn func() (string, error)
	HashFn         func(password, salt string) (string, error)
	CompareFn      func(hash, password, salt string) (bool, error)

	Salt string

	// HashCalls counts Hash and Compare invocations.
	HashCalls int
}

var _ auth.CredentialHasher = (*MockCredentialHasher)(nil)

// GenerateSalt implements auth.CredentialHasher
func (m *MockCredentialHasher) GenerateSalt() (string, error) {
	if m.GenerateSaltFn != nil {
		return m.GenerateSaltFn()
	}
	if m.Salt == "" {
		return "mock-salt", nil
	}
	return m.Salt, nil
}

// Hash implements auth.CredentialHasher
func (m *MockCredentialHasher) Hash(password, salt string) (string, error) {
	m.HashCalls++
	if m.HashFn != nil {
		return m.HashFn(password, salt)
	}
	return salt + ":" + password, nil
}

// Compare implements auth.CredentialHasher
func (m *MockCredentialHasher) Compare(hash, password, salt string) (bool, error) {
	if m.CompareFn != nil {
		m.HashCalls++
		return m.CompareFn(hash, password, salt)
	}
	computed, err := m.Hash(password, salt)
	if err != nil {
		return false, err
	}
	return computed == hash, nil
}
