// Package auth holds the credential primitives used by the service layer:
// salted argon2id password hashing and HS256 access tokens.
package auth
