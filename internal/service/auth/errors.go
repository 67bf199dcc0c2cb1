package auth

import (
	"errors"
	"fmt"

	"github.com/phrazzld/task-tracker-api/internal/domain"
)

// Token errors. All of them are authentication failures and match
// domain.ErrUnauthorized with errors.Is.
var (
	// ErrInvalidToken indicates the token format is invalid, the signature doesn't match,
	// or the subject it names no longer exists.
	ErrInvalidToken = fmt.Errorf("%w: invalid authentication token", domain.ErrUnauthorized)

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = fmt.Errorf("%w: authentication token has expired", domain.ErrUnauthorized)

	// ErrTokenNotYetValid indicates the token is not yet valid (nbf claim in the future)
	ErrTokenNotYetValid = fmt.Errorf("%w: authentication token not yet valid", domain.ErrUnauthorized)

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = fmt.Errorf("%w: authentication token is missing", domain.ErrUnauthorized)
)

// ErrHashing is returned when a salt or hash could not be produced.
var ErrHashing = errors.New("credential hashing failed")
