// Package mocks provides centralized mock implementations for testing.
//
// Each mock exposes one function field per interface method. A nil field
// falls back to a simple default (usually the zero value or an in-memory map)
// so tests only configure the behavior they care about.
//
//	users := mocks.NewMockUserStore()
//	users.GetByUsernameFn = func(ctx context.Context, name string) (*domain.User, error) {
//	    return nil, store.ErrUserNotFound
//	}
package mocks
