package domain

import "fmt"

// Store is a storefront whose base URL must be allowed to call Adyen from the browser.
type Store struct {
	// ID is the store identifier and the configuration scope for its credentials.
	ID string

	// Code is a short machine name (e.g., "default", "en_gb").
	Code string

	// Name is the human-readable store name.
	Name string

	// BaseURL is the public front-end URL, possibly with a trailing slash.
	BaseURL string

	// Active stores are the only ones whose origins are managed.
	Active bool

	// SortOrder controls enumeration order; ties keep insertion order.
	SortOrder int
}

// Validate checks the fields a store needs before it can be saved.
func (s Store) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("%w: store id is required", ErrInvalidInput)
	}
	if NormalizeOrigin(s.BaseURL) == "" {
		return fmt.Errorf("%w: store %s has no base url", ErrInvalidInput, s.ID)
	}
	return nil
}
