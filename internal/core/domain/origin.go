package domain

import "strings"

// LocalOrigin is the public base URL of one active store.
// The URL never carries a trailing slash because Adyen stores origins without one.
type LocalOrigin struct {
	StoreID string
	URL     string
}

// RemoteOrigin is one entry of the Adyen allowed origins list.
// ID is assigned by Adyen and is the only way to address the entry for deletion.
type RemoteOrigin struct {
	ID     string `json:"id"`
	Domain string `json:"domain"`
}

// NormalizeOrigin strips every trailing slash from a base URL.
func NormalizeOrigin(baseURL string) string {
	return strings.TrimRight(strings.TrimSpace(baseURL), "/")
}

// NewLocalOrigin builds the origin for a store.
func NewLocalOrigin(store Store) LocalOrigin {
	return LocalOrigin{
		StoreID: store.ID,
		URL:     NormalizeOrigin(store.BaseURL),
	}
}

// OriginIndex maps an origin URL to the local origin that owns it.
// When several stores share a URL the first one indexed keeps ownership.
type OriginIndex struct {
	byURL map[string]LocalOrigin
}

// NewOriginIndex indexes origins in the given order.
func NewOriginIndex(origins []LocalOrigin) *OriginIndex {
	idx := &OriginIndex{byURL: make(map[string]LocalOrigin, len(origins))}
	for _, o := range origins {
		if _, taken := idx.byURL[o.URL]; taken {
			continue
		}
		idx.byURL[o.URL] = o
	}
	return idx
}

// Lookup returns the owner of url, if any.
func (i *OriginIndex) Lookup(url string) (LocalOrigin, bool) {
	o, ok := i.byURL[url]
	return o, ok
}

// Len returns the number of distinct URLs indexed.
func (i *OriginIndex) Len() int {
	return len(i.byURL)
}
