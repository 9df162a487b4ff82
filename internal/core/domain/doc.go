// Package domain defines the core business entities for allowlist.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Store: A storefront whose base URL is managed
//   - LocalOrigin: A store's normalised base URL
//   - RemoteOrigin: An entry in the Adyen allowed origins list
//   - Outcome: The classified result of one remote call
//   - Report: The ordered result of a whitelist run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
