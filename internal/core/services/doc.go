// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The whitelist run is built from three pieces:
//
//   - OriginLister: fetches and decodes the remote allowed origins
//   - Reconciler: applies a mode and classifies every remote call
//   - AllowlistService: gathers active store origins and runs the Reconciler
//
// Services are pure Go with no CGO or external dependencies.
package services
