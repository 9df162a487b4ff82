// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - AllowedOriginsClient: Adyen Management API allowed origins calls
//   - StoreRepository: Storefront enumeration and persistence
//   - ConfigStore: Persisted configuration file
//   - ScopedConfig: Store-scoped configuration lookups
//   - SecretBox: API key encryption at rest
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
