// Package accesspolicy implements the role policy consulted by the vesting ledger.
//
// Layering:
// - domain: role entities, invariants, errors
// - application: policy service and workers using explicit ports
// - ports: stable boundaries for persistence/cache/events
// - adapters: concrete HTTP, memory, postgres, redis, and event publisher implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - Keep this module self-contained under identity-access context.
// - Do not import other context adapters into domain/application.
// - The treasury-core ledger reads roles only through its RoleChecker port.
package accesspolicy
