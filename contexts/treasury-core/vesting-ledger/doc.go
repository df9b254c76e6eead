// Package vestingledger implements the schedule ledger and drawdown engine.
//
// Layering:
// - domain: schedule entity, release math, errors
// - application: ledger service and workers using explicit ports
// - ports: stable boundaries for persistence/roles/transfer/events
// - adapters: concrete HTTP, memory, postgres, treasury, and event publisher implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - Keep this module self-contained under treasury-core context.
// - Role state is read only through the RoleChecker port, never mutated here.
// - Every mutating operation is strictly serialized by the repository; two
//   drawdowns against one schedule can never both read stale accounting.
package vestingledger
