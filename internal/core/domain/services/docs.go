// Package services provides domain services for the partner client.
//
// The package includes:
//   - LifecycleStore: the in-memory projection store that keeps the full
//     order list and the active/completed projections mutually consistent,
//     and tracks per-operation pending state and the last failure
//
// The store is the only shared mutable resource in the core; everything else
// is either pure (the status classifier) or stateless orchestration.
package services
