// Package order provides the domain model for delivery assignments tracked by
// the partner client.
//
// The package includes:
//   - Order: the assignment aggregate; identifier, status, and opaque payload
//   - Status: the lifecycle state machine mirrored from the assignment service
//   - Membership: the projection classification every status maps into
//
// Key rules:
//   - The assignment service owns canonical order state; this model only
//     mirrors it. Orders are rebuilt from service responses, never mutated.
//   - Status.Membership is the single source of truth for whether an order
//     appears in the active or completed projection.
//   - Delivered and Rejected are terminal; Rejected orders leave the store.
package order
