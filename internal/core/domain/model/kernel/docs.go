// Package kernel provides core domain primitives shared across the partner
// application's domain model.
//
// The package includes:
//   - UUID: an immutable identifier value object used for assignment ids
//   - Money: a validated monetary amount carried through the order payload
//
// All types are value objects: immutable, comparable through IsEqual, and
// constructed exclusively through factory functions that enforce their
// invariants.
package kernel
