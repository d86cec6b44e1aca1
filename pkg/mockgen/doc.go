// Package mockgen derives a structurally congruent mock from a live object.
//
// Generate walks a source value with reflection and produces an Object with
// the same member shape, where:
//
//   - every callable member (func-typed values and every exported method in
//     the source's method set, promoted methods included) becomes a fresh
//     call-recording stand-in that succeeds by default
//   - strings, booleans, numbers and nil values are copied unchanged
//   - nested structs, struct pointers and string-keyed maps are walked
//     recursively into child Objects
//
// The generated Object never aliases the source at any level and the source
// is never mutated. Input graphs must be finite; cyclic graphs are caught by
// a configurable depth guard rather than recursing without bound.
//
// The walk is deliberately domain-agnostic. Slack-specific behavior (the
// auth.test identity payload, wire-path naming) is layered on top by
// pkg/slackmock.
package mockgen
