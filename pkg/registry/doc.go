// Package registry maps Go method names on the Slack client to Slack Web API
// operation paths.
//
// The generator discovers callable members by reflection, but stand-ins are
// named and configured by wire path ("chat.postMessage", "auth.test"), which
// is how tests and the Slack documentation talk about operations. This
// package holds that mapping as an explicit static table rather than deriving
// it at runtime.
//
// Both the plain and the Context-suffixed variant of a method map to the same
// path, so configuring an operation by path covers both.
package registry
