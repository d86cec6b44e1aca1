// Package module provides a drop-in substitute for the slack package's
// export surface, for tests that swap the whole library out rather than
// injecting a single client.
//
// NewSubstitute takes the harness's generic "derive a mock" primitive
// (mockgen.Generate by default) and applies it to a declared table of the
// slack package's commonly used top-level exports, so message-option and
// block constructors become generic stand-ins. The one export generic
// derivation cannot express is the client constructor, whose surface is only
// discovered by introspecting a constructed instance; Substitute overrides it
// with the constructible factory from pkg/slackmock, so substituted-in
// clients carry the auth.test identity default.
package module
