// Package stub provides the call-recording stand-in used throughout go-slackmock.
//
// A Stub replaces a single callable member of the mocked client. It records
// every invocation and returns a configurable, pre-resolved Outcome instead of
// executing real logic. Unconfigured stubs resolve with a minimal success
// payload ({"ok": true}), so code under test that only checks for success
// works without any per-test setup.
//
// Response configuration:
//   - ResolveWith / RejectWith set a sticky override used for every call
//   - ResolveOnceWith / RejectOnceWith queue one-shot results consumed in
//     FIFO order before the sticky override
//
// Inspection:
//   - Calls, CallCount, LastCall, CalledWith
//
// Stubs are created fresh per generation pass and are never shared between
// two mocks, so reconfiguring one mock cannot affect another.
package stub
