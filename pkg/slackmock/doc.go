// Package slackmock provides a constructible mock of the Slack Web API
// client for testing bot code without network calls.
//
// New mirrors the real constructor's shape. It builds one real client
// instance with no-op credentials, derives a congruent mock from it with
// pkg/mockgen (the real instance is only introspected, never invoked), and
// applies a single override: the auth.test stand-in resolves with a fixed
// bot-identity payload, matching the startup self-check of Bolt-style bot
// frameworks.
//
//	client := slackmock.New("")
//	client.ExpectResolve("chat.postMessage", stub.Payload{
//		"ok": true, "channel": "C123", "ts": "1700000000.000100",
//	})
//
//	// code under test
//	channel, ts, err := client.PostMessage("C123", slack.MsgOptionText("hi", false))
//
//	// assertions
//	require.Equal(t, 1, client.Stub("chat.postMessage").CallCount())
//
// Every operation is a configurable stand-in; unconfigured operations resolve
// successfully. Factories record their own invocations, so tests can assert
// how often and with which token the client was constructed.
package slackmock
