package slackmock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactory_RecordsConstructions(t *testing.T) {
	t.Parallel()

	f := NewFactory()
	require.Equal(t, 0, f.Constructor().CallCount())

	f.New("xoxb-first")
	f.New("", OptionDebug(true), OptionAPIURL("https://example.com/api/"))

	ctor := f.Constructor()
	require.Equal(t, 2, ctor.CallCount())

	calls := ctor.Calls()
	assert.Equal(t, "xoxb-first", calls[0].Args[0])
	assert.Len(t, calls[0].Args, 1)
	assert.Equal(t, "", calls[1].Args[0])
	assert.Len(t, calls[1].Args, 3, "options are recorded alongside the token")
}

func TestFactory_ClientsAreIndependent(t *testing.T) {
	t.Parallel()

	f := NewFactory()
	a := f.New("")
	b := f.New("")

	a.Stub("chat.postMessage").ResolveOnceWith(nil)
	assert.Equal(t, 0, b.Stub("chat.postMessage").CallCount())

	_, _, err := b.PostMessage("C123")
	require.NoError(t, err)
	assert.Equal(t, 0, a.Stub("chat.postMessage").CallCount())
}

func TestPackageLevelNew(t *testing.T) {
	t.Parallel()

	client := New("xoxb-test")
	require.NotNil(t, client)

	resp, err := client.AuthTest()
	require.NoError(t, err)
	assert.Equal(t, "B00000000", resp.BotID)

	assert.True(t, Constructor().CalledWith("xoxb-test"))
}

func TestDefaultAuthTestPayload(t *testing.T) {
	t.Parallel()

	payload := DefaultAuthTestPayload()
	assert.Equal(t, true, payload["ok"])
	assert.NotEmpty(t, payload["user_id"])
	assert.NotEmpty(t, payload["bot_id"])

	// Each call returns a fresh map so one test's edits cannot leak.
	payload["ok"] = false
	assert.Equal(t, true, DefaultAuthTestPayload()["ok"])
}
