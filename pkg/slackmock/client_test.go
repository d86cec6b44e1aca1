package slackmock

import (
	"context"
	"errors"
	"testing"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mockbot/go-slackmock/pkg/stub"
)

// The mock should slot in wherever bot code declares its own client
// interface over the real type.
type botClient interface {
	AuthTest() (*slack.AuthTestResponse, error)
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)
	GetUserInfo(user string) (*slack.User, error)
	AddReaction(name string, item slack.ItemRef) error
}

var _ botClient = (*Client)(nil)

func TestNew_AuthTestIdentity(t *testing.T) {
	t.Parallel()

	client := NewFactory().New("")

	resp, err := client.AuthTest()
	require.NoError(t, err)
	assert.Equal(t, "go-slackmock-bot", resp.User)
	assert.Equal(t, "W00000000", resp.UserID)
	assert.Equal(t, "B00000000", resp.BotID)
	assert.Equal(t, "T00000000", resp.TeamID)

	// The Context variant carries the same override.
	resp, err = client.AuthTestContext(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "B00000000", resp.BotID)

	assert.Equal(t, 1, client.Stub("auth.test").CallCount())
}

func TestClient_UnconfiguredOperationsSucceed(t *testing.T) {
	t.Parallel()

	client := NewFactory().New("")

	channel, ts, err := client.PostMessage("C123", slack.MsgOptionText("hello", false))
	require.NoError(t, err)
	assert.Equal(t, "C123", channel)
	assert.NotEmpty(t, ts)

	err = client.AddReaction("thumbsup", slack.NewRefToMessage("C123", ts))
	require.NoError(t, err)

	s := client.Stub("chat.postMessage")
	require.NotNil(t, s)
	require.Equal(t, 1, s.CallCount())
	assert.Equal(t, "C123", s.LastCall().Args[0])
}

func TestClient_StubLookup(t *testing.T) {
	t.Parallel()

	client := NewFactory().New("")

	// Path and Go method name address the same stand-in.
	assert.Same(t, client.Stub("chat.postMessage"), client.Stub("PostMessage"))
	assert.Nil(t, client.Stub("not.anOperation"))

	// Operations without a typed wrapper are still reachable generically.
	require.True(t, client.Mock().Has("GetUsers"))
}

func TestClient_ExpectResolve(t *testing.T) {
	t.Parallel()

	t.Run("payload map", func(t *testing.T) {
		t.Parallel()
		client := NewFactory().New("")
		client.ExpectResolve("chat.postMessage", stub.Payload{
			"ok": true, "channel": "C999", "ts": "1700000000.000100",
		})

		channel, ts, err := client.PostMessage("C123")
		require.NoError(t, err)
		assert.Equal(t, "C999", channel)
		assert.Equal(t, "1700000000.000100", ts)
	})

	t.Run("typed response passthrough", func(t *testing.T) {
		t.Parallel()
		client := NewFactory().New("")
		want := &slack.GetConversationHistoryResponse{
			Messages: []slack.Message{
				{Msg: slack.Msg{Text: "hello", Timestamp: "1.000"}},
			},
		}
		client.ExpectResolve("conversations.history", want)

		got, err := client.GetConversationHistory(&slack.GetConversationHistoryParameters{ChannelID: "C123"})
		require.NoError(t, err)
		assert.Same(t, want, got)
	})

	t.Run("wire-shaped map decodes into typed response", func(t *testing.T) {
		t.Parallel()
		client := NewFactory().New("")
		client.ExpectResolve("users.info", stub.Payload{
			"ok":   true,
			"user": map[string]any{"id": "U777", "name": "marge"},
		})

		user, err := client.GetUserInfo("U777")
		require.NoError(t, err)
		assert.Equal(t, "U777", user.ID)
		assert.Equal(t, "marge", user.Name)
	})
}

func TestClient_ExpectReject(t *testing.T) {
	t.Parallel()

	client := NewFactory().New("")
	wantErr := errors.New("channel_not_found")
	client.ExpectReject("chat.postMessage", wantErr)

	_, _, err := client.PostMessage("C123")
	require.ErrorIs(t, err, wantErr)

	// Context variant rejects too.
	_, _, err = client.PostMessageContext(context.Background(), "C123")
	require.ErrorIs(t, err, wantErr)

	// Other operations keep succeeding.
	_, err = client.AuthTest()
	require.NoError(t, err)
}

func TestClient_OneShotThenDefault(t *testing.T) {
	t.Parallel()

	client := NewFactory().New("")
	client.Stub("chat.postMessage").RejectOnceWith(errors.New("ratelimited"))

	_, _, err := client.PostMessage("C123")
	require.EqualError(t, err, "ratelimited")

	_, _, err = client.PostMessage("C123")
	require.NoError(t, err)
}

func TestClient_ConversationSurface(t *testing.T) {
	t.Parallel()

	client := NewFactory().New("")
	client.ExpectResolve("conversations.replies", stub.Payload{
		"ok":       true,
		"has_more": true,
		"messages": []map[string]any{
			{"text": "root", "ts": "1.000"},
			{"text": "reply", "ts": "2.000"},
		},
		"response_metadata": map[string]any{"next_cursor": "cur123"},
	})

	msgs, hasMore, cursor, err := client.GetConversationReplies(&slack.GetConversationRepliesParameters{
		ChannelID: "C123",
		Timestamp: "1.000",
	})
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "reply", msgs[1].Text)
	assert.True(t, hasMore)
	assert.Equal(t, "cur123", cursor)

	client.ExpectResolve("conversations.info", stub.Payload{
		"ok":      true,
		"channel": map[string]any{"id": "C123", "name": "general"},
	})
	ch, err := client.GetConversationInfo(&slack.GetConversationInfoInput{ChannelID: "C123"})
	require.NoError(t, err)
	assert.Equal(t, "C123", ch.ID)
	assert.Equal(t, "general", ch.Name)
}

func TestClient_Reset(t *testing.T) {
	t.Parallel()

	client := NewFactory().New("")
	client.ExpectReject("auth.test", errors.New("invalid_auth"))
	client.PostMessage("C123")

	client.Reset()

	assert.Equal(t, 0, client.Stub("chat.postMessage").CallCount())
	resp, err := client.AuthTest()
	require.NoError(t, err)
	assert.Equal(t, "B00000000", resp.BotID, "reset restores the identity default")
}

func TestClient_BadPayloadSurfaces(t *testing.T) {
	t.Parallel()

	client := NewFactory().New("")
	client.ExpectResolve("users.info", stub.Payload{
		"ok":   true,
		"user": map[string]any{"id": 12345}, // id must be a string
	})

	_, err := client.GetUserInfo("U1")
	require.Error(t, err)

	var mockErr *Error
	require.ErrorAs(t, err, &mockErr)
	assert.Equal(t, "bad_payload", mockErr.Code)
}
