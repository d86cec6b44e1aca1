package test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mockbot/go-slackmock/pkg/module"
	"github.com/mockbot/go-slackmock/pkg/slackmock"
	"github.com/mockbot/go-slackmock/pkg/stub"
)

// slackAPI is the interface a typical bot declares over the real client.
type slackAPI interface {
	AuthTestContext(ctx context.Context) (*slack.AuthTestResponse, error)
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)
}

// bot is a minimal Bolt-style bot: it verifies its identity at startup and
// announces itself in a channel.
type bot struct {
	api     slackAPI
	channel string

	botUserID string
}

func (b *bot) Start(ctx context.Context) error {
	identity, err := b.api.AuthTestContext(ctx)
	if err != nil {
		return fmt.Errorf("identity check failed: %w", err)
	}
	b.botUserID = identity.UserID

	_, _, err = b.api.PostMessage(b.channel,
		slack.MsgOptionText(fmt.Sprintf("%s is online", identity.User), false))
	return err
}

func TestBotStartup(t *testing.T) {
	t.Parallel()

	client := slackmock.New("")
	b := &bot{api: client, channel: "C123"}

	err := b.Start(context.Background())
	require.NoError(t, err)

	// The default identity payload satisfied the startup self-check.
	assert.Equal(t, "W00000000", b.botUserID)

	post := client.Stub("chat.postMessage")
	require.Equal(t, 1, post.CallCount())
	assert.Equal(t, "C123", post.LastCall().Args[0])
}

func TestBotStartup_AuthFailure(t *testing.T) {
	t.Parallel()

	client := slackmock.NewFactory().New("")
	client.ExpectReject("auth.test", errors.New("invalid_auth"))

	b := &bot{api: client, channel: "C123"}
	err := b.Start(context.Background())

	require.ErrorContains(t, err, "invalid_auth")
	assert.Equal(t, 0, client.Stub("chat.postMessage").CallCount(),
		"the bot must not post before its identity check passes")
}

func TestBotStartup_ThroughModuleSubstitute(t *testing.T) {
	t.Parallel()

	sub, err := module.NewSubstitute(nil)
	require.NoError(t, err)

	client := sub.New("xoxb-from-env")
	client.ExpectResolve("chat.postMessage", stub.Payload{
		"ok": true, "channel": "C999", "ts": "1700000000.000001",
	})

	b := &bot{api: client, channel: "C999"}
	require.NoError(t, b.Start(context.Background()))

	assert.True(t, sub.Export("New").CalledWith("xoxb-from-env"))
	assert.Equal(t, 1, client.Stub("chat.postMessage").CallCount())
}
