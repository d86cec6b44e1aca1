package slackmock

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"

	"github.com/mockbot/go-slackmock/pkg/mockgen"
	"github.com/mockbot/go-slackmock/pkg/registry"
	"github.com/mockbot/go-slackmock/pkg/stub"
)

// Client is the mocked Slack Web API client. Its full surface is the
// generated mock object; the typed methods below cover the bot-facing subset
// so the mock satisfies consumer-defined client interfaces directly.
type Client struct {
	obj *mockgen.Object
}

// Mock returns the underlying generated object for generic access to every
// stand-in, including operations without a typed wrapper here.
func (c *Client) Mock() *mockgen.Object {
	return c.obj
}

// Stub resolves a stand-in by Web API path ("chat.postMessage") or Go method
// name ("PostMessage"). For a path with plain and Context method variants it
// returns the plain one. Returns nil for unknown operations.
func (c *Client) Stub(name string) *stub.Stub {
	stubs := c.stubsFor(name)
	if len(stubs) == 0 {
		return nil
	}
	return stubs[0]
}

// ExpectResolve configures an operation, addressed as in Stub, to resolve
// with payload. A Web API path covers both its plain and Context method
// variants.
func (c *Client) ExpectResolve(name string, payload any) *Client {
	for _, s := range c.stubsFor(name) {
		s.ResolveWith(payload)
	}
	return c
}

// ExpectReject configures an operation, addressed as in Stub, to fail with
// err. Slack error strings make natural rejections:
//
//	client.ExpectReject("chat.postMessage", errors.New("channel_not_found"))
func (c *Client) ExpectReject(name string, err error) *Client {
	for _, s := range c.stubsFor(name) {
		s.RejectWith(err)
	}
	return c
}

// Reset clears recorded calls and configuration on every stand-in, then
// restores the auth.test identity default.
func (c *Client) Reset() *Client {
	for _, s := range c.obj.Stubs() {
		s.Reset()
	}
	c.ExpectResolve("auth.test", DefaultAuthTestPayload())
	return c
}

func (c *Client) stubsFor(name string) []*stub.Stub {
	var stubs []*stub.Stub
	for _, method := range registry.MethodsFor(name) {
		if s := c.obj.Stub(method); s != nil {
			stubs = append(stubs, s)
		}
	}
	if len(stubs) == 0 {
		if s := c.obj.Stub(name); s != nil {
			stubs = append(stubs, s)
		}
	}
	return stubs
}

func (c *Client) invoke(ctx context.Context, method string, args ...any) (any, error) {
	s := c.obj.Stub(method)
	if s == nil {
		return nil, &Error{
			Code:    "unknown_operation",
			Message: fmt.Sprintf("no stand-in for operation %q", method),
			Type:    "validation_error",
		}
	}
	return s.Invoke(args...).Await(ctx)
}

// auth

// AuthTest performs the identity check. Freshly constructed clients resolve
// it with DefaultAuthTestPayload, which is what a Bolt-style framework's
// startup self-check expects.
func (c *Client) AuthTest() (*slack.AuthTestResponse, error) {
	return c.authTest(context.Background(), "AuthTest")
}

// AuthTestContext is AuthTest with a context.
func (c *Client) AuthTestContext(ctx context.Context) (*slack.AuthTestResponse, error) {
	return c.authTest(ctx, "AuthTestContext")
}

func (c *Client) authTest(ctx context.Context, method string) (*slack.AuthTestResponse, error) {
	out, err := c.invoke(ctx, method)
	if err != nil {
		return nil, err
	}
	if resp, ok := out.(*slack.AuthTestResponse); ok {
		return resp, nil
	}
	resp := &slack.AuthTestResponse{}
	if p := payloadMap(out); p != nil {
		if err := decodeInto(p, resp); err != nil {
			return nil, err
		}
	}
	return resp, nil
}

// chat

// PostMessage sends a message to a channel. The default success echoes the
// channel and fabricates a message timestamp.
func (c *Client) PostMessage(channelID string, options ...slack.MsgOption) (string, string, error) {
	return c.postMessage(context.Background(), "PostMessage", channelID, options)
}

// PostMessageContext is PostMessage with a context.
func (c *Client) PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
	return c.postMessage(ctx, "PostMessageContext", channelID, options)
}

func (c *Client) postMessage(ctx context.Context, method, channelID string, options []slack.MsgOption) (string, string, error) {
	args := make([]any, 0, len(options)+1)
	args = append(args, channelID)
	for _, opt := range options {
		args = append(args, opt)
	}
	out, err := c.invoke(ctx, method, args...)
	if err != nil {
		return "", "", err
	}
	p := payloadMap(out)
	return stringField(p, "channel", channelID), stringField(p, "ts", nextTimestamp()), nil
}

// PostEphemeral sends an ephemeral message to a user in a channel.
func (c *Client) PostEphemeral(channelID, userID string, options ...slack.MsgOption) (string, error) {
	args := make([]any, 0, len(options)+2)
	args = append(args, channelID, userID)
	for _, opt := range options {
		args = append(args, opt)
	}
	out, err := c.invoke(context.Background(), "PostEphemeral", args...)
	if err != nil {
		return "", err
	}
	p := payloadMap(out)
	return stringField(p, "message_ts", nextTimestamp()), nil
}

// UpdateMessage updates a previously sent message.
func (c *Client) UpdateMessage(channelID, timestamp string, options ...slack.MsgOption) (string, string, string, error) {
	args := make([]any, 0, len(options)+2)
	args = append(args, channelID, timestamp)
	for _, opt := range options {
		args = append(args, opt)
	}
	out, err := c.invoke(context.Background(), "UpdateMessage", args...)
	if err != nil {
		return "", "", "", err
	}
	p := payloadMap(out)
	return stringField(p, "channel", channelID),
		stringField(p, "ts", timestamp),
		stringField(p, "text", ""),
		nil
}

// DeleteMessage deletes a message.
func (c *Client) DeleteMessage(channel, messageTimestamp string) (string, string, error) {
	out, err := c.invoke(context.Background(), "DeleteMessage", channel, messageTimestamp)
	if err != nil {
		return "", "", err
	}
	p := payloadMap(out)
	return stringField(p, "channel", channel), stringField(p, "ts", messageTimestamp), nil
}

// reactions

// AddReaction adds an emoji reaction to an item.
func (c *Client) AddReaction(name string, item slack.ItemRef) error {
	_, err := c.invoke(context.Background(), "AddReaction", name, item)
	return err
}

// RemoveReaction removes an emoji reaction from an item.
func (c *Client) RemoveReaction(name string, item slack.ItemRef) error {
	_, err := c.invoke(context.Background(), "RemoveReaction", name, item)
	return err
}

// conversations

// GetConversationHistory fetches a channel's message history.
func (c *Client) GetConversationHistory(params *slack.GetConversationHistoryParameters) (*slack.GetConversationHistoryResponse, error) {
	out, err := c.invoke(context.Background(), "GetConversationHistory", params)
	if err != nil {
		return nil, err
	}
	if resp, ok := out.(*slack.GetConversationHistoryResponse); ok {
		return resp, nil
	}
	resp := &slack.GetConversationHistoryResponse{}
	if p := payloadMap(out); p != nil {
		if err := decodeInto(p, resp); err != nil {
			return nil, err
		}
	}
	return resp, nil
}

// GetConversationReplies fetches a message thread.
func (c *Client) GetConversationReplies(params *slack.GetConversationRepliesParameters) ([]slack.Message, bool, string, error) {
	out, err := c.invoke(context.Background(), "GetConversationReplies", params)
	if err != nil {
		return nil, false, "", err
	}
	if msgs, ok := out.([]slack.Message); ok {
		return msgs, false, "", nil
	}
	var resp struct {
		Messages         []slack.Message `json:"messages"`
		HasMore          bool            `json:"has_more"`
		ResponseMetaData struct {
			NextCursor string `json:"next_cursor"`
		} `json:"response_metadata"`
	}
	if p := payloadMap(out); p != nil {
		if err := decodeInto(p, &resp); err != nil {
			return nil, false, "", err
		}
	}
	return resp.Messages, resp.HasMore, resp.ResponseMetaData.NextCursor, nil
}

// GetConversationInfo fetches a single channel.
func (c *Client) GetConversationInfo(input *slack.GetConversationInfoInput) (*slack.Channel, error) {
	out, err := c.invoke(context.Background(), "GetConversationInfo", input)
	if err != nil {
		return nil, err
	}
	if ch, ok := out.(*slack.Channel); ok {
		return ch, nil
	}
	ch := &slack.Channel{}
	if err := decodeField(payloadMap(out), "channel", ch); err != nil {
		return nil, err
	}
	return ch, nil
}

// GetConversations lists channels.
func (c *Client) GetConversations(params *slack.GetConversationsParameters) ([]slack.Channel, string, error) {
	out, err := c.invoke(context.Background(), "GetConversations", params)
	if err != nil {
		return nil, "", err
	}
	if chs, ok := out.([]slack.Channel); ok {
		return chs, "", nil
	}
	var resp struct {
		Channels         []slack.Channel `json:"channels"`
		ResponseMetaData struct {
			NextCursor string `json:"next_cursor"`
		} `json:"response_metadata"`
	}
	if p := payloadMap(out); p != nil {
		if err := decodeInto(p, &resp); err != nil {
			return nil, "", err
		}
	}
	return resp.Channels, resp.ResponseMetaData.NextCursor, nil
}

// JoinConversation joins a channel.
func (c *Client) JoinConversation(channelID string) (*slack.Channel, string, []string, error) {
	out, err := c.invoke(context.Background(), "JoinConversation", channelID)
	if err != nil {
		return nil, "", nil, err
	}
	if ch, ok := out.(*slack.Channel); ok {
		return ch, "", nil, nil
	}
	p := payloadMap(out)
	ch := &slack.Channel{}
	if err := decodeField(p, "channel", ch); err != nil {
		return nil, "", nil, err
	}
	return ch, stringField(p, "warning", ""), nil, nil
}

// OpenConversation opens or resumes a direct or multi-person message.
func (c *Client) OpenConversation(params *slack.OpenConversationParameters) (*slack.Channel, bool, bool, error) {
	out, err := c.invoke(context.Background(), "OpenConversation", params)
	if err != nil {
		return nil, false, false, err
	}
	if ch, ok := out.(*slack.Channel); ok {
		return ch, false, false, nil
	}
	p := payloadMap(out)
	ch := &slack.Channel{}
	if err := decodeField(p, "channel", ch); err != nil {
		return nil, false, false, err
	}
	return ch, boolField(p, "no_op", false), boolField(p, "already_open", false), nil
}

// users

// GetUserInfo fetches a user.
func (c *Client) GetUserInfo(user string) (*slack.User, error) {
	return c.userCall("GetUserInfo", user)
}

// GetUserByEmail fetches a user by email address.
func (c *Client) GetUserByEmail(email string) (*slack.User, error) {
	return c.userCall("GetUserByEmail", email)
}

func (c *Client) userCall(method, arg string) (*slack.User, error) {
	out, err := c.invoke(context.Background(), method, arg)
	if err != nil {
		return nil, err
	}
	if u, ok := out.(*slack.User); ok {
		return u, nil
	}
	u := &slack.User{}
	if err := decodeField(payloadMap(out), "user", u); err != nil {
		return nil, err
	}
	return u, nil
}

// team

// GetTeamInfo fetches the workspace description.
func (c *Client) GetTeamInfo() (*slack.TeamInfo, error) {
	out, err := c.invoke(context.Background(), "GetTeamInfo")
	if err != nil {
		return nil, err
	}
	if ti, ok := out.(*slack.TeamInfo); ok {
		return ti, nil
	}
	ti := &slack.TeamInfo{}
	if err := decodeField(payloadMap(out), "team", ti); err != nil {
		return nil, err
	}
	return ti, nil
}
