package module

import "github.com/slack-go/slack"

// slackExports declares the export surface the substitute mirrors. The
// fields are nil; only their shape matters, since a declared func member
// derives a stand-in regardless of its value. New is listed for shape
// completeness but is overridden by the factory, never served generically.
type slackExports struct {
	New func(token string, options ...slack.Option) *slack.Client

	OptionDebug  func(b bool) slack.Option
	OptionAPIURL func(u string) slack.Option

	MsgOptionText        func(text string, escape bool) slack.MsgOption
	MsgOptionBlocks      func(blocks ...slack.Block) slack.MsgOption
	MsgOptionAttachments func(attachments ...slack.Attachment) slack.MsgOption
	MsgOptionAsUser      func(b bool) slack.MsgOption
	MsgOptionUpdate      func(timestamp string) slack.MsgOption
	MsgOptionDelete      func(timestamp string) slack.MsgOption

	NewBlockMessage    func(blocks ...slack.Block) slack.Message
	NewSectionBlock    func(textObj *slack.TextBlockObject, fields []*slack.TextBlockObject, accessory *slack.Accessory, options ...slack.SectionBlockOption) *slack.SectionBlock
	NewTextBlockObject func(elementType, text string, emoji, verbatim bool) *slack.TextBlockObject
	NewDividerBlock    func() *slack.DividerBlock
	NewRefToMessage    func(channel, timestamp string) slack.ItemRef
}
