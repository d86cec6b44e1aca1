package registry

// The built-in table covers the bot-facing surface of the client. Methods the
// table does not list still get stand-ins (the generator walks the full
// method set); they are just named after the Go method instead of a wire
// path.
func init() {
	register := func(group, path string, methods ...string) {
		for _, method := range methods {
			Register(Operation{Method: method, Path: path, Group: group})
		}
	}

	register("auth", "auth.test", "AuthTest", "AuthTestContext")
	register("auth", "auth.revoke", "SendAuthRevoke", "SendAuthRevokeContext")

	register("chat", "chat.postMessage", "PostMessage", "PostMessageContext")
	register("chat", "chat.postEphemeral", "PostEphemeral", "PostEphemeralContext")
	register("chat", "chat.update", "UpdateMessage", "UpdateMessageContext")
	register("chat", "chat.delete", "DeleteMessage", "DeleteMessageContext")
	register("chat", "chat.meMessage", "SendMessage", "SendMessageContext")
	register("chat", "chat.getPermalink", "GetPermalink", "GetPermalinkContext")
	register("chat", "chat.scheduleMessage", "ScheduleMessage", "ScheduleMessageContext")

	register("conversations", "conversations.history", "GetConversationHistory", "GetConversationHistoryContext")
	register("conversations", "conversations.replies", "GetConversationReplies", "GetConversationRepliesContext")
	register("conversations", "conversations.info", "GetConversationInfo", "GetConversationInfoContext")
	register("conversations", "conversations.list", "GetConversations", "GetConversationsContext")
	register("conversations", "conversations.join", "JoinConversation", "JoinConversationContext")
	register("conversations", "conversations.leave", "LeaveConversation", "LeaveConversationContext")
	register("conversations", "conversations.open", "OpenConversation", "OpenConversationContext")
	register("conversations", "conversations.create", "CreateConversation", "CreateConversationContext")
	register("conversations", "conversations.invite", "InviteUsersToConversation", "InviteUsersToConversationContext")
	register("conversations", "conversations.members", "GetUsersInConversation", "GetUsersInConversationContext")
	register("conversations", "conversations.setTopic", "SetTopicOfConversation", "SetTopicOfConversationContext")

	register("users", "users.info", "GetUserInfo", "GetUserInfoContext")
	register("users", "users.list", "GetUsers", "GetUsersContext")
	register("users", "users.lookupByEmail", "GetUserByEmail", "GetUserByEmailContext")
	register("users", "users.getPresence", "GetUserPresence", "GetUserPresenceContext")

	register("reactions", "reactions.add", "AddReaction", "AddReactionContext")
	register("reactions", "reactions.remove", "RemoveReaction", "RemoveReactionContext")
	register("reactions", "reactions.get", "GetReactions", "GetReactionsContext")

	register("team", "team.info", "GetTeamInfo", "GetTeamInfoContext")
	register("emoji", "emoji.list", "GetEmoji", "GetEmojiContext")

	register("files", "files.upload", "UploadFileV2", "UploadFileV2Context")
	register("files", "files.delete", "DeleteFile", "DeleteFileContext")

	register("views", "views.open", "OpenView", "OpenViewContext")
	register("views", "views.update", "UpdateView", "UpdateViewContext")
	register("views", "views.publish", "PublishView", "PublishViewContext")
}
