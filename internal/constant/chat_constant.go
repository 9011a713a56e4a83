package constant

const (
	ChatRoleUser = "user"
	ChatRoleAi   = "ai"

	DefaultChatContext = "student"

	// Event codes published on the internal bus.
	EventUserLogin      = "USER_LOGIN"
	EventAssistantReply = "ASSISTANT_REPLY"
)
