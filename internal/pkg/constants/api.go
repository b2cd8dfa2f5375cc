package constants

// Message endpoints
const (
	PathSendMessage                = "/api/message/sendMessage"
	PathHostelOwnerPreviousChat    = "/api/message/getHostelOwnerPreviousChat"
	PathTiffinProviderPreviousChat = "/api/message/getTiffinProviderPreviousChat"
)

// Fallback messages when the server gives none
const (
	DefaultSendFailureMessage    = "failed to send message"
	DefaultHistoryFailureMessage = "failed to load conversation"
)
