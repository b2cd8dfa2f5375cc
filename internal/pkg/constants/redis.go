package constants

// Redis key formats
const (
	// Client session (CLI)
	KeyClientSession = "tiffinhub:session" // default SESSION_KEY

	// Dev messaging backend
	KeyConversationID       = "conversation:id:%s"       // Format: conversation:id:{user_id}
	KeyConversationMessages = "conversation:messages:%s" // Format: conversation:messages:{user_id}
)
