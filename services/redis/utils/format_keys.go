package redis_utils

import "fmt"

// FormatChatHistoryKey returns the key of the global chat history list.
func FormatChatHistoryKey() string {
	return "chat:history"
}

// FormatPresenceKey returns the presence key for a player.
func FormatPresenceKey(username string) string {
	return fmt.Sprintf("presence:%s", username)
}
