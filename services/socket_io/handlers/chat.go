package handlers

import (
	redis_models "Playroom/models/redis"
	"Playroom/services/redis"
	socketio_types "Playroom/services/socket_io/types"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// HandleMessage broadcasts a chat message to everyone and, when Redis is
// configured, appends it to the replayable history.
func HandleMessage(redisClient *redis.RedisClient, client *socket.Socket,
	username string, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		if len(args) < 1 {
			return
		}
		message, ok := args[0].(string)
		if !ok || message == "" {
			return
		}

		sio.ToRoom(socketio_types.GlobalRoom, "message", gin.H{
			"username": username,
			"message":  message,
		})

		if redisClient == nil {
			return
		}
		err := redisClient.PushChatMessage(&redis_models.ChatMessage{
			Message:   message,
			Username:  username,
			Timestamp: time.Now(),
		})
		if err != nil {
			log.Printf("[CHAT-ERROR] Could not store chat message: %v", err)
		}
	}
}

// ReplayChatHistory sends the stored chat backlog to a freshly joined
// client, oldest message first.
func ReplayChatHistory(redisClient *redis.RedisClient, client *socket.Socket) {
	if redisClient == nil {
		return
	}
	history, err := redisClient.RecentChatMessages()
	if err != nil {
		log.Printf("[CHAT-ERROR] Could not load chat history: %v", err)
		return
	}
	for _, msg := range history {
		client.Emit("message", gin.H{
			"username": msg.Username,
			"message":  msg.Message,
		})
	}
}
