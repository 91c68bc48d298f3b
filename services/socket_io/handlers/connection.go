package handlers

import (
	"Playroom/services/directory"
	"Playroom/services/invites"
	"Playroom/services/redis"
	"Playroom/services/sessions"
	socketio_types "Playroom/services/socket_io/types"
	"log"

	"github.com/gin-gonic/gin"
)

// HandleDisconnecting tears down everything a departing user touches:
// every session they were part of is force-terminated, their pending
// invitations are discarded, their name is released and the roster update
// is broadcast.
func HandleDisconnecting(username string, sio *socketio_types.SocketServer,
	dir *directory.Directory, store *sessions.Store, broker *invites.Broker,
	redisClient *redis.RedisClient) func(args ...interface{}) {
	return func(args ...interface{}) {
		log.Printf("[DISCONNECT] User disconnecting: %s", username)

		sessions.DropParticipant(store, sio, username)
		broker.DropParticipant(username)
		dir.Leave(username)

		if redisClient != nil {
			if err := redisClient.ClearPresence(username); err != nil {
				log.Printf("[DISCONNECT-ERROR] Could not clear presence for %s: %v", username, err)
			}
		}

		sio.ToRoom(socketio_types.GlobalRoom, "user_left", gin.H{
			"username": username,
			"users":    dir.Users(),
		})

		sio.RemoveConnection(username)
		log.Printf("[DISCONNECT-DONE] User disconnected: %s", username)
	}
}
