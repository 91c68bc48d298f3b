package socketio_utils

import (
	"Playroom/middleware"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// VerifyUserConnection checks the socket.io handshake for a guest token and
// returns the display name it was issued for.
func VerifyUserConnection(client *socket.Socket) (success bool, username string) {
	authData, ok := client.Handshake().Auth.(map[string]interface{})
	if !ok {
		log.Println("[AUTH-ERROR] No auth data provided in handshake")
		client.Emit("error", gin.H{"error": "Authentication failed: missing auth data"})
		return false, ""
	}

	token, exists := authData["authorization"].(string)
	if !exists {
		log.Println("[AUTH-ERROR] No authorization token provided in handshake")
		client.Emit("error", gin.H{"error": "Authentication failed: missing authorization token"})
		return false, ""
	}

	username, err := middleware.DecodeGuestToken(token)
	if err != nil {
		log.Printf("[AUTH-ERROR] Invalid guest token: %v", err)
		client.Emit("error", gin.H{
			"error": "Authentication failed: invalid token. Remember to set it on the 'authorization' field.",
		})
		return false, ""
	}

	return true, username
}
