package handlers

import (
	"Playroom/services/directory"
	"Playroom/services/games"
	"Playroom/services/invites"
	"Playroom/services/sessions"
	socketio_types "Playroom/services/socket_io/types"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// HandleInviteGame proposes a game to another connected user. Unknown
// opponents, self-invites and unknown variants are dropped silently, the
// same way the move path treats illegitimate actions.
func HandleInviteGame(broker *invites.Broker, dir *directory.Directory,
	client *socket.Socket, username string, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		if len(args) < 1 {
			return
		}
		data, ok := args[0].(map[string]interface{})
		if !ok {
			return
		}
		opponent, _ := data["opponent_id"].(string)
		variant, _ := data["game"].(string)

		if opponent == "" || opponent == username || !dir.Known(opponent) {
			log.Printf("[INVITE] Dropping invite from %s to unknown or invalid opponent %q", username, opponent)
			return
		}
		if _, ok := games.Lookup(variant); !ok {
			log.Printf("[INVITE] Dropping invite from %s for unknown variant %q", username, variant)
			return
		}

		inv := broker.Propose(username, opponent, variant)
		log.Printf("[INVITE] %s invited %s to %s (%s)", username, opponent, variant, inv.ID)

		sio.ToUser(opponent, "game_invite", gin.H{
			"id":   inv.ID,
			"from": username,
			"game": variant,
		})
	}
}

// HandleAcceptInvite consumes the invitation and spins up the session. Only
// the recorded opponent can accept; a second accept finds nothing and is a
// no-op.
func HandleAcceptInvite(broker *invites.Broker, store *sessions.Store,
	client *socket.Socket, username string, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		if len(args) < 1 {
			return
		}
		inviteID, ok := args[0].(string)
		if !ok {
			return
		}

		inv, ok := broker.Accept(inviteID, username)
		if !ok {
			log.Printf("[INVITE] Ignoring accept of %q by %s", inviteID, username)
			return
		}

		if _, err := sessions.Start(store, sio, inv.Variant, inv.Inviter, inv.Opponent); err != nil {
			log.Printf("[INVITE-ERROR] Could not start session for %s: %v", inv.ID, err)
		}
	}
}

// HandleDeclineInvite discards the invitation and tells the inviter.
func HandleDeclineInvite(broker *invites.Broker, client *socket.Socket,
	username string, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		if len(args) < 1 {
			return
		}
		inviteID, ok := args[0].(string)
		if !ok {
			return
		}

		inv, ok := broker.Decline(inviteID)
		if !ok {
			return
		}
		sio.ToUser(inv.Inviter, "game_message", gin.H{
			"message": fmt.Sprintf("%s declined your invitation.", inv.Opponent),
		})
	}
}
