package handlers

import (
	"Playroom/services/games"
	"Playroom/services/sessions"
	socketio_types "Playroom/services/socket_io/types"

	"github.com/zishang520/socket.io/v2/socket"
)

// moveHandler adapts a socket.io game event into a dispatched move. The
// payload object must carry "game_id"; everything else is variant data the
// engine decodes itself.
func moveHandler(store *sessions.Store, sio *socketio_types.SocketServer,
	username string, action string) func(args ...interface{}) {
	return func(args ...interface{}) {
		if len(args) < 1 {
			return
		}
		data, ok := args[0].(map[string]interface{})
		if !ok {
			return
		}
		sessionID, ok := data["game_id"].(string)
		if !ok {
			return
		}
		sessions.Dispatch(store, sio, sessionID, username, games.Move{
			Action: action,
			Data:   data,
		})
	}
}

// One handler per game event, mirroring the variant move verbs.

func HandleTicTacToeMove(store *sessions.Store, client *socket.Socket,
	username string, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return moveHandler(store, sio, username, "place")
}

func HandleRPSMove(store *sessions.Store, client *socket.Socket,
	username string, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return moveHandler(store, sio, username, "play")
}

func HandleSetNumber(store *sessions.Store, client *socket.Socket,
	username string, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return moveHandler(store, sio, username, "set")
}

func HandleGuessNumber(store *sessions.Store, client *socket.Socket,
	username string, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return moveHandler(store, sio, username, "guess")
}

func HandlePalermoAction(store *sessions.Store, client *socket.Socket,
	username string, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return moveHandler(store, sio, username, "act")
}

func HandleMemoryFlip(store *sessions.Store, client *socket.Socket,
	username string, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return moveHandler(store, sio, username, "flip")
}

func HandleSnakeChangeDirection(store *sessions.Store, client *socket.Socket,
	username string, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return moveHandler(store, sio, username, "steer")
}

func HandleAirHockeyPaddleMove(store *sessions.Store, client *socket.Socket,
	username string, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return moveHandler(store, sio, username, "paddle")
}
