package socket_io

import (
	redis_models "Playroom/models/redis"
	"Playroom/services/directory"
	"Playroom/services/invites"
	"Playroom/services/redis"
	"Playroom/services/sessions"
	"Playroom/services/socket_io/handlers"
	"log"
	"time"

	socketio_types "Playroom/services/socket_io/types"
	socketio_utils "Playroom/services/socket_io/utils"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"
)

type MySocketServer socketio_types.SocketServer

// Start mounts the socket.io server on the gin router and registers every
// gameplay event. One connection maps to one verified display name for its
// whole lifetime.
func (sio *MySocketServer) Start(router *gin.Engine, dir *directory.Directory,
	store *sessions.Store, broker *invites.Broker, redisClient *redis.RedisClient) {
	c := socket.DefaultServerOptions()
	c.SetServeClient(true)
	// NOTE: higher ping interval and timeout to 1) reduce network load and
	// 2) support slower networks
	c.SetPingInterval(5 * time.Second)
	c.SetPingTimeout(3 * time.Second)
	c.SetMaxHttpBufferSize(1000000)
	c.SetConnectTimeout(10 * time.Second)
	c.SetTransports(types.NewSet("polling", "websocket"))
	c.SetCors(&types.Cors{
		Origin:      "*",
		Credentials: true,
	})

	sio.Sio_server = socket.NewServer(nil, nil)
	sio.Sio_server.On("connection", func(clients ...interface{}) {
		client := clients[0].(*socket.Socket)

		// Check if the client presents a valid guest token
		success, username := socketio_utils.VerifyUserConnection(client)
		if !success {
			return
		}

		// Names are unique among connected users; a duplicate join fails.
		if err := dir.Join(username); err != nil {
			log.Printf("[JOIN-ERROR] %v", err)
			client.Emit("join_failed", gin.H{
				"error": "Username \"" + username + "\" is already taken.",
			})
			return
		}

		(*socketio_types.SocketServer)(sio).AddConnection(username, client)
		client.Join(socket.Room(socketio_types.GlobalRoom))

		if redisClient != nil {
			if err := redisClient.SetPresence(username, redis_models.StatusOnline); err != nil {
				log.Printf("[JOIN-ERROR] Could not set presence for %s: %v", username, err)
			}
		}

		log.Printf("[JOIN-SUCCESS] User connected: %s", username)

		client.Emit("join_success", gin.H{
			"username": username,
			"users":    dir.Users(),
		})
		(*socketio_types.SocketServer)(sio).ToRoom(socketio_types.GlobalRoom, "user_joined", gin.H{
			"username": username,
			"users":    dir.Users(),
		})

		handlers.ReplayChatHistory(redisClient, client)

		// Chat
		client.On("message", handlers.HandleMessage(redisClient, client, username, (*socketio_types.SocketServer)(sio)))

		// Invitations
		client.On("invite_game", handlers.HandleInviteGame(broker, dir, client, username, (*socketio_types.SocketServer)(sio)))
		client.On("accept_invite", handlers.HandleAcceptInvite(broker, store, client, username, (*socketio_types.SocketServer)(sio)))
		client.On("decline_invite", handlers.HandleDeclineInvite(broker, client, username, (*socketio_types.SocketServer)(sio)))

		// Game moves
		client.On("tic_tac_toe_move", handlers.HandleTicTacToeMove(store, client, username, (*socketio_types.SocketServer)(sio)))
		client.On("rps_move", handlers.HandleRPSMove(store, client, username, (*socketio_types.SocketServer)(sio)))
		client.On("set_number", handlers.HandleSetNumber(store, client, username, (*socketio_types.SocketServer)(sio)))
		client.On("guess_number", handlers.HandleGuessNumber(store, client, username, (*socketio_types.SocketServer)(sio)))
		client.On("palermo_action", handlers.HandlePalermoAction(store, client, username, (*socketio_types.SocketServer)(sio)))
		client.On("memory_flip", handlers.HandleMemoryFlip(store, client, username, (*socketio_types.SocketServer)(sio)))
		client.On("snake_change_direction", handlers.HandleSnakeChangeDirection(store, client, username, (*socketio_types.SocketServer)(sio)))
		client.On("air_hockey_paddle_move", handlers.HandleAirHockeyPaddleMove(store, client, username, (*socketio_types.SocketServer)(sio)))

		// NOTE: will remove sio connection from map
		client.On("disconnecting", handlers.HandleDisconnecting(username, (*socketio_types.SocketServer)(sio), dir, store, broker, redisClient))
	})

	router.POST("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))
	router.GET("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))

	log.Println("Socket server started")
}

// Close shuts the socket.io server down.
func (sio *MySocketServer) Close() {
	if sio.Sio_server != nil {
		sio.Sio_server.Close(nil)
	}
}
