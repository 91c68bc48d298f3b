package main

import (
	game_constants "Playroom/constants/game"
	"Playroom/middleware"
	"Playroom/routes"
	"Playroom/services/directory"
	"Playroom/services/invites"
	"Playroom/services/redis"
	"Playroom/services/sessions"
	"Playroom/services/socket_io"
	socketio_types "Playroom/services/socket_io/types"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()
	log.Println("Setting up server...")

	if os.Getenv("PROD") == "true" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Redis is optional: without it the server runs memory-only, chat
	// history replay and presence are simply off.
	var redisClient *redis.RedisClient
	if addr := os.Getenv("REDIS_URL"); addr != "" {
		db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
		var err error
		redisClient, err = redis.InitRedis(addr, db)
		if err != nil {
			log.Fatalf("Error connecting to Redis: %v", err)
		}
		defer redis.CloseRedis(redisClient)
	} else {
		log.Println("REDIS_URL not set, running without chat history and presence")
	}

	dir := directory.New()
	store := sessions.NewStore()

	sio := socketio_types.NewSocketServer()
	broker := invites.NewBroker(game_constants.InviteTTL, func(inv *invites.Invitation) {
		sio.ToUser(inv.Inviter, "game_message", gin.H{
			"message": fmt.Sprintf("Your invitation to %s expired.", inv.Opponent),
		})
	})

	r := gin.Default()

	middleware.SetUpMiddleware(r)
	routes.SetupRoutes(r, dir)

	(*socket_io.MySocketServer)(sio).Start(r, dir, store, broker, redisClient)

	signalC := make(chan os.Signal, 1)
	signal.Notify(signalC, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-signalC
		(*socket_io.MySocketServer)(sio).Close()
		os.Exit(0)
	}()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
