package routes

import (
	"Playroom/middleware"
	"Playroom/services/directory"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures the HTTP surface: a health probe, the guest token
// endpoint and the static client assets. Gameplay itself runs over the
// socket.io mount, see services/socket_io.
func SetupRoutes(router *gin.Engine, dir *directory.Directory) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")

	auth := api.Group("/auth")
	{
		auth.POST("/guest", guestToken(dir))
	}

	router.Static("/public", "./public")
}

// guestToken validates a requested display name and issues the JWT the
// socket.io handshake expects. Name uniqueness is re-checked at connection
// time; this early check just gives the client a friendly failure.
func guestToken(dir *directory.Directory) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Username string `json:"username" binding:"required"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing username"})
			return
		}
		if dir.Known(body.Username) {
			c.JSON(http.StatusConflict, gin.H{"error": "Username is already taken"})
			return
		}
		token, err := middleware.MintGuestToken(body.Username)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not issue token"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"username": body.Username, "token": token})
	}
}
