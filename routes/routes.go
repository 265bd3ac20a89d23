package routes

import (
	"dostfrnd_server/config"
	"dostfrnd_server/middlewares"
	"dostfrnd_server/socket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
)

// SetRoutes sets up all routes
func SetRoutes(app *fiber.App) {

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.Config.Origin,
		AllowCredentials: true,
		ExposeHeaders:    "x-session-id, x-refreshed, x-refresh-token, x-refresh-token-expire, x-access-token",
	}))

	app.Use("/stream", middlewares.AuthenticateStream, websocket.New(socket.ClientSocket))

	api := app.Group(config.Config.Version)

	authRoutes(api)
	userRoutes(api)
	relationRoutes(api)
	chatRoutes(api)
	paymentRoutes(api)
}
