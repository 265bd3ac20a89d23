package routes

import (
	"dostfrnd_server/middlewares"
	"dostfrnd_server/services"

	"github.com/gofiber/fiber/v2"
)

func chatRoutes(api fiber.Router) {

	chat := api.Group("/chat")
	chat.Use(middlewares.Authenticate)

	chat.Get("/history/:recipientID", services.GetChats)
	chat.Patch("/message", services.EditMessage)
	chat.Delete("/message", services.DeleteMessage)
}
