package routes

import (
	"dostfrnd_server/middlewares"
	"dostfrnd_server/services"

	"github.com/gofiber/fiber/v2"
)

func userRoutes(api fiber.Router) {

	user := api.Group("/users")
	user.Use(middlewares.Authenticate)

	user.Get("/", services.GetAllUsers)
	user.Get("/me", services.GetMe)
	user.Patch("/me", services.UpdateMe)
	user.Post("/me/avatar", services.UpdateAvatar)
	user.Delete("/me", services.DeleteMe)
}
