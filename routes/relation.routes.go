package routes

import (
	"dostfrnd_server/middlewares"
	"dostfrnd_server/services"

	"github.com/gofiber/fiber/v2"
)

func relationRoutes(api fiber.Router) {

	relation := api.Group("/relation")
	relation.Use(middlewares.Authenticate)

	relation.Get("/suggestions", services.GetSuggestions)
	relation.Post("/requests", services.SendFriendRequest)
	relation.Get("/requests", services.GetFriendRequests)
	relation.Post("/requests/accept", services.AcceptFriendRequest)

	// Declining a request and dismissing a suggestion share one mechanism:
	// both grow the caller's rejected set.
	relation.Post("/dismiss/:userID", services.DismissUser)
	relation.Delete("/requests/:userID", services.DismissUser)

	relation.Get("/friends", services.GetFriendsList)
	relation.Get("/friends/count", services.GetFriendsCount)
}
