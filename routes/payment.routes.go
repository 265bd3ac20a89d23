package routes

import (
	"dostfrnd_server/middlewares"
	"dostfrnd_server/services"

	"github.com/gofiber/fiber/v2"
)

func paymentRoutes(api fiber.Router) {

	payment := api.Group("/payment")
	payment.Use(middlewares.Authenticate)

	payment.Post("/capture", services.CapturePayment)
}
