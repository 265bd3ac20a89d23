package routes

import (
	"dostfrnd_server/middlewares"
	"dostfrnd_server/services"

	"github.com/gofiber/fiber/v2"
)

func authRoutes(api fiber.Router) {

	auth := api.Group("/auth")

	auth.Post("/register", services.Register)
	auth.Post("/login", services.Login)
	auth.Post("/forgot-password", services.ForgotPassword)
	auth.Patch("/reset-password/:token", services.ResetPassword)

	auth.Post("/logout", middlewares.Authenticate, services.Logout)
	auth.Post("/send-otp", middlewares.Authenticate, services.SendOTP)
	auth.Post("/verify-otp", middlewares.Authenticate, services.VerifyOTP)
}
