package errors

import (
	Errors "errors"
	"log"

	"dostfrnd_server/global"
	"dostfrnd_server/schemas"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// HandleFatalError handles global error
func HandleFatalError(err error) {
	if err != nil {
		log.Fatalln(err)
	}
}

// HandleBasicError handles basic error and logs
func HandleBasicError(err error) bool {
	if err != nil {
		global.InternalLogger.Println(err)
		return true
	}
	return false
}

// HandleComplexError handles complex errors and logs
func HandleComplexError(problem string, err string) error {
	global.MonitorLogger.Println("Complex error; Problem: " + problem + "; Error: " + err)
	return Errors.New("Problem: " + problem + "; Error: " + err)
}

// HandleInternalError handles internal errors (things that should never happen in normal circumstances)
func HandleInternalError(c *fiber.Ctx, problem string, err string) error {
	global.InternalLogger.Println("IP: " + c.IP() + "; Problem: " + problem + "; Error: " + err)
	return c.Status(fiber.StatusInternalServerError).JSON(schemas.ErrorResponse{
		Error: true,
	})
}

// HandleNotFoundError handles requests referencing absent identities/requests/messages
func HandleNotFoundError(c *fiber.Ctx, problem string) error {
	return c.Status(fiber.StatusNotFound).JSON(schemas.ErrorResponse{
		Error:       true,
		Problem:     problem,
		Description: "not found",
	})
}

// HandleBadRequestError handles bad request errors (client error that is harmless to server and state)
func HandleBadRequestError(c *fiber.Ctx, problem string, description string) error {
	global.MonitorLogger.Println("Bad Request; Problem: " + problem + "; Description: " + description)
	return c.Status(fiber.StatusBadRequest).JSON(schemas.ErrorResponse{
		Error:       true,
		Problem:     problem,
		Description: description,
	})
}

// HandleInvalidRequestError handles invalid request errors (expected errors)
func HandleInvalidRequestError(c *fiber.Ctx, problem string, description string) error {
	return c.Status(fiber.StatusAccepted).JSON(schemas.ErrorResponse{
		Error:       true,
		Problem:     problem,
		Description: description,
	})
}

// HandleUnauthorizedError handles requests missing a valid identity
func HandleUnauthorizedError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(schemas.ErrorResponse{
		Error:       true,
		Problem:     "Authorization",
		Description: "invalid",
	})
}

// HandleValidatorError handles errors when validating request
func HandleValidatorError(c *fiber.Ctx, err error) error {
	validatorErr := err.(validator.ValidationErrors)[0]
	return HandleBadRequestError(c, validatorErr.StructField(), validatorErr.Tag())
}

// HandleBadJsonError handles json request parser errors
func HandleBadJsonError(c *fiber.Ctx) error {
	return HandleBadRequestError(c, "JSON body", "invalid")
}
