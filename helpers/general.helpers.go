package helpers

import (
	"crypto/rand"
	"encoding/hex"

	"dostfrnd_server/schemas"

	"github.com/gofiber/fiber/v2"
)

// RandomTokenString generates random hex token
func RandomTokenString(n int) (string, error) {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// OKResponse sends a successful request/response
func OKResponse(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(schemas.ErrorResponse{
		Error: false,
	})
}
