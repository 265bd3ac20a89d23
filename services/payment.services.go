package services

import (
	"dostfrnd_server/errors"
	"dostfrnd_server/global"
	"dostfrnd_server/notify"
	"dostfrnd_server/schemas"

	"github.com/gofiber/fiber/v2"
)

// CapturePayment forwards the charge to the payment gateway and returns its
// response untouched
func CapturePayment(c *fiber.Ctx) error {

	req := new(schemas.PaymentRequestSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	result, err := notify.Payments.Charge(global.Context, *req)
	if err != nil {
		return errors.HandleInternalError(c, "payment_gateway", err.Error())
	}

	return c.JSON(result.Result)
}
