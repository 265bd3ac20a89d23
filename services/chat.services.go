package services

import (
	"dostfrnd_server/errors"
	"dostfrnd_server/global"
	"dostfrnd_server/helpers"
	"dostfrnd_server/schemas"
	"dostfrnd_server/store"

	"github.com/gofiber/fiber/v2"
)

// GetChats returns the full conversation between the caller and recipientID,
// oldest first
func GetChats(c *fiber.Ctx) error {

	userID := c.Locals("userid").(string)
	recipientID := c.Params("recipientID")

	if recipientID == "" {
		return errors.HandleBadRequestError(c, "RecipientID", "missing")
	}

	chats, err := helpers.ChatHistory(global.Context, userID, recipientID)
	if err != nil {
		return errors.HandleInternalError(c, "chat_messages", err.Error())
	}

	return c.JSON(struct {
		Chats []schemas.ChatMessage
	}{
		Chats: chats,
	})
}

// EditMessage rewrites a stored message's body in place
func EditMessage(c *fiber.Ctx) error {

	req := new(schemas.EditMessageSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	msg, err := helpers.EditChatMessage(global.Context, req.SenderID, req.ReceiverID, req.MessageID, req.OldMessage, req.NewMessage)
	if err != nil {
		if err == store.ErrNotFound {
			return errors.HandleNotFoundError(c, "Message")
		}
		return errors.HandleInternalError(c, "chat_messages", err.Error())
	}

	return c.JSON(struct {
		Message *schemas.ChatMessage
	}{
		Message: msg,
	})
}

// DeleteMessage removes a stored message
func DeleteMessage(c *fiber.Ctx) error {

	req := new(schemas.DeleteMessageSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	if err := helpers.DeleteChatMessage(global.Context, req.SenderID, req.ReceiverID, req.MessageID, req.Message); err != nil {
		if err == store.ErrNotFound {
			return errors.HandleNotFoundError(c, "Message")
		}
		return errors.HandleInternalError(c, "chat_messages", err.Error())
	}

	return c.SendStatus(fiber.StatusNoContent)
}
