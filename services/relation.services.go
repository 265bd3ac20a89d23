package services

import (
	"dostfrnd_server/errors"
	"dostfrnd_server/global"
	"dostfrnd_server/helpers"
	"dostfrnd_server/schemas"
	"dostfrnd_server/store"

	"github.com/gofiber/fiber/v2"
)

// GetSuggestions lists the not-yet-connected identities sharing the caller's title
func GetSuggestions(c *fiber.Ctx) error {

	userID := c.Locals("userid").(string)

	suggested, err := helpers.SuggestIdentities(global.Context, userID)
	if err != nil {
		if err == store.ErrNotFound {
			return errors.HandleNotFoundError(c, "User")
		}
		return errors.HandleInternalError(c, "suggest", err.Error())
	}

	return c.JSON(struct {
		Users []schemas.PublicIdentitySchema
	}{
		Users: suggested,
	})
}

// SendFriendRequest sends a request to the user named in the body
func SendFriendRequest(c *fiber.Ctx) error {

	userID := c.Locals("userid").(string)

	req := new(schemas.TargetUserSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	recipientName, alreadySent, err := helpers.SendFriendRequest(global.Context, userID, req.UserID)
	if err != nil {
		if err == store.ErrNotFound {
			return errors.HandleNotFoundError(c, "Recipient")
		}
		if err == helpers.ErrSelfRequest {
			return errors.HandleBadRequestError(c, "UserID", "self")
		}
		return errors.HandleInternalError(c, "friend_requests", err.Error())
	}

	if alreadySent {
		return c.JSON(schemas.RequestReportSchema{
			Success: false,
			Message: "Friend request already sent",
		})
	}

	return c.JSON(schemas.RequestReportSchema{
		Success: true,
		Message: "Friend request sent successfully to " + recipientName,
	})
}

// AcceptFriendRequest accepts the pending request from the user named in the body
func AcceptFriendRequest(c *fiber.Ctx) error {

	userID := c.Locals("userid").(string)

	req := new(schemas.TargetUserSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	if err := helpers.AcceptFriendRequest(global.Context, userID, req.UserID); err != nil {
		if err == store.ErrNotFound {
			return errors.HandleNotFoundError(c, "FriendRequest")
		}
		return errors.HandleInternalError(c, "friend_requests", err.Error())
	}

	return c.JSON(schemas.RequestReportSchema{
		Success: true,
		Message: "Friend request accepted successfully",
	})
}

// GetFriendRequests lists the caller's incoming requests
func GetFriendRequests(c *fiber.Ctx) error {

	userID := c.Locals("userid").(string)

	incoming, err := helpers.IncomingRequests(global.Context, userID)
	if err != nil {
		if err == store.ErrNotFound {
			return errors.HandleNotFoundError(c, "User")
		}
		return errors.HandleInternalError(c, "friend_requests", err.Error())
	}

	return c.JSON(struct {
		Success bool
		Data    []schemas.IncomingRequestSchema
	}{
		Success: true,
		Data:    incoming,
	})
}

// DismissUser removes the target from the caller's suggestions and pending
// requests by growing the caller's rejected set
func DismissUser(c *fiber.Ctx) error {

	userID := c.Locals("userid").(string)
	targetID := c.Params("userID")

	if err := helpers.RejectOrDismiss(global.Context, userID, targetID); err != nil {
		if err == store.ErrNotFound {
			return errors.HandleNotFoundError(c, "User")
		}
		return errors.HandleInternalError(c, "rejected_users", err.Error())
	}

	return c.JSON(schemas.RequestReportSchema{
		Success: true,
		Message: "User removed from suggestions",
	})
}

// GetFriendsList assembles the caller's deduplicated friends list
func GetFriendsList(c *fiber.Ctx) error {

	userID := c.Locals("userid").(string)

	friends, err := helpers.FriendsList(global.Context, userID)
	if err != nil {
		if err == store.ErrNotFound {
			return errors.HandleNotFoundError(c, "User")
		}
		return errors.HandleInternalError(c, "friends_list", err.Error())
	}

	return c.JSON(struct {
		Success bool
		Data    []schemas.FriendSummarySchema
	}{
		Success: true,
		Data:    friends,
	})
}

// GetFriendsCount returns per-category distinct friend counts
func GetFriendsCount(c *fiber.Ctx) error {

	counts, err := helpers.FriendsCountByCategory(global.Context)
	if err != nil {
		if err == helpers.ErrInvalidCategory {
			return errors.HandleBadRequestError(c, "Title", "invalid")
		}
		return errors.HandleInternalError(c, "friends_count", err.Error())
	}

	return c.JSON(struct {
		Data map[string]int
	}{
		Data: counts,
	})
}
