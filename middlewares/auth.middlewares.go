package middlewares

import (
	"strings"

	"dostfrnd_server/errors"
	"dostfrnd_server/global"
	"dostfrnd_server/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// Authenticate authenticates access tokens, refreshing via redis when expired
func Authenticate(c *fiber.Ctx) error {

	authorization := string(c.Request().Header.Peek("Authorization"))
	chunks := strings.Split(authorization, "Bearer ")
	if len(chunks) != 2 {
		return errors.HandleUnauthorizedError(c)
	}

	userID, err := helpers.ParseJWT(c, chunks[1])
	if userID == "expired" {

		sessionID := string(c.Request().Header.Peek("x-session-id"))
		refreshToken := string(c.Request().Header.Peek("x-refresh-token"))
		if sessionID == "" || refreshToken == "" {
			return errors.HandleUnauthorizedError(c)
		}

		res, err := global.RedisClient.HGetAll(global.Context, "refreshtokens:"+sessionID).Result()
		if err != nil {
			return errors.HandleInternalError(c, "get_refresh_tokens", "Redis: "+err.Error())
		}

		token, ok := res["token"]
		if !ok {
			return errors.HandleInvalidRequestError(c, "RefreshToken", "invalid")
		}

		userID = res["userid"]

		if err = helpers.GenerateAndRefreshTokens(c, userID, sessionID, refreshToken != token); err != nil {
			return err
		}
	}

	if userID == "" {
		return err
	}

	c.Locals("userid", userID)
	return c.Next()
}

// AuthenticateStream authenticates websocket connection
func AuthenticateStream(c *fiber.Ctx) error {

	if websocket.IsWebSocketUpgrade(c) {
		accessToken := c.Query("token")

		userID, err := helpers.ParseJWT(c, accessToken)
		if userID == "expired" {
			return errors.HandleInvalidRequestError(c, "AccessToken", "expired")
		} else if userID == "" {
			return err
		}

		c.Locals("userid", userID)
		return c.Next()
	}

	return errors.HandleInternalError(c, "websocket_upgrade", fiber.ErrUpgradeRequired.Error())
}
