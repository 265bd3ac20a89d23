package services

import (
	"strings"
	"time"

	"dostfrnd_server/config"
	"dostfrnd_server/errors"
	"dostfrnd_server/global"
	"dostfrnd_server/helpers"
	"dostfrnd_server/notify"
	"dostfrnd_server/schemas"
	"dostfrnd_server/store"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Register creates the identity, sends the welcome email and issues a session
func Register(c *fiber.Ctx) error {

	req := new(schemas.RegisterSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	req.Email = strings.ToLower(req.Email)
	if req.Title == "" {
		req.Title = "Other"
	}
	if !schemas.ValidTitle(req.Title) {
		return errors.HandleBadRequestError(c, "Title", "invalid")
	}

	if _, err := global.Identities.FindByEmail(global.Context, req.Email); err == nil {
		return errors.HandleInvalidRequestError(c, "Email", "exists")
	} else if err != store.ErrNotFound {
		return errors.HandleInternalError(c, "identities", err.Error())
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return errors.HandleInternalError(c, "bcrypt", err.Error())
	}

	id, err := helpers.NewID()
	if err != nil {
		return errors.HandleInternalError(c, "nanoid", err.Error())
	}

	identity := &schemas.Identity{
		ID:                      id,
		Name:                    req.Name,
		Email:                   req.Email,
		PasswordHash:            string(passwordHash),
		Title:                   req.Title,
		ImageURL:                schemas.DefaultImageURL,
		ProgrammingLanguages:    req.ProgrammingLanguages,
		Frameworks:              req.Frameworks,
		Libraries:               req.Libraries,
		Hobbies:                 req.Hobbies,
		ParticipatedInHackathon: req.ParticipatedInHackathon,
		Role:                    "user",
		Active:                  true,
		Created:                 time.Now().UTC(),
	}

	if err = global.Identities.Save(global.Context, identity); err != nil {
		return errors.HandleInternalError(c, "identities", err.Error())
	}

	go notify.SendWelcome(identity.Name, identity.Email)

	sessionID, err := helpers.RandomTokenString(20)
	if err != nil {
		return errors.HandleInternalError(c, "session_id", "hex token error")
	}
	c.Response().Header.Add("x-session-id", sessionID)

	if err = helpers.GenerateAndRefreshTokens(c, identity.ID, sessionID, false); err != nil {
		return err
	}

	return c.JSON(schemas.PublicIdentity(identity))
}

// Login verifies credentials and issues a fresh session
func Login(c *fiber.Ctx) error {

	req := new(schemas.LoginSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	identity, err := global.Identities.FindByEmail(global.Context, strings.ToLower(req.Email))
	if err != nil {
		if err == store.ErrNotFound {
			return errors.HandleInvalidRequestError(c, "Credentials", "invalid")
		}
		return errors.HandleInternalError(c, "identities", err.Error())
	}

	if err = bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(req.Password)); err != nil {
		return errors.HandleInvalidRequestError(c, "Credentials", "invalid")
	}

	sessionID, err := helpers.RandomTokenString(20)
	if err != nil {
		return errors.HandleInternalError(c, "session_id", "hex token error")
	}
	c.Response().Header.Add("x-session-id", sessionID)

	if err = helpers.GenerateAndRefreshTokens(c, identity.ID, sessionID, false); err != nil {
		return err
	}

	return c.JSON(schemas.PublicIdentity(identity))
}

// Logout revokes the caller's refresh token record
func Logout(c *fiber.Ctx) error {

	sessionID := string(c.Request().Header.Peek("x-session-id"))
	if sessionID == "" {
		return errors.HandleBadRequestError(c, "SessionID", "missing")
	}

	if err := global.RedisClient.Del(global.Context, "refreshtokens:"+sessionID).Err(); err != nil {
		return errors.HandleInternalError(c, "del_refresh_tokens", "Redis: "+err.Error())
	}

	return helpers.OKResponse(c)
}

// ForgotPassword emails a short-lived reset link; an undeliverable email
// clears the token so no orphan grants remain
func ForgotPassword(c *fiber.Ctx) error {

	req := new(schemas.ForgotPasswordSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	identity, err := global.Identities.FindByEmail(global.Context, strings.ToLower(req.Email))
	if err != nil {
		if err == store.ErrNotFound {
			return errors.HandleNotFoundError(c, "Email")
		}
		return errors.HandleInternalError(c, "identities", err.Error())
	}

	token, err := helpers.CreatePasswordResetToken(global.Context, identity.ID)
	if err != nil {
		return errors.HandleInternalError(c, "reset_token", "Redis: "+err.Error())
	}

	if err = notify.SendPasswordReset(identity.Email, config.Config.ResetURL+"/"+token); err != nil {
		if delErr := helpers.DeletePasswordResetToken(global.Context, token); delErr != nil {
			global.MonitorLogger.Println("Reset token cleanup error: " + delErr.Error())
		}
		return errors.HandleInternalError(c, "reset_email", err.Error())
	}

	return helpers.OKResponse(c)
}

// ResetPassword consumes a reset token, verifying the old password first
func ResetPassword(c *fiber.Ctx) error {

	token := c.Params("token")

	req := new(schemas.ResetPasswordSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	userID, err := helpers.LookupPasswordResetToken(global.Context, token)
	if err != nil {
		if err == store.ErrNotFound {
			return errors.HandleBadRequestError(c, "Token", "invalid or expired")
		}
		return errors.HandleInternalError(c, "reset_token", "Redis: "+err.Error())
	}

	identity, err := global.Identities.FindByID(global.Context, userID)
	if err != nil {
		if err == store.ErrNotFound {
			return errors.HandleNotFoundError(c, "User")
		}
		return errors.HandleInternalError(c, "identities", err.Error())
	}

	if err = bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(req.OldPassword)); err != nil {
		return errors.HandleBadRequestError(c, "OldPassword", "invalid")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.HandleInternalError(c, "bcrypt", err.Error())
	}

	identity.PasswordHash = string(passwordHash)
	identity.PasswordChangedAt = time.Now().UTC()

	if err = global.Identities.Save(global.Context, identity); err != nil {
		return errors.HandleInternalError(c, "identities", err.Error())
	}

	if err = helpers.DeletePasswordResetToken(global.Context, token); err != nil {
		global.MonitorLogger.Println("Reset token cleanup error: " + err.Error())
	}

	sessionID, err := helpers.RandomTokenString(20)
	if err != nil {
		return errors.HandleInternalError(c, "session_id", "hex token error")
	}
	c.Response().Header.Add("x-session-id", sessionID)

	if err = helpers.GenerateAndRefreshTokens(c, identity.ID, sessionID, false); err != nil {
		return err
	}

	return c.JSON(schemas.PublicIdentity(identity))
}

// SendOTP texts a fresh verification code to the given phone number
func SendOTP(c *fiber.Ctx) error {

	req := new(schemas.SendOTPSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	code, err := helpers.CreateOTPCode(global.Context, req.PhoneNumber)
	if err != nil {
		return errors.HandleInternalError(c, "otp", "Redis: "+err.Error())
	}

	go notify.SendOTP(req.PhoneNumber, code)

	return helpers.OKResponse(c)
}

// VerifyOTP consumes the code and marks the caller's phone verified
func VerifyOTP(c *fiber.Ctx) error {

	userID := c.Locals("userid").(string)

	req := new(schemas.VerifyOTPSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	ok, err := helpers.VerifyOTPCode(global.Context, req.PhoneNumber, req.OTP)
	if err != nil {
		return errors.HandleInternalError(c, "otp", "Redis: "+err.Error())
	}
	if !ok {
		return errors.HandleBadRequestError(c, "OTP", "invalid or expired")
	}

	identity, err := global.Identities.FindByID(global.Context, userID)
	if err != nil {
		if err == store.ErrNotFound {
			return errors.HandleNotFoundError(c, "User")
		}
		return errors.HandleInternalError(c, "identities", err.Error())
	}

	identity.Phone = req.PhoneNumber
	identity.PhoneVerified = true

	if err = global.Identities.Save(global.Context, identity); err != nil {
		return errors.HandleInternalError(c, "identities", err.Error())
	}

	return helpers.OKResponse(c)
}
