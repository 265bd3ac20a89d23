package services

import (
	"strings"

	"dostfrnd_server/config"
	"dostfrnd_server/errors"
	"dostfrnd_server/global"
	"dostfrnd_server/schemas"
	"dostfrnd_server/store"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/minio/minio-go/v7"
)

const MAX_AVATAR_SIZE = 5 << 20

// GetAllUsers lists every active identity as its public projection
func GetAllUsers(c *fiber.Ctx) error {

	identities, err := global.Identities.Find(global.Context, store.IdentityFilter{})
	if err != nil {
		return errors.HandleInternalError(c, "identities", err.Error())
	}

	users := make([]schemas.PublicIdentitySchema, 0, len(identities))
	for i := range identities {
		users = append(users, schemas.PublicIdentity(&identities[i]))
	}

	return c.JSON(struct {
		Results int
		Users   []schemas.PublicIdentitySchema
	}{
		Results: len(users),
		Users:   users,
	})
}

// GetMe returns the caller's own public projection
func GetMe(c *fiber.Ctx) error {

	userID := c.Locals("userid").(string)

	identity, err := global.Identities.FindByID(global.Context, userID)
	if err != nil {
		if err == store.ErrNotFound {
			return errors.HandleNotFoundError(c, "User")
		}
		return errors.HandleInternalError(c, "identities", err.Error())
	}

	return c.JSON(schemas.PublicIdentity(identity))
}

// UpdateMe updates profile fields; password changes go through the reset flow
func UpdateMe(c *fiber.Ctx) error {

	userID := c.Locals("userid").(string)

	if jsoniter.Get(c.Body(), "Password").ToString() != "" ||
		jsoniter.Get(c.Body(), "PasswordConfirm").ToString() != "" {
		return errors.HandleBadRequestError(c, "Password", "not updatable here")
	}

	req := new(schemas.UpdateProfileSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	identity, err := global.Identities.FindByID(global.Context, userID)
	if err != nil {
		if err == store.ErrNotFound {
			return errors.HandleNotFoundError(c, "User")
		}
		return errors.HandleInternalError(c, "identities", err.Error())
	}

	if req.Name != "" {
		identity.Name = req.Name
	}
	if req.Email != "" {
		identity.Email = strings.ToLower(req.Email)
	}

	if err = global.Identities.Save(global.Context, identity); err != nil {
		return errors.HandleInternalError(c, "identities", err.Error())
	}

	return c.JSON(schemas.PublicIdentity(identity))
}

// UpdateAvatar stores the uploaded image and points the identity at it
func UpdateAvatar(c *fiber.Ctx) error {

	userID := c.Locals("userid").(string)

	file, err := c.FormFile("avatar")
	if err != nil {
		return errors.HandleBadRequestError(c, "Avatar", "missing")
	}
	if file.Size > MAX_AVATAR_SIZE {
		return errors.HandleBadRequestError(c, "Avatar", "too large")
	}

	identity, err := global.Identities.FindByID(global.Context, userID)
	if err != nil {
		if err == store.ErrNotFound {
			return errors.HandleNotFoundError(c, "User")
		}
		return errors.HandleInternalError(c, "identities", err.Error())
	}

	src, err := file.Open()
	if err != nil {
		return errors.HandleInternalError(c, "avatar_open", err.Error())
	}
	defer src.Close()

	_, err = global.MinIOClient.PutObject(global.Context, "avatars", userID, src, file.Size, minio.PutObjectOptions{
		ContentType: file.Header.Get("Content-Type"),
	})
	if err != nil {
		return errors.HandleInternalError(c, "avatar_put", "MinIO: "+err.Error())
	}

	identity.ImageURL = config.Config.MinIO.PublicURL + "/avatars/" + userID

	if err = global.Identities.Save(global.Context, identity); err != nil {
		return errors.HandleInternalError(c, "identities", err.Error())
	}

	return c.JSON(schemas.PublicIdentity(identity))
}

// DeleteMe soft deletes the caller; the record stays for request history
func DeleteMe(c *fiber.Ctx) error {

	userID := c.Locals("userid").(string)

	identity, err := global.Identities.FindByID(global.Context, userID)
	if err != nil {
		if err == store.ErrNotFound {
			return errors.HandleNotFoundError(c, "User")
		}
		return errors.HandleInternalError(c, "identities", err.Error())
	}

	identity.Active = false

	if err = global.Identities.Save(global.Context, identity); err != nil {
		return errors.HandleInternalError(c, "identities", err.Error())
	}

	return c.SendStatus(fiber.StatusNoContent)
}
