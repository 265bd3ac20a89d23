package helpers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"dostfrnd_server/config"
	"dostfrnd_server/errors"
	"dostfrnd_server/global"
	"dostfrnd_server/schemas"
	"dostfrnd_server/store"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt"
)

// GenerateJWT generates a jwt token with a claim
func GenerateJWT(c *fiber.Ctx, userID string) (string, error) {
	user := jwt.MapClaims{}
	user["id"] = userID
	user["exp"] = time.Now().Add(global.AccessTokenDuration).Unix()
	jt := jwt.NewWithClaims(jwt.SigningMethodHS256, user)
	token, err := jt.SignedString([]byte(config.Config.JWTSecret))
	if err != nil {
		return "", errors.HandleInternalError(c, "jwt", "jwt: "+err.Error())
	}
	return token, nil
}

// ParseJWT parses a jwt to userID; returns "expired" for stale tokens
func ParseJWT(c *fiber.Ctx, jwtString string) (string, error) {
	token, err := jwt.Parse(jwtString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.Config.JWTSecret), nil
	})
	if err != nil {
		if validationErr, ok := err.(*jwt.ValidationError); ok && validationErr.Errors == jwt.ValidationErrorExpired {
			return "expired", nil
		}
		return "", errors.HandleUnauthorizedError(c)
	}
	user, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.HandleUnauthorizedError(c)
	}
	return user["id"].(string), nil
}

// GenerateAndRefreshTokens generates and interacts with redis to store tokens and then sets response headers
func GenerateAndRefreshTokens(c *fiber.Ctx, userID string, sessionID string, delExistingRecord bool) error {

	var tokens schemas.TokensSchema
	redisError := false

	_, err := global.RedisClient.Pipelined(global.Context, func(pipe redis.Pipeliner) error {

		var err error

		if delExistingRecord {
			err = pipe.Del(global.Context, "refreshtokens:"+sessionID).Err()
			if err != nil {
				redisError = true
				return errors.HandleInternalError(c, "refresh_tokens", "Redis: "+err.Error())
			}
			redisError = true
			return errors.HandleInvalidRequestError(c, "RefreshToken", "invalid")
		}

		tokens.RefreshToken.Token, err = RandomTokenString(40)
		if err != nil {
			redisError = true
			return errors.HandleInternalError(c, "refresh_token", "hex token error")
		}

		tokens.RefreshToken.ExpireAt = time.Now().UTC().Add(global.RefreshTokenDuration).Unix()

		query := map[string]interface{}{
			"token":  tokens.RefreshToken.Token,
			"userid": userID,
			"ip":     c.IP(),
		}

		err = pipe.HSet(global.Context, "refreshtokens:"+sessionID, query).Err()
		if err != nil {
			redisError = true
			return errors.HandleInternalError(c, "set_refresh_tokens", "Redis: "+err.Error())
		}
		err = pipe.Expire(global.Context, "refreshtokens:"+sessionID, global.RefreshTokenDuration).Err()
		if err != nil {
			redisError = true
			return errors.HandleInternalError(c, "expire_refresh_tokens", "Redis: "+err.Error())
		}

		tokens.AccessToken, err = GenerateJWT(c, userID)
		if tokens.AccessToken == "" {
			redisError = true
			return err
		}

		return nil
	})

	if err != nil && !redisError {
		return errors.HandleInternalError(c, "pipeline", "Redis: "+err.Error())
	}
	if redisError {
		return err
	}

	c.Response().Header.Add("x-refreshed", "true")
	c.Response().Header.Add("x-refresh-token", tokens.RefreshToken.Token)
	c.Response().Header.Add("x-refresh-token-expire", fmt.Sprint(tokens.RefreshToken.ExpireAt))
	c.Response().Header.Add("x-access-token", tokens.AccessToken)
	return nil
}

func hashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// CreatePasswordResetToken stores the hashed token in redis with a short TTL
// and returns the raw token for the reset email
func CreatePasswordResetToken(ctx context.Context, userID string) (string, error) {

	token, err := RandomTokenString(32)
	if err != nil {
		return "", err
	}

	key := "resetpw:" + hashResetToken(token)
	_, err = global.RedisClient.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		if err := pipe.HSet(ctx, key, "userid", userID).Err(); err != nil {
			return err
		}
		return pipe.Expire(ctx, key, global.ResetTokenDuration).Err()
	})
	if err != nil {
		return "", err
	}

	return token, nil
}

// LookupPasswordResetToken resolves a raw reset token to the stored userID
func LookupPasswordResetToken(ctx context.Context, token string) (string, error) {
	userID, err := global.RedisClient.HGet(ctx, "resetpw:"+hashResetToken(token), "userid").Result()
	if err != nil {
		if err == redis.Nil {
			return "", store.ErrNotFound
		}
		return "", err
	}
	return userID, nil
}

// DeletePasswordResetToken removes a reset token, consumed or abandoned
func DeletePasswordResetToken(ctx context.Context, token string) error {
	return global.RedisClient.Del(ctx, "resetpw:"+hashResetToken(token)).Err()
}
