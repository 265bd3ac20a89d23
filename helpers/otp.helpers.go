package helpers

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"dostfrnd_server/global"

	"github.com/go-redis/redis/v8"
)

// CreateOTPCode stores a fresh 6-digit code for the phone number with a
// short TTL and returns it for delivery
func CreateOTPCode(ctx context.Context, phone string) (string, error) {

	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	code := fmt.Sprint(n.Int64() + 100000)

	key := "otp:" + phone
	_, err = global.RedisClient.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		if err := pipe.HSet(ctx, key, "code", code).Err(); err != nil {
			return err
		}
		return pipe.Expire(ctx, key, global.OTPDuration).Err()
	})
	if err != nil {
		return "", err
	}

	return code, nil
}

// VerifyOTPCode compares the presented code with the stored one and consumes
// it on success. Expired or absent codes verify as false.
func VerifyOTPCode(ctx context.Context, phone string, code string) (bool, error) {

	stored, err := global.RedisClient.HGet(ctx, "otp:"+phone, "code").Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}

	if stored != code {
		return false, nil
	}

	if err = global.RedisClient.Del(ctx, "otp:"+phone).Err(); err != nil {
		return false, err
	}
	return true, nil
}
