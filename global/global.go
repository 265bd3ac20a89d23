package global

import (
	"context"
	"log"
	"time"

	"dostfrnd_server/store"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/gocql/gocql"
	minio "github.com/minio/minio-go/v7"
	"go.mongodb.org/mongo-driver/mongo"
)

// InternalLogger for errors that should never happen in normal circumstances
var InternalLogger *log.Logger

// MonitorLogger for expected problems worth watching
var MonitorLogger *log.Logger

// Session for global cassandra cql session
var Session *gocql.Session

// MongoClient for global document store access
var MongoClient *mongo.Client

// RedisClient for global redis queries
var RedisClient *redis.Client

// MinIOClient for global min io access
var MinIOClient *minio.Client

// Identities is the identity store collaborator
var Identities store.IdentityStore

// Requests is the friend-request ledger
var Requests store.RequestStore

// Messages is the durable chat log
var Messages store.MessageStore

// AccessTokenDuration determines the length of an access token
var AccessTokenDuration time.Duration = time.Hour

// RefreshTokenDuration determines the length of a refresh token (60 days)
var RefreshTokenDuration time.Duration = time.Hour * 24 * 60

// ResetTokenDuration determines the length of a password-reset token
var ResetTokenDuration time.Duration = time.Minute * 10

// OTPDuration determines the length of a phone verification code
var OTPDuration time.Duration = time.Minute * 10

// Context is the default context
var Context = context.Background()

// Validator validates incoming bodys of data
var Validator = validator.New()
