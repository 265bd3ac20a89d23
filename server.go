package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"dostfrnd_server/config"
	"dostfrnd_server/errors"
	"dostfrnd_server/global"
	"dostfrnd_server/routes"
	"dostfrnd_server/socket"
	"dostfrnd_server/store"

	redis "github.com/go-redis/redis/v8"
	"github.com/gocql/gocql"
	fiber "github.com/gofiber/fiber/v2"
	minio "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func init() {
	internalErrorsFile, err := os.OpenFile("internal_errors.txt", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	errors.HandleFatalError(err)

	monitorErrorsFile, err := os.OpenFile("monitor_logs.txt", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	errors.HandleFatalError(err)

	global.InternalLogger = log.New(internalErrorsFile, "", log.LstdFlags)
	global.MonitorLogger = log.New(monitorErrorsFile, "", log.LstdFlags)

	errors.HandleFatalError(socket.InitializeSocketLogger())

	data, err := ioutil.ReadFile("./config.json")
	errors.HandleFatalError(err)

	config.Config.Friends.IncludeSelf = true
	err = json.Unmarshal(data, &config.Config)
	errors.HandleFatalError(err)

	global.MinIOClient, err = minio.New(config.Config.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Config.MinIO.User, config.Config.MinIO.Password, ""),
		Secure: false,
	})
	errors.HandleFatalError(err)

	exists, err := global.MinIOClient.BucketExists(global.Context, "avatars")
	errors.HandleFatalError(err)
	if !exists {
		global.MinIOClient.MakeBucket(global.Context, "avatars", minio.MakeBucketOptions{Region: "us-east-1"})
	}

	global.RedisClient = redis.NewClient(&redis.Options{
		Addr:     config.Config.Redis.Addr,
		Password: config.Config.Redis.Password,
		DB:       config.Config.Redis.DB,
	})

	global.MongoClient, err = mongo.Connect(global.Context, options.Client().ApplyURI(config.Config.Mongo.URI))
	errors.HandleFatalError(err)
	errors.HandleFatalError(global.MongoClient.Ping(global.Context, nil))

	db := global.MongoClient.Database(config.Config.Mongo.Database)

	identities := store.NewMongoIdentityStore(db)
	errors.HandleFatalError(identities.EnsureIndexes(global.Context))

	requests := store.NewMongoRequestStore(db)
	errors.HandleFatalError(requests.EnsureIndexes(global.Context))

	global.Identities = identities
	global.Requests = requests
	fmt.Println("MongoDB initialized")

	cluster := gocql.NewCluster(config.Config.Scylla.Hosts...)
	cluster.Keyspace = config.Config.Scylla.Keyspace
	global.Session, err = cluster.CreateSession()
	errors.HandleFatalError(err)
	fmt.Println("ScyllaDB initialized")
	fmt.Printf("Keyspace: %s\n\n", cluster.Keyspace)

	messages := store.NewScyllaMessageStore(global.Session)
	errors.HandleFatalError(messages.CreateTable(config.Config.Scylla.Keyspace))

	global.Messages = messages
}

func main() {

	defer global.Session.Close()
	defer global.MongoClient.Disconnect(global.Context)

	app := fiber.New()
	defer app.Shutdown()

	routes.SetRoutes(app)

	fmt.Println("Starting server on port: " + config.Config.Port)
	log.Fatal(app.Listen(config.Config.Port))

}
