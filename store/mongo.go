package store

import (
	"context"

	"dostfrnd_server/schemas"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// notDeleted mirrors the soft-delete guard applied to every identity lookup
var notDeleted = bson.M{"$ne": false}

// MongoIdentityStore implements IdentityStore on the identities collection
type MongoIdentityStore struct {
	coll *mongo.Collection
}

// NewMongoIdentityStore binds the store to db.identities
func NewMongoIdentityStore(db *mongo.Database) *MongoIdentityStore {
	return &MongoIdentityStore{coll: db.Collection("identities")}
}

// EnsureIndexes creates the unique email index
func (s *MongoIdentityStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (s *MongoIdentityStore) FindByID(ctx context.Context, id string) (*schemas.Identity, error) {
	return s.findOne(ctx, bson.M{"_id": id, "active": notDeleted})
}

func (s *MongoIdentityStore) FindByEmail(ctx context.Context, email string) (*schemas.Identity, error) {
	return s.findOne(ctx, bson.M{"email": email, "active": notDeleted})
}

func (s *MongoIdentityStore) findOne(ctx context.Context, filter bson.M) (*schemas.Identity, error) {
	identity := new(schemas.Identity)
	err := s.coll.FindOne(ctx, filter).Decode(identity)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return identity, nil
}

func (s *MongoIdentityStore) Find(ctx context.Context, filter IdentityFilter) ([]schemas.Identity, error) {
	query := bson.M{"active": notDeleted}
	if filter.Title != "" {
		query["title"] = filter.Title
	}

	cursor, err := s.coll.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var identities []schemas.Identity
	if err = cursor.All(ctx, &identities); err != nil {
		return nil, err
	}
	return identities, nil
}

func (s *MongoIdentityStore) Save(ctx context.Context, identity *schemas.Identity) error {
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": identity.ID}, identity, options.Replace().SetUpsert(true))
	return err
}

// MongoRequestStore implements RequestStore on the friend_requests collection
type MongoRequestStore struct {
	coll *mongo.Collection
}

// NewMongoRequestStore binds the store to db.friend_requests
func NewMongoRequestStore(db *mongo.Database) *MongoRequestStore {
	return &MongoRequestStore{coll: db.Collection("friend_requests")}
}

// EnsureIndexes creates the directed-pair lookup index
func (s *MongoRequestStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "sender_id", Value: 1}, {Key: "recipient_id", Value: 1}},
	})
	return err
}

func (s *MongoRequestStore) Insert(ctx context.Context, req *schemas.FriendRequest) error {
	_, err := s.coll.InsertOne(ctx, req)
	return err
}

func (s *MongoRequestStore) Save(ctx context.Context, req *schemas.FriendRequest) error {
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": req.ID}, req, options.Replace().SetUpsert(true))
	return err
}

func (s *MongoRequestStore) FindDirected(ctx context.Context, senderID string, recipientID string) (*schemas.FriendRequest, error) {
	req := new(schemas.FriendRequest)
	err := s.coll.FindOne(ctx, bson.M{"sender_id": senderID, "recipient_id": recipientID}).Decode(req)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return req, nil
}

func (s *MongoRequestStore) ExistsBetween(ctx context.Context, a string, b string) (bool, error) {
	count, err := s.coll.CountDocuments(ctx, bson.M{"$or": bson.A{
		bson.M{"sender_id": a, "recipient_id": b},
		bson.M{"sender_id": b, "recipient_id": a},
	}})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *MongoRequestStore) FindByRecipient(ctx context.Context, recipientID string) ([]schemas.FriendRequest, error) {
	return s.find(ctx, bson.M{"recipient_id": recipientID})
}

func (s *MongoRequestStore) FindAcceptedInvolving(ctx context.Context, id string) ([]schemas.FriendRequest, error) {
	return s.find(ctx, bson.M{
		"status": schemas.RequestAccepted,
		"$or":    bson.A{bson.M{"sender_id": id}, bson.M{"recipient_id": id}},
	})
}

func (s *MongoRequestStore) FindAccepted(ctx context.Context) ([]schemas.FriendRequest, error) {
	return s.find(ctx, bson.M{"status": schemas.RequestAccepted})
}

func (s *MongoRequestStore) find(ctx context.Context, query bson.M) ([]schemas.FriendRequest, error) {
	cursor, err := s.coll.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var requests []schemas.FriendRequest
	if err = cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}
