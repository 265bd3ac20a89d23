package store

import (
	"context"
	"errors"
	"strings"

	"dostfrnd_server/schemas"
)

// ErrNotFound is returned when a referenced identity, request or message is absent
var ErrNotFound = errors.New("store: not found")

// IdentityFilter narrows Find; zero value matches every active identity
type IdentityFilter struct {
	Title string
}

// IdentityStore is the collaborator contract for the user records.
// Soft-deleted identities (Active == false) are invisible to every lookup.
type IdentityStore interface {
	FindByID(ctx context.Context, id string) (*schemas.Identity, error)
	FindByEmail(ctx context.Context, email string) (*schemas.Identity, error)
	Find(ctx context.Context, filter IdentityFilter) ([]schemas.Identity, error)
	Save(ctx context.Context, identity *schemas.Identity) error
}

// RequestStore owns the friend-request ledger
type RequestStore interface {
	Insert(ctx context.Context, req *schemas.FriendRequest) error
	Save(ctx context.Context, req *schemas.FriendRequest) error
	// FindDirected returns the record sent by senderID to recipientID, any status.
	FindDirected(ctx context.Context, senderID string, recipientID string) (*schemas.FriendRequest, error)
	// ExistsBetween reports whether any record exists for the unordered pair.
	ExistsBetween(ctx context.Context, a string, b string) (bool, error)
	FindByRecipient(ctx context.Context, recipientID string) ([]schemas.FriendRequest, error)
	FindAcceptedInvolving(ctx context.Context, id string) ([]schemas.FriendRequest, error)
	FindAccepted(ctx context.Context) ([]schemas.FriendRequest, error)
}

// MessageStore owns the durable chat log
type MessageStore interface {
	Insert(ctx context.Context, msg *schemas.ChatMessage) error
	// History returns every message between the pair in either direction,
	// ordered by Created ascending.
	History(ctx context.Context, a string, b string) ([]schemas.ChatMessage, error)
	// FindMessage addresses by messageID when non-empty, otherwise by the
	// first exact (sender, receiver, content) match.
	FindMessage(ctx context.Context, senderID string, receiverID string, messageID string, content string) (*schemas.ChatMessage, error)
	Update(ctx context.Context, msg *schemas.ChatMessage) error
	Delete(ctx context.Context, msg *schemas.ChatMessage) error
}

// ConversationKey derives the storage partition key for a pair of identities.
// Sorted so both directions of a conversation land in one partition; this key
// never reaches clients and is unrelated to the relay room keys.
func ConversationKey(a string, b string) string {
	if strings.Compare(a, b) > 0 {
		a, b = b, a
	}
	return a + ":" + b
}
