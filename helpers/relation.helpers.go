package helpers

import (
	"context"
	Errors "errors"
	"time"

	"dostfrnd_server/global"
	"dostfrnd_server/schemas"
	"dostfrnd_server/store"

	"github.com/aidarkhanov/nanoid/v2"
)

// ErrSelfRequest is returned when an identity targets itself
var ErrSelfRequest = Errors.New("sender and recipient are the same identity")

const validIDChar = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// NewID generates a ledger/identity id
func NewID() (string, error) {
	return nanoid.GenerateString(validIDChar, 14)
}

// SendFriendRequest creates a pending request from senderID to recipientID.
// Returns the recipient's name and whether a record for the pair already
// existed; a duplicate send is reported, never an error. The existence check
// covers both directions of the pair.
func SendFriendRequest(ctx context.Context, senderID string, recipientID string) (string, bool, error) {

	if senderID == recipientID {
		return "", false, ErrSelfRequest
	}

	recipient, err := global.Identities.FindByID(ctx, recipientID)
	if err != nil {
		return "", false, err
	}

	exists, err := global.Requests.ExistsBetween(ctx, senderID, recipientID)
	if err != nil {
		return "", false, err
	}
	if exists {
		return recipient.Name, true, nil
	}

	id, err := NewID()
	if err != nil {
		return "", false, err
	}

	err = global.Requests.Insert(ctx, &schemas.FriendRequest{
		ID:          id,
		SenderID:    senderID,
		RecipientID: recipientID,
		Status:      schemas.RequestPending,
		Created:     time.Now().UTC(),
	})
	if err != nil {
		return "", false, err
	}

	return recipient.Name, false, nil
}

// AcceptFriendRequest transitions the request sent by senderID to recipientID
// to accepted. Re-accepting an accepted request just re-saves it.
func AcceptFriendRequest(ctx context.Context, recipientID string, senderID string) error {

	req, err := global.Requests.FindDirected(ctx, senderID, recipientID)
	if err != nil {
		return err
	}

	req.Status = schemas.RequestAccepted
	return global.Requests.Save(ctx, req)
}

// IncomingRequests returns the requests addressed to recipientID enriched
// with sender attributes. Senders that no longer resolve and senders the
// recipient has rejected are skipped.
func IncomingRequests(ctx context.Context, recipientID string) ([]schemas.IncomingRequestSchema, error) {

	current, err := global.Identities.FindByID(ctx, recipientID)
	if err != nil {
		return nil, err
	}

	requests, err := global.Requests.FindByRecipient(ctx, recipientID)
	if err != nil {
		return nil, err
	}

	incoming := []schemas.IncomingRequestSchema{}
	for i := range requests {
		sender, err := global.Identities.FindByID(ctx, requests[i].SenderID)
		if err != nil {
			if err == store.ErrNotFound {
				continue
			}
			return nil, err
		}
		if current.Rejected(sender.ID) {
			continue
		}
		incoming = append(incoming, schemas.IncomingRequestSchema{
			RequestID: requests[i].ID,
			Status:    requests[i].Status,
			Created:   requests[i].Created.UnixMilli(),
			Sender:    identitySummary(sender),
		})
	}

	return incoming, nil
}

// RejectOrDismiss appends targetID to currentID's rejected set. Used both to
// dismiss a suggestion and to decline a pending request; the ledger record,
// if any, is left untouched. Re-adding an existing member is a no-op.
func RejectOrDismiss(ctx context.Context, currentID string, targetID string) error {

	if _, err := global.Identities.FindByID(ctx, targetID); err != nil {
		return err
	}

	current, err := global.Identities.FindByID(ctx, currentID)
	if err != nil {
		return err
	}

	if current.Rejected(targetID) {
		return nil
	}

	current.RejectedUsers = append(current.RejectedUsers, targetID)
	return global.Identities.Save(ctx, current)
}
