package schemas

import "time"

// Friend request status values; the only transition is pending -> accepted.
// Declining never touches the record, it only grows the caller's rejected set.
const (
	RequestPending  = "pending"
	RequestAccepted = "accepted"
)

// FriendRequest struct is the stored connection-proposal record
type FriendRequest struct {
	ID          string    `bson:"_id"`
	SenderID    string    `bson:"sender_id"`
	RecipientID string    `bson:"recipient_id"`
	Status      string    `bson:"status"`
	Created     time.Time `bson:"created"`
}

// Involves reports whether id is either party of the request
func (r *FriendRequest) Involves(id string) bool {
	return r.SenderID == id || r.RecipientID == id
}

// Other returns the counterpart of id on the request
func (r *FriendRequest) Other(id string) string {
	if r.SenderID == id {
		return r.RecipientID
	}
	return r.SenderID
}

// FriendSummarySchema is one flat friends-list entry
type FriendSummarySchema struct {
	Name     string
	Email    string
	ImageURL string
	Title    string
	UserID   string
}

// IncomingRequestSchema is one pending request enriched with sender attributes
type IncomingRequestSchema struct {
	RequestID string
	Status    string
	Created   int64
	Sender    FriendSummarySchema
}

// TargetUserSchema struct
type TargetUserSchema struct {
	UserID string `validate:"required"`
}

// RequestReportSchema struct
type RequestReportSchema struct {
	Success bool
	Message string
}
