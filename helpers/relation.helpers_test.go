package helpers

import (
	"testing"
	"time"

	"dostfrnd_server/global"
	"dostfrnd_server/schemas"
	"dostfrnd_server/store"
)

func resetStores() {
	global.Identities = store.NewMemoryIdentityStore()
	global.Requests = store.NewMemoryRequestStore()
	global.Messages = store.NewMemoryMessageStore()
}

func seedIdentity(t *testing.T, id string, name string, email string, title string) *schemas.Identity {
	t.Helper()
	identity := &schemas.Identity{
		ID:       id,
		Name:     name,
		Email:    email,
		Title:    title,
		ImageURL: schemas.DefaultImageURL,
		Active:   true,
	}
	if err := global.Identities.Save(global.Context, identity); err != nil {
		t.Fatalf("seed identity %s: %v", id, err)
	}
	return identity
}

func TestSendFriendRequestRecordsOnce(t *testing.T) {
	resetStores()
	seedIdentity(t, "alice", "Alice", "alice@test.dev", "QA")
	seedIdentity(t, "bob", "Bob", "bob@test.dev", "QA")

	name, already, err := SendFriendRequest(global.Context, "alice", "bob")
	if err != nil {
		t.Fatalf("first send: %v", err)
	}
	if already {
		t.Fatalf("first send reported as duplicate")
	}
	if name != "Bob" {
		t.Fatalf("recipient name = %q, want Bob", name)
	}

	_, already, err = SendFriendRequest(global.Context, "alice", "bob")
	if err != nil {
		t.Fatalf("duplicate send: %v", err)
	}
	if !already {
		t.Fatalf("duplicate send not reported")
	}

	// The pair check is unordered: the reverse direction is also a duplicate.
	_, already, err = SendFriendRequest(global.Context, "bob", "alice")
	if err != nil {
		t.Fatalf("reverse send: %v", err)
	}
	if !already {
		t.Fatalf("reverse send not reported as duplicate")
	}

	requests, err := global.Requests.FindByRecipient(global.Context, "bob")
	if err != nil {
		t.Fatalf("find by recipient: %v", err)
	}
	if len(requests) != 1 {
		t.Fatalf("ledger records = %d, want 1", len(requests))
	}
	if requests[0].Status != schemas.RequestPending {
		t.Fatalf("status = %q, want pending", requests[0].Status)
	}
}

func TestSendFriendRequestToSelf(t *testing.T) {
	resetStores()
	seedIdentity(t, "alice", "Alice", "alice@test.dev", "QA")

	if _, _, err := SendFriendRequest(global.Context, "alice", "alice"); err != ErrSelfRequest {
		t.Fatalf("err = %v, want ErrSelfRequest", err)
	}
}

func TestSendFriendRequestUnknownRecipient(t *testing.T) {
	resetStores()
	seedIdentity(t, "alice", "Alice", "alice@test.dev", "QA")

	if _, _, err := SendFriendRequest(global.Context, "alice", "ghost"); err != store.ErrNotFound {
		t.Fatalf("err = %v, want store.ErrNotFound", err)
	}
}

func TestAcceptFriendRequest(t *testing.T) {
	resetStores()
	seedIdentity(t, "alice", "Alice", "alice@test.dev", "QA")
	seedIdentity(t, "bob", "Bob", "bob@test.dev", "QA")

	if _, _, err := SendFriendRequest(global.Context, "alice", "bob"); err != nil {
		t.Fatalf("send: %v", err)
	}

	if err := AcceptFriendRequest(global.Context, "bob", "alice"); err != nil {
		t.Fatalf("accept: %v", err)
	}

	req, err := global.Requests.FindDirected(global.Context, "alice", "bob")
	if err != nil {
		t.Fatalf("find directed: %v", err)
	}
	if req.Status != schemas.RequestAccepted {
		t.Fatalf("status = %q, want accepted", req.Status)
	}

	// Re-accepting is a no-op, not an error.
	if err := AcceptFriendRequest(global.Context, "bob", "alice"); err != nil {
		t.Fatalf("re-accept: %v", err)
	}
}

func TestAcceptFriendRequestWithoutRecord(t *testing.T) {
	resetStores()
	seedIdentity(t, "alice", "Alice", "alice@test.dev", "QA")
	seedIdentity(t, "bob", "Bob", "bob@test.dev", "QA")

	if err := AcceptFriendRequest(global.Context, "bob", "alice"); err != store.ErrNotFound {
		t.Fatalf("err = %v, want store.ErrNotFound", err)
	}
}

func TestIncomingRequestsFiltered(t *testing.T) {
	resetStores()
	seedIdentity(t, "alice", "Alice", "alice@test.dev", "QA")
	seedIdentity(t, "bob", "Bob", "bob@test.dev", "QA")
	seedIdentity(t, "carol", "Carol", "carol@test.dev", "QA")

	if _, _, err := SendFriendRequest(global.Context, "alice", "bob"); err != nil {
		t.Fatalf("send alice: %v", err)
	}
	if _, _, err := SendFriendRequest(global.Context, "carol", "bob"); err != nil {
		t.Fatalf("send carol: %v", err)
	}

	// A request whose sender no longer resolves must be skipped, not fail
	// the whole listing.
	err := global.Requests.Insert(global.Context, &schemas.FriendRequest{
		ID:          "orphaned",
		SenderID:    "ghost",
		RecipientID: "bob",
		Status:      schemas.RequestPending,
		Created:     time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("insert orphan: %v", err)
	}

	if err := RejectOrDismiss(global.Context, "bob", "alice"); err != nil {
		t.Fatalf("reject: %v", err)
	}

	incoming, err := IncomingRequests(global.Context, "bob")
	if err != nil {
		t.Fatalf("incoming: %v", err)
	}
	if len(incoming) != 1 {
		t.Fatalf("incoming = %d entries, want 1", len(incoming))
	}
	if incoming[0].Sender.UserID != "carol" {
		t.Fatalf("sender = %q, want carol", incoming[0].Sender.UserID)
	}
	if incoming[0].Status != schemas.RequestPending {
		t.Fatalf("status = %q, want pending", incoming[0].Status)
	}
}

func TestRejectOrDismissIdempotent(t *testing.T) {
	resetStores()
	seedIdentity(t, "alice", "Alice", "alice@test.dev", "QA")
	seedIdentity(t, "bob", "Bob", "bob@test.dev", "QA")

	if err := RejectOrDismiss(global.Context, "alice", "bob"); err != nil {
		t.Fatalf("first dismiss: %v", err)
	}
	if err := RejectOrDismiss(global.Context, "alice", "bob"); err != nil {
		t.Fatalf("second dismiss: %v", err)
	}

	alice, err := global.Identities.FindByID(global.Context, "alice")
	if err != nil {
		t.Fatalf("find alice: %v", err)
	}
	if len(alice.RejectedUsers) != 1 {
		t.Fatalf("rejected set = %d entries, want 1", len(alice.RejectedUsers))
	}

	// Rejection is one-way: bob's set is untouched.
	bob, err := global.Identities.FindByID(global.Context, "bob")
	if err != nil {
		t.Fatalf("find bob: %v", err)
	}
	if len(bob.RejectedUsers) != 0 {
		t.Fatalf("bob rejected set = %d entries, want 0", len(bob.RejectedUsers))
	}
}

func TestRejectOrDismissUnknownTarget(t *testing.T) {
	resetStores()
	seedIdentity(t, "alice", "Alice", "alice@test.dev", "QA")

	if err := RejectOrDismiss(global.Context, "alice", "ghost"); err != store.ErrNotFound {
		t.Fatalf("err = %v, want store.ErrNotFound", err)
	}
}
