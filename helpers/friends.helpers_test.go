package helpers

import (
	"testing"
	"time"

	"dostfrnd_server/config"
	"dostfrnd_server/global"
	"dostfrnd_server/schemas"
)

func acceptedRecord(t *testing.T, id string, senderID string, recipientID string) {
	t.Helper()
	err := global.Requests.Insert(global.Context, &schemas.FriendRequest{
		ID:          id,
		SenderID:    senderID,
		RecipientID: recipientID,
		Status:      schemas.RequestAccepted,
		Created:     time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("insert accepted record %s: %v", id, err)
	}
}

func TestFriendsListWithSelf(t *testing.T) {
	resetStores()
	config.Config.Friends.IncludeSelf = true
	seedIdentity(t, "alice", "Alice", "alice@test.dev", "QA")
	seedIdentity(t, "bob", "Bob", "bob@test.dev", "QA")
	acceptedRecord(t, "r1", "alice", "bob")

	friends, err := FriendsList(global.Context, "alice")
	if err != nil {
		t.Fatalf("friends list: %v", err)
	}
	if len(friends) != 2 {
		t.Fatalf("friends = %d entries, want 2", len(friends))
	}
	if friends[0].UserID != "bob" || friends[1].UserID != "alice" {
		t.Fatalf("friends order = [%s %s], want [bob alice]", friends[0].UserID, friends[1].UserID)
	}
}

func TestFriendsListWithoutSelf(t *testing.T) {
	resetStores()
	config.Config.Friends.IncludeSelf = false
	seedIdentity(t, "alice", "Alice", "alice@test.dev", "QA")
	seedIdentity(t, "bob", "Bob", "bob@test.dev", "QA")
	acceptedRecord(t, "r1", "alice", "bob")

	friends, err := FriendsList(global.Context, "alice")
	if err != nil {
		t.Fatalf("friends list: %v", err)
	}
	if len(friends) != 1 || friends[0].UserID != "bob" {
		t.Fatalf("friends = %v, want just bob", friends)
	}
}

func TestFriendsListDeduplicates(t *testing.T) {
	resetStores()
	config.Config.Friends.IncludeSelf = true
	seedIdentity(t, "alice", "Alice", "alice@test.dev", "QA")
	seedIdentity(t, "bob", "Bob", "bob@test.dev", "QA")

	// Two ledger records for the same pair still yield one entry.
	acceptedRecord(t, "r1", "alice", "bob")
	acceptedRecord(t, "r2", "bob", "alice")

	friends, err := FriendsList(global.Context, "alice")
	if err != nil {
		t.Fatalf("friends list: %v", err)
	}
	if len(friends) != 2 {
		t.Fatalf("friends = %d entries, want 2 (bob once, then self)", len(friends))
	}
	if friends[0].UserID != "bob" || friends[1].UserID != "alice" {
		t.Fatalf("friends = [%s %s], want [bob alice]", friends[0].UserID, friends[1].UserID)
	}
}

func TestFriendsListSkipsUnresolvable(t *testing.T) {
	resetStores()
	config.Config.Friends.IncludeSelf = false
	seedIdentity(t, "alice", "Alice", "alice@test.dev", "QA")
	seedIdentity(t, "bob", "Bob", "bob@test.dev", "QA")
	acceptedRecord(t, "r1", "alice", "bob")
	acceptedRecord(t, "r2", "ghost", "alice")

	friends, err := FriendsList(global.Context, "alice")
	if err != nil {
		t.Fatalf("friends list: %v", err)
	}
	if len(friends) != 1 || friends[0].UserID != "bob" {
		t.Fatalf("friends = %v, want just bob", friends)
	}
}

func TestFriendsCountByCategory(t *testing.T) {
	resetStores()
	seedIdentity(t, "alice", "Alice", "alice@test.dev", "QA")
	seedIdentity(t, "bob", "Bob", "bob@test.dev", "QA")
	seedIdentity(t, "carol", "Carol", "carol@test.dev", "Data Scientist")
	acceptedRecord(t, "r1", "alice", "bob")
	acceptedRecord(t, "r2", "alice", "carol")

	counts, err := FriendsCountByCategory(global.Context)
	if err != nil {
		t.Fatalf("counts: %v", err)
	}

	if len(counts) != len(schemas.Titles) {
		t.Fatalf("counts has %d buckets, want %d", len(counts), len(schemas.Titles))
	}
	for _, title := range schemas.Titles {
		if _, ok := counts[title]; !ok {
			t.Fatalf("bucket %q missing", title)
		}
	}

	// alice and bob share QA: two distinct identities, one friendship.
	if counts["QA"] != 2 {
		t.Fatalf("QA = %d, want 2", counts["QA"])
	}
	if counts["Data Scientist"] != 1 {
		t.Fatalf("Data Scientist = %d, want 1", counts["Data Scientist"])
	}
	if counts["Cloud Engineer"] != 0 {
		t.Fatalf("Cloud Engineer = %d, want 0", counts["Cloud Engineer"])
	}
}

func TestFriendsCountSkipsUnresolvablePairs(t *testing.T) {
	resetStores()
	seedIdentity(t, "alice", "Alice", "alice@test.dev", "QA")
	acceptedRecord(t, "r1", "alice", "ghost")

	counts, err := FriendsCountByCategory(global.Context)
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if counts["QA"] != 0 {
		t.Fatalf("QA = %d, want 0 (pair with unresolvable party is skipped)", counts["QA"])
	}
}

func TestFriendsCountUnknownCategory(t *testing.T) {
	resetStores()
	seedIdentity(t, "alice", "Alice", "alice@test.dev", "QA")
	seedIdentity(t, "wanda", "Wanda", "wanda@test.dev", "Wizard")
	acceptedRecord(t, "r1", "alice", "wanda")

	if _, err := FriendsCountByCategory(global.Context); err != ErrInvalidCategory {
		t.Fatalf("err = %v, want ErrInvalidCategory", err)
	}
}
