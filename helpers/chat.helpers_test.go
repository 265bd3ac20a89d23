package helpers

import (
	"testing"
	"time"

	"dostfrnd_server/global"
	"dostfrnd_server/schemas"
	"dostfrnd_server/store"
)

func seedMessage(t *testing.T, id string, senderID string, receiverID string, body string, created time.Time) {
	t.Helper()
	err := global.Messages.Insert(global.Context, &schemas.ChatMessage{
		MessageID:  id,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Message:    body,
		Created:    created,
	})
	if err != nil {
		t.Fatalf("insert message %s: %v", id, err)
	}
}

func TestChatHistoryOrdering(t *testing.T) {
	resetStores()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	seedMessage(t, "m2", "bob", "alice", "hey back", base.Add(time.Minute))
	seedMessage(t, "m1", "alice", "bob", "hey", base)
	seedMessage(t, "m3", "alice", "bob", "how are you", base.Add(2*time.Minute))

	// Both directions land in one conversation, oldest first.
	history, err := ChatHistory(global.Context, "alice", "bob")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("history = %d messages, want 3", len(history))
	}
	for i, want := range []string{"m1", "m2", "m3"} {
		if history[i].MessageID != want {
			t.Fatalf("history[%d] = %s, want %s", i, history[i].MessageID, want)
		}
	}

	// The pair is unordered: either party asks and gets the same view.
	reversed, err := ChatHistory(global.Context, "bob", "alice")
	if err != nil {
		t.Fatalf("reversed history: %v", err)
	}
	if len(reversed) != 3 {
		t.Fatalf("reversed history = %d messages, want 3", len(reversed))
	}
}

func TestEditChatMessageByContent(t *testing.T) {
	resetStores()
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seedMessage(t, "m1", "alice", "bob", "helo", created)

	msg, err := EditChatMessage(global.Context, "alice", "bob", "", "helo", "hello")
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if msg.Message != "hello" {
		t.Fatalf("message = %q, want hello", msg.Message)
	}
	if msg.MessageID != "m1" || !msg.Created.Equal(created) {
		t.Fatalf("identity changed: id=%s created=%v", msg.MessageID, msg.Created)
	}

	history, err := ChatHistory(global.Context, "alice", "bob")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 || history[0].Message != "hello" {
		t.Fatalf("stored history = %v, want single edited message", history)
	}
}

func TestEditChatMessageByID(t *testing.T) {
	resetStores()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seedMessage(t, "m1", "alice", "bob", "same", base)
	seedMessage(t, "m2", "alice", "bob", "same", base.Add(time.Minute))

	// With a messageID the later duplicate can be addressed directly.
	msg, err := EditChatMessage(global.Context, "alice", "bob", "m2", "", "changed")
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if msg.MessageID != "m2" {
		t.Fatalf("edited id = %s, want m2", msg.MessageID)
	}

	history, err := ChatHistory(global.Context, "alice", "bob")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if history[0].Message != "same" || history[1].Message != "changed" {
		t.Fatalf("history bodies = [%q %q], want [same changed]", history[0].Message, history[1].Message)
	}
}

func TestEditChatMessageDirected(t *testing.T) {
	resetStores()
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seedMessage(t, "m1", "alice", "bob", "hey", created)

	// The address is directed: bob cannot edit alice's message.
	if _, err := EditChatMessage(global.Context, "bob", "alice", "", "hey", "hijacked"); err != store.ErrNotFound {
		t.Fatalf("err = %v, want store.ErrNotFound", err)
	}
}

func TestDeleteChatMessageFirstMatch(t *testing.T) {
	resetStores()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seedMessage(t, "m1", "alice", "bob", "same", base)
	seedMessage(t, "m2", "alice", "bob", "same", base.Add(time.Minute))

	// Without a messageID the oldest content match goes.
	if err := DeleteChatMessage(global.Context, "alice", "bob", "", "same"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	history, err := ChatHistory(global.Context, "alice", "bob")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 || history[0].MessageID != "m2" {
		t.Fatalf("history = %v, want just m2", history)
	}
}

func TestDeleteChatMessageNotFound(t *testing.T) {
	resetStores()

	if err := DeleteChatMessage(global.Context, "alice", "bob", "", "nothing"); err != store.ErrNotFound {
		t.Fatalf("err = %v, want store.ErrNotFound", err)
	}
}
