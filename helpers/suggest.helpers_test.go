package helpers

import (
	"testing"

	"dostfrnd_server/global"
	"dostfrnd_server/store"
)

func TestSuggestIdentitiesSharedTitle(t *testing.T) {
	resetStores()
	seedIdentity(t, "alice", "Alice", "alice@test.dev", "QA")
	seedIdentity(t, "bob", "Bob", "bob@test.dev", "QA")
	seedIdentity(t, "carol", "Carol", "carol@test.dev", "Data Scientist")

	suggested, err := SuggestIdentities(global.Context, "alice")
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if len(suggested) != 1 {
		t.Fatalf("suggested = %d entries, want 1", len(suggested))
	}
	if suggested[0].UserID != "bob" {
		t.Fatalf("suggested = %q, want bob", suggested[0].UserID)
	}
}

func TestSuggestIdentitiesExcludesRejected(t *testing.T) {
	resetStores()
	seedIdentity(t, "alice", "Alice", "alice@test.dev", "QA")
	seedIdentity(t, "bob", "Bob", "bob@test.dev", "QA")

	if err := RejectOrDismiss(global.Context, "alice", "bob"); err != nil {
		t.Fatalf("dismiss: %v", err)
	}

	suggested, err := SuggestIdentities(global.Context, "alice")
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if len(suggested) != 0 {
		t.Fatalf("suggested = %d entries, want 0", len(suggested))
	}

	// One-way: alice still shows up for bob.
	suggested, err = SuggestIdentities(global.Context, "bob")
	if err != nil {
		t.Fatalf("suggest bob: %v", err)
	}
	if len(suggested) != 1 || suggested[0].UserID != "alice" {
		t.Fatalf("bob's suggestions = %v, want just alice", suggested)
	}
}

func TestSuggestIdentitiesUnknownCaller(t *testing.T) {
	resetStores()

	if _, err := SuggestIdentities(global.Context, "ghost"); err != store.ErrNotFound {
		t.Fatalf("err = %v, want store.ErrNotFound", err)
	}
}
