package store

import (
	"context"
	"sort"
	"sync"

	"dostfrnd_server/schemas"
)

// In-memory implementations of the three stores. Used by the test suites and
// handy for running the server without its backing databases.

// MemoryIdentityStore implements IdentityStore in process memory
type MemoryIdentityStore struct {
	mu         sync.RWMutex
	identities []schemas.Identity
}

// NewMemoryIdentityStore returns an empty identity store
func NewMemoryIdentityStore() *MemoryIdentityStore {
	return &MemoryIdentityStore{}
}

func (s *MemoryIdentityStore) FindByID(ctx context.Context, id string) (*schemas.Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.identities {
		if s.identities[i].ID == id && s.identities[i].Active {
			identity := s.identities[i]
			return &identity, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryIdentityStore) FindByEmail(ctx context.Context, email string) (*schemas.Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.identities {
		if s.identities[i].Email == email && s.identities[i].Active {
			identity := s.identities[i]
			return &identity, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryIdentityStore) Find(ctx context.Context, filter IdentityFilter) ([]schemas.Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []schemas.Identity
	for i := range s.identities {
		if !s.identities[i].Active {
			continue
		}
		if filter.Title != "" && s.identities[i].Title != filter.Title {
			continue
		}
		result = append(result, s.identities[i])
	}
	return result, nil
}

func (s *MemoryIdentityStore) Save(ctx context.Context, identity *schemas.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.identities {
		if s.identities[i].ID == identity.ID {
			s.identities[i] = *identity
			return nil
		}
	}
	s.identities = append(s.identities, *identity)
	return nil
}

// MemoryRequestStore implements RequestStore in process memory
type MemoryRequestStore struct {
	mu       sync.RWMutex
	requests []schemas.FriendRequest
}

// NewMemoryRequestStore returns an empty request ledger
func NewMemoryRequestStore() *MemoryRequestStore {
	return &MemoryRequestStore{}
}

func (s *MemoryRequestStore) Insert(ctx context.Context, req *schemas.FriendRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = append(s.requests, *req)
	return nil
}

func (s *MemoryRequestStore) Save(ctx context.Context, req *schemas.FriendRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.requests {
		if s.requests[i].ID == req.ID {
			s.requests[i] = *req
			return nil
		}
	}
	s.requests = append(s.requests, *req)
	return nil
}

func (s *MemoryRequestStore) FindDirected(ctx context.Context, senderID string, recipientID string) (*schemas.FriendRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.requests {
		if s.requests[i].SenderID == senderID && s.requests[i].RecipientID == recipientID {
			req := s.requests[i]
			return &req, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryRequestStore) ExistsBetween(ctx context.Context, a string, b string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.requests {
		if (s.requests[i].SenderID == a && s.requests[i].RecipientID == b) ||
			(s.requests[i].SenderID == b && s.requests[i].RecipientID == a) {
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryRequestStore) FindByRecipient(ctx context.Context, recipientID string) ([]schemas.FriendRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []schemas.FriendRequest
	for i := range s.requests {
		if s.requests[i].RecipientID == recipientID {
			result = append(result, s.requests[i])
		}
	}
	return result, nil
}

func (s *MemoryRequestStore) FindAcceptedInvolving(ctx context.Context, id string) ([]schemas.FriendRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []schemas.FriendRequest
	for i := range s.requests {
		if s.requests[i].Status == schemas.RequestAccepted && s.requests[i].Involves(id) {
			result = append(result, s.requests[i])
		}
	}
	return result, nil
}

func (s *MemoryRequestStore) FindAccepted(ctx context.Context) ([]schemas.FriendRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []schemas.FriendRequest
	for i := range s.requests {
		if s.requests[i].Status == schemas.RequestAccepted {
			result = append(result, s.requests[i])
		}
	}
	return result, nil
}

// MemoryMessageStore implements MessageStore in process memory
type MemoryMessageStore struct {
	mu            sync.RWMutex
	conversations map[string][]schemas.ChatMessage
}

// NewMemoryMessageStore returns an empty chat log
func NewMemoryMessageStore() *MemoryMessageStore {
	return &MemoryMessageStore{conversations: make(map[string][]schemas.ChatMessage)}
}

func (s *MemoryMessageStore) Insert(ctx context.Context, msg *schemas.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := ConversationKey(msg.SenderID, msg.ReceiverID)
	s.conversations[key] = append(s.conversations[key], *msg)
	return nil
}

func (s *MemoryMessageStore) History(ctx context.Context, a string, b string) ([]schemas.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.conversations[ConversationKey(a, b)]
	history := make([]schemas.ChatMessage, len(stored))
	copy(history, stored)

	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Created.Before(history[j].Created)
	})
	return history, nil
}

func (s *MemoryMessageStore) FindMessage(ctx context.Context, senderID string, receiverID string, messageID string, content string) (*schemas.ChatMessage, error) {
	history, err := s.History(ctx, senderID, receiverID)
	if err != nil {
		return nil, err
	}

	for i := range history {
		msg := &history[i]
		if msg.SenderID != senderID || msg.ReceiverID != receiverID {
			continue
		}
		if messageID != "" {
			if msg.MessageID == messageID {
				return msg, nil
			}
			continue
		}
		if msg.Message == content {
			return msg, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryMessageStore) Update(ctx context.Context, msg *schemas.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := ConversationKey(msg.SenderID, msg.ReceiverID)
	for i := range s.conversations[key] {
		if s.conversations[key][i].MessageID == msg.MessageID {
			s.conversations[key][i] = *msg
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryMessageStore) Delete(ctx context.Context, msg *schemas.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := ConversationKey(msg.SenderID, msg.ReceiverID)
	stored := s.conversations[key]
	for i := range stored {
		if stored[i].MessageID == msg.MessageID {
			s.conversations[key] = append(stored[:i:i], stored[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
