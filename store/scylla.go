package store

import (
	"context"
	"time"

	"dostfrnd_server/schemas"

	"github.com/gocql/gocql"
)

// ScyllaMessageStore implements MessageStore on the chat_messages table.
// Each conversation is one partition keyed by ConversationKey, clustered by
// created ascending, so history reads are a single partition scan.
type ScyllaMessageStore struct {
	session *gocql.Session
}

// NewScyllaMessageStore binds the store to an open session
func NewScyllaMessageStore(session *gocql.Session) *ScyllaMessageStore {
	return &ScyllaMessageStore{session: session}
}

// CreateTable creates the chat_messages table if missing
func (s *ScyllaMessageStore) CreateTable(keyspace string) error {
	return s.session.Query(`
		CREATE TABLE IF NOT EXISTS ` + keyspace + `.chat_messages (
			conversation_id text,
			created timestamp,
			message_id timeuuid,
			sender_id text,
			receiver_id text,
			message text,
			PRIMARY KEY (conversation_id, created, message_id))
		WITH
		CLUSTERING ORDER BY (created ASC) AND
		compaction = { 'class' :  'SizeTieredCompactionStrategy'  };
	`).Exec()
}

func (s *ScyllaMessageStore) Insert(ctx context.Context, msg *schemas.ChatMessage) error {
	messageID, err := gocql.ParseUUID(msg.MessageID)
	if err != nil {
		return err
	}

	return s.session.Query(`
		INSERT INTO chat_messages (
			conversation_id,
			created,
			message_id,
			sender_id,
			receiver_id,
			message)
		VALUES(?,?,?,?,?,?);`,
		ConversationKey(msg.SenderID, msg.ReceiverID),
		msg.Created,
		messageID,
		msg.SenderID,
		msg.ReceiverID,
		msg.Message,
	).WithContext(ctx).Exec()
}

func (s *ScyllaMessageStore) History(ctx context.Context, a string, b string) ([]schemas.ChatMessage, error) {
	iter := s.session.Query(`
		SELECT created, message_id, sender_id, receiver_id, message
		FROM chat_messages WHERE conversation_id = ?;`,
		ConversationKey(a, b),
	).WithContext(ctx).Iter()

	var (
		messages  []schemas.ChatMessage
		created   time.Time
		messageID gocql.UUID
		senderID  string
		recvID    string
		body      string
	)
	for iter.Scan(&created, &messageID, &senderID, &recvID, &body) {
		messages = append(messages, schemas.ChatMessage{
			MessageID:  messageID.String(),
			SenderID:   senderID,
			ReceiverID: recvID,
			Message:    body,
			Created:    created,
		})
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return messages, nil
}

func (s *ScyllaMessageStore) FindMessage(ctx context.Context, senderID string, receiverID string, messageID string, content string) (*schemas.ChatMessage, error) {
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

func (s *ScyllaMessageStore) Update(ctx context.Context, msg *schemas.ChatMessage) error {
	messageID, err := gocql.ParseUUID(msg.MessageID)
	if err != nil {
		return err
	}

	return s.session.Query(`
		UPDATE chat_messages SET message = ?
		WHERE conversation_id = ? AND created = ? AND message_id = ?;`,
		msg.Message,
		ConversationKey(msg.SenderID, msg.ReceiverID),
		msg.Created,
		messageID,
	).WithContext(ctx).Exec()
}

func (s *ScyllaMessageStore) Delete(ctx context.Context, msg *schemas.ChatMessage) error {
	messageID, err := gocql.ParseUUID(msg.MessageID)
	if err != nil {
		return err
	}

	return s.session.Query(`
		DELETE FROM chat_messages
		WHERE conversation_id = ? AND created = ? AND message_id = ?;`,
		ConversationKey(msg.SenderID, msg.ReceiverID),
		msg.Created,
		messageID,
	).WithContext(ctx).Exec()
}
