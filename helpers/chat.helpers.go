package helpers

import (
	"context"

	"dostfrnd_server/global"
	"dostfrnd_server/schemas"
)

// ChatHistory returns every message between the two identities in either
// direction, ordered by created ascending.
func ChatHistory(ctx context.Context, a string, b string) ([]schemas.ChatMessage, error) {
	return global.Messages.History(ctx, a, b)
}

// EditChatMessage replaces the content of one message, addressed by
// messageID when given, otherwise by the first exact content match.
// Identity and ordering key are untouched.
func EditChatMessage(ctx context.Context, senderID string, receiverID string, messageID string, oldContent string, newContent string) (*schemas.ChatMessage, error) {

	msg, err := global.Messages.FindMessage(ctx, senderID, receiverID, messageID, oldContent)
	if err != nil {
		return nil, err
	}

	msg.Message = newContent
	if err = global.Messages.Update(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// DeleteChatMessage removes one message, addressed like EditChatMessage.
// Under duplicate contents without a messageID the first match wins.
func DeleteChatMessage(ctx context.Context, senderID string, receiverID string, messageID string, content string) error {

	msg, err := global.Messages.FindMessage(ctx, senderID, receiverID, messageID, content)
	if err != nil {
		return err
	}

	return global.Messages.Delete(ctx, msg)
}
