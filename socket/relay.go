package socket

import (
	"context"

	"dostfrnd_server/global"
	"dostfrnd_server/schemas"

	"github.com/gocql/gocql"
	jsoniter "github.com/json-iterator/go"
)

// RelayChatMessage persists the message, then fans the saved record out to
// the two delivery rooms. Persistence always precedes fan-out, so a
// delivered event never lacks a durable record behind it.
//
// Two distinct room keys are used on purpose: the sender's clients listen on
// sender+recipient, the recipient's on recipient+sender. Clients join both
// orderings of their pair.
func RelayChatMessage(ctx context.Context, senderEmail string, recipientEmail string, body string) (*schemas.ChatMessage, error) {

	sender, err := global.Identities.FindByEmail(ctx, senderEmail)
	if err != nil {
		return nil, err
	}

	recipient, err := global.Identities.FindByEmail(ctx, recipientEmail)
	if err != nil {
		return nil, err
	}

	messageID := gocql.TimeUUID()
	msg := &schemas.ChatMessage{
		MessageID:  messageID.String(),
		SenderID:   sender.ID,
		ReceiverID: recipient.ID,
		Message:    body,
		Created:    messageID.Time().UTC(),
	}

	if err = global.Messages.Insert(ctx, msg); err != nil {
		return nil, err
	}

	saved, err := jsoniter.Marshal(construct_ws_message("messageSaved", msg))
	if err != nil {
		return nil, err
	}
	received, err := jsoniter.Marshal(construct_ws_message("messageReceived", msg))
	if err != nil {
		return nil, err
	}

	broadcast(sender.ID+recipient.ID, saved)
	broadcast(recipient.ID+sender.ID, received)

	return msg, nil
}
