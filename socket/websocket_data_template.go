package socket

type ws_message struct {
	Op   string
	Data interface{}
}

func construct_ws_message(op string, data interface{}) ws_message {
	return ws_message{
		Op:   op,
		Data: data,
	}
}

//////////////////////////////////////// WEBSOCKET SERVER OP DATA ////////////////////////////////////////

// connected
type connected_data struct {
	ConnID string
	UserID string
}

//////////////////////////////////////// WEBSOCKET CLIENT OP DATA ////////////////////////////////////////

// joinRoom
type join_room_data struct {
	Room string
}

// chatMessage
type chat_sender_data struct {
	SenderEmail string
}

type chat_recipient_data struct {
	Email string
}

type chat_message_data struct {
	Sender    chat_sender_data
	Recipient chat_recipient_data
	Message   string
}
