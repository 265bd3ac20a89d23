package socket

import (
	"log"
	"os"
	"time"

	"dostfrnd_server/global"

	"github.com/gofiber/websocket/v2"
	jsoniter "github.com/json-iterator/go"
)

const MAX_WS_CONNECTION_TIME = 1 * time.Hour

var websocket_logger *log.Logger

// InitializeSocketLogger opens the websocket log file
func InitializeSocketLogger() error {
	file, err := os.OpenFile("websocket_logs.txt", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		return err
	}
	websocket_logger = log.New(file, "", log.LstdFlags)
	return nil
}

func handleWebsocketError(ws *websocket.Conn, problem string, err string) {
	websocket_logger.Println("ip: " + ws.RemoteAddr().String() + "; Problem: " + problem + "; Error: " + err)
}

// ClientSocket relays frames for one authenticated connection. The reader
// goroutine owns the connection; every outbound frame goes through the
// client's send channel so the writer pump is the only writer.
func ClientSocket(ws *websocket.Conn) {

	defer func() {
		if ws != nil && ws.Conn != nil {
			ws.Close()
		}
	}()

	userID := ws.Locals("userid").(string)

	cl, err := register_client()
	if err != nil {
		handleWebsocketError(ws, "register_client", err.Error())
		return
	}
	defer cl.disconnect()

	go write_pump(ws, cl)

	if !queue_message(cl, "connected", connected_data{ConnID: cl.id, UserID: userID}) {
		handleWebsocketError(ws, "connected", "send buffer full")
		return
	}

	var (
		mt int
		b  []byte
	)
	for {

		if err = ws.SetReadDeadline(time.Now().Add(MAX_WS_CONNECTION_TIME)); err != nil {
			handleWebsocketError(ws, "websocket_read_deadline", err.Error())
			break
		}

		if mt, b, err = ws.ReadMessage(); err != nil {
			break
		}
		if mt == websocket.BinaryMessage {
			handleWebsocketError(ws, "websocket_read", "binary message")
			break
		}

		switch jsoniter.Get(b, "Op").ToString() {
		case "joinRoom":
			data := new(join_room_data)
			jsoniter.Get(b, "Data").ToVal(data)
			if data.Room == "" {
				handleWebsocketError(ws, "joinRoom", "empty room")
				continue
			}
			cl.join_room(data.Room)
		case "chatMessage":
			data := new(chat_message_data)
			jsoniter.Get(b, "Data").ToVal(data)
			// Unresolvable parties drop the message: logged, never surfaced
			// to the sender.
			if _, err := RelayChatMessage(global.Context, data.Sender.SenderEmail, data.Recipient.Email, data.Message); err != nil {
				handleWebsocketError(ws, "chatMessage", err.Error())
			}
		default:
			handleWebsocketError(ws, "op", "unrecognized")
		}
	}
}

func queue_message(cl *client, op string, data interface{}) bool {

	b, err := jsoniter.Marshal(construct_ws_message(op, data))
	if err != nil {
		return false
	}

	select {
	case cl.send <- b:
		return true
	default:
		return false
	}
}

func write_pump(ws *websocket.Conn, cl *client) {
	for b := range cl.send {
		if err := ws.WriteMessage(websocket.TextMessage, b); err != nil {
			handleWebsocketError(ws, "write_pump", err.Error())
			return
		}
	}
}
