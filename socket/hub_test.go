package socket

import "testing"

func newTestClient(t *testing.T) *client {
	t.Helper()
	cl, err := register_client()
	if err != nil {
		t.Fatalf("register client: %v", err)
	}
	return cl
}

func TestJoinRoomAndBroadcast(t *testing.T) {
	a := newTestClient(t)
	b := newTestClient(t)

	a.join_room("pair")
	b.join_room("pair")
	defer a.disconnect()
	defer b.disconnect()

	if size := room_size("pair"); size != 2 {
		t.Fatalf("room size = %d, want 2", size)
	}

	broadcast("pair", []byte("frame"))

	for _, cl := range []*client{a, b} {
		select {
		case got := <-cl.send:
			if string(got) != "frame" {
				t.Fatalf("frame = %q, want frame", got)
			}
		default:
			t.Fatalf("client %s got nothing", cl.id)
		}
	}
}

func TestLeaveRoomStopsDelivery(t *testing.T) {
	a := newTestClient(t)
	b := newTestClient(t)

	a.join_room("pair")
	b.join_room("pair")
	defer a.disconnect()
	defer b.disconnect()

	b.leave_room("pair")

	broadcast("pair", []byte("frame"))

	select {
	case <-b.send:
		t.Fatalf("departed client still received a frame")
	default:
	}

	select {
	case <-a.send:
	default:
		t.Fatalf("remaining client received nothing")
	}
}

func TestBroadcastDropsOnFullBuffer(t *testing.T) {
	a := newTestClient(t)
	a.join_room("pair")
	defer a.disconnect()

	for i := 0; i < SEND_BUFFER; i++ {
		a.send <- []byte("fill")
	}

	// A full member just misses the frame; broadcast must not block.
	broadcast("pair", []byte("overflow"))

	if len(a.send) != SEND_BUFFER {
		t.Fatalf("buffer length = %d, want %d", len(a.send), SEND_BUFFER)
	}
}

func TestDisconnectDropsMemberships(t *testing.T) {
	a := newTestClient(t)
	a.join_room("one")
	a.join_room("two")

	a.disconnect()

	if size := room_size("one"); size != 0 {
		t.Fatalf("room one size = %d, want 0", size)
	}
	if size := room_size("two"); size != 0 {
		t.Fatalf("room two size = %d, want 0", size)
	}

	for range a.send {
	}
	if _, open := <-a.send; open {
		t.Fatalf("send channel still open after disconnect")
	}
}

func TestEmptyRoomsAreDropped(t *testing.T) {
	a := newTestClient(t)
	a.join_room("ephemeral")
	a.leave_room("ephemeral")
	defer a.disconnect()

	shard := room_table.get_shard("ephemeral")
	shard.RLock()
	_, ok := shard.rooms["ephemeral"]
	shard.RUnlock()
	if ok {
		t.Fatalf("empty room left in the table")
	}
}
