package socket

import (
	"sync"

	"github.com/aidarkhanov/nanoid/v2"
	"github.com/segmentio/fasthash/fnv1a"
)

const CONCURRENCY = 32
const VALID_NANOID_CHAR = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
const SEND_BUFFER = 16

type conc_room_table struct {
	rooms map[string]map[string]chan []byte
	sync.RWMutex
}
type conc_room_table_shards []*conc_room_table

func (rt conc_room_table_shards) get_shard(roomKey string) *conc_room_table {
	return rt[fnv1a.HashString32(roomKey)%CONCURRENCY]
}

var room_table conc_room_table_shards = func() conc_room_table_shards {
	shards := make([]*conc_room_table, CONCURRENCY)

	for i := 0; uint32(i) < CONCURRENCY; i++ {
		shards[i] = &conc_room_table{rooms: make(map[string]map[string]chan []byte)}
	}

	return shards
}()

type client struct {
	id    string
	send  chan []byte
	mu    sync.Mutex
	rooms map[string]struct{}
}

func register_client() (*client, error) {

	connID, err := nanoid.GenerateString(VALID_NANOID_CHAR, 10)
	if err != nil {
		return nil, err
	}

	return &client{
		id:    connID,
		send:  make(chan []byte, SEND_BUFFER),
		rooms: make(map[string]struct{}),
	}, nil
}

// join_room adds the client's channel to the room's delivery set. Room keys
// come from the client verbatim; which ordering of the id pair they use is
// their business.
func (cl *client) join_room(roomKey string) {

	shard := room_table.get_shard(roomKey)

	shard.Lock()
	room, ok := shard.rooms[roomKey]
	if !ok {
		room = make(map[string]chan []byte)
		shard.rooms[roomKey] = room
	}
	room[cl.id] = cl.send
	shard.Unlock()

	cl.mu.Lock()
	cl.rooms[roomKey] = struct{}{}
	cl.mu.Unlock()
}

func (cl *client) leave_room(roomKey string) {

	shard := room_table.get_shard(roomKey)

	shard.Lock()
	if room, ok := shard.rooms[roomKey]; ok {
		delete(room, cl.id)
		if len(room) == 0 {
			delete(shard.rooms, roomKey)
		}
	}
	shard.Unlock()

	cl.mu.Lock()
	delete(cl.rooms, roomKey)
	cl.mu.Unlock()
}

// disconnect drops every membership, then closes the send channel. Closing
// after leaving is safe: broadcast sends under the shard read lock, and
// leave_room's write lock waits those out.
func (cl *client) disconnect() {

	cl.mu.Lock()
	rooms := make([]string, 0, len(cl.rooms))
	for roomKey := range cl.rooms {
		rooms = append(rooms, roomKey)
	}
	cl.mu.Unlock()

	for _, roomKey := range rooms {
		cl.leave_room(roomKey)
	}

	close(cl.send)
}

// broadcast fans a frame out to the room's live members. A member whose
// buffer is full just misses the frame; durable history is the fallback.
func broadcast(roomKey string, b []byte) {

	shard := room_table.get_shard(roomKey)

	shard.RLock()
	for _, member := range shard.rooms[roomKey] {
		select {
		case member <- b:
		default:
		}
	}
	shard.RUnlock()
}

func room_size(roomKey string) int {

	shard := room_table.get_shard(roomKey)

	shard.RLock()
	defer shard.RUnlock()
	return len(shard.rooms[roomKey])
}
