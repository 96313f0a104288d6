package domain

// RoomID identifies a bookable studio room
type RoomID string

const (
	RoomTerminalA RoomID = "terminal-a"
	RoomTerminalB RoomID = "terminal-b"
	RoomTerminalC RoomID = "terminal-c"
)

// Room is an immutable description of a bookable studio room.
// Rooms are created at process start from static configuration and never mutated.
type Room struct {
	ID              RoomID
	DisplayName     string
	Color           string
	Capacity        int
	DefaultEngineer string
	EngineerID      string
}

// Registry is the static room/engineer registry
type Registry struct {
	rooms map[RoomID]Room
	order []RoomID
}

// NewRegistry builds a registry from a fixed room list, preserving order
func NewRegistry(rooms []Room) *Registry {
	reg := &Registry{
		rooms: make(map[RoomID]Room, len(rooms)),
		order: make([]RoomID, 0, len(rooms)),
	}
	for _, room := range rooms {
		reg.rooms[room.ID] = room
		reg.order = append(reg.order, room.ID)
	}
	return reg
}

// Get returns the room for id, with ok=false for unknown identifiers
func (r *Registry) Get(id RoomID) (Room, bool) {
	room, ok := r.rooms[id]
	return room, ok
}

// Contains reports whether id is a known room identifier
func (r *Registry) Contains(id RoomID) bool {
	_, ok := r.rooms[id]
	return ok
}

// List returns all rooms in configuration order
func (r *Registry) List() []Room {
	out := make([]Room, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.rooms[id])
	}
	return out
}
