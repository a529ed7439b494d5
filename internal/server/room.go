package server

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lgbarn/duel-chess/internal/chess"
	"github.com/lgbarn/duel-chess/internal/errors"
	"github.com/lgbarn/duel-chess/internal/game"
)

// Room is one game and the websocket clients playing it. All access to the
// session and to client connections happens under mu, which also keeps
// writes to each connection serialised.
type Room struct {
	ID string

	mu           sync.Mutex
	session      *game.Session
	clients      map[*websocket.Conn]chess.Colour
	writeTimeout time.Duration
	closed       bool // set once the server has dropped the room
}

func newRoom(id string, session *game.Session, writeTimeout time.Duration) *Room {
	return &Room{
		ID:           id,
		session:      session,
		clients:      make(map[*websocket.Conn]chess.Colour),
		writeTimeout: writeTimeout,
	}
}

// join seats a client in the first free colour, White before Black.
func (r *Room) join(conn *websocket.Conn) (chess.Colour, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return chess.White, errors.Wrapf(errors.ErrRoomNotFound, "room %q", r.ID)
	}
	taken := make(map[chess.Colour]bool, 2)
	for _, colour := range r.clients {
		taken[colour] = true
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if !taken[colour] {
			r.clients[conn] = colour
			r.send(conn, Message{
				Type:     "joined",
				Colour:   colourName(colour),
				Players:  len(r.clients),
				Snapshot: snapshotJSON(r.session),
			})
			if len(r.clients) == 2 {
				r.broadcast(Message{Type: "start", Players: 2, Snapshot: snapshotJSON(r.session)})
			}
			return colour, nil
		}
	}
	return chess.White, errors.ErrRoomFull
}

// leave removes a client and reports how many remain.
func (r *Room) leave(conn *websocket.Conn) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	colour, ok := r.clients[conn]
	if !ok {
		return len(r.clients)
	}
	delete(r.clients, conn)
	log.Printf("%s left room %s, remaining: %d", colour, r.ID, len(r.clients))

	r.broadcast(Message{Type: "players", Players: len(r.clients)})
	return len(r.clients)
}

// players returns the number of connected clients.
func (r *Room) players() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}

// closeIfIdle closes the room when no client is seated and, if unplayed
// is set, no move has been made. It reports whether the room was closed.
func (r *Room) closeIfIdle(unplayed bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.clients) > 0 || (unplayed && r.session.Ply() > 0) {
		return false
	}
	r.closed = true
	return true
}

// play validates that colour is to move and plays input for it. A
// successful move is broadcast to every client in the room.
func (r *Room) play(colour chess.Colour, input string) (game.Report, game.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return game.Report{}, game.Snapshot{}, errors.Wrapf(errors.ErrRoomNotFound, "room %q", r.ID)
	}
	if r.session.Turn() != colour {
		return game.Report{}, game.Snapshot{}, &errors.MoveError{
			Err:    errors.ErrNotYourTurn,
			Ply:    r.session.Ply() + 1,
			Player: colour.String(),
			Input:  input,
		}
	}

	report, err := r.session.Play(input)
	if err != nil {
		return game.Report{}, game.Snapshot{}, err
	}

	snap := r.session.Snapshot()
	r.broadcast(Message{Type: "update", Report: reportJSON(report), Snapshot: snapshotJSONFrom(snap)})
	return report, snap, nil
}

// reset starts a new game in the room and tells every client.
func (r *Room) reset() game.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.session.Reset()
	snap := r.session.Snapshot()
	r.broadcast(Message{Type: "update", Message: "new game", Snapshot: snapshotJSONFrom(snap)})
	return snap
}

// snapshot returns the current state of the room's game.
func (r *Room) snapshot() game.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session.Snapshot()
}

// reply sends a message to a single client.
func (r *Room) reply(conn *websocket.Conn, msg Message) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.send(conn, msg)
}

// broadcast sends msg to every client; clients that cannot be written to
// are dropped. Callers hold mu.
func (r *Room) broadcast(msg Message) {
	for conn := range r.clients {
		if err := r.write(conn, msg); err != nil {
			log.Println("Broadcast error:", err)
			delete(r.clients, conn)
			conn.Close()
		}
	}
}

// send writes to one client. Callers hold mu.
func (r *Room) send(conn *websocket.Conn, msg Message) {
	if err := r.write(conn, msg); err != nil {
		log.Println("Error sending message:", err)
	}
}

func (r *Room) write(conn *websocket.Conn, msg Message) error {
	if r.writeTimeout > 0 {
		conn.SetWriteDeadline(time.Now().Add(r.writeTimeout)) //nolint:errcheck // surfaced by WriteJSON
	}
	return conn.WriteJSON(msg)
}
