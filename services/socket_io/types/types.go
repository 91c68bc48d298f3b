package socketio_types

import (
	"sync"

	"github.com/zishang520/socket.io/v2/socket"
)

// GlobalRoom is the room every verified connection joins; the roster and
// the chat use it.
const GlobalRoom = "global"

// SocketServer is a struct that contains the socket.io server and a map of
// socket connections. It is used to handle socket.io connections and
// implements the sessions.Notifier transport boundary.
type SocketServer struct {
	Sio_server *socket.Server
	// Map to track username -> socket connections
	UserConnections map[string]*socket.Socket
	mutex           sync.RWMutex
}

func NewSocketServer() *SocketServer {
	return &SocketServer{
		UserConnections: make(map[string]*socket.Socket),
	}
}

// Add methods to manage connections
func (s *SocketServer) AddConnection(username string, client *socket.Socket) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.UserConnections[username] = client
}

func (s *SocketServer) RemoveConnection(username string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.UserConnections, username)
}

func (s *SocketServer) GetConnection(username string) (*socket.Socket, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	client, exists := s.UserConnections[username]
	return client, exists
}

// ToRoom emits an event to every connection in a room.
func (s *SocketServer) ToRoom(room string, event string, payload interface{}) {
	s.Sio_server.To(socket.Room(room)).Emit(event, payload)
}

// ToUser emits an event to a single user's connection, if still connected.
func (s *SocketServer) ToUser(username string, event string, payload interface{}) {
	if client, exists := s.GetConnection(username); exists {
		client.Emit(event, payload)
	}
}

// JoinRoom subscribes a user's connection to a room.
func (s *SocketServer) JoinRoom(username string, room string) {
	if client, exists := s.GetConnection(username); exists {
		client.Join(socket.Room(room))
	}
}
