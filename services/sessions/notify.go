package sessions

// Notifier is the transport boundary: the socket.io layer implements it for
// production, tests substitute a recorder. Delivery is reliable and ordered
// per connection; payloads are structured records (gin.H maps).
type Notifier interface {
	// ToRoom emits an event to every connection subscribed to a room.
	ToRoom(room string, event string, payload interface{})
	// ToUser emits an event to a single participant's connection.
	ToUser(username string, event string, payload interface{})
	// JoinRoom subscribes a participant's connection to a room.
	JoinRoom(username string, room string)
}
