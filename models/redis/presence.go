package redis

type PlayerStatus string

const (
	StatusOnline  PlayerStatus = "online"
	StatusPlaying PlayerStatus = "playing"
)

// PlayerPresence mirrors a connected player into Redis with a short TTL, so
// that operators (and a future multi-node setup) can see who is online.
type PlayerPresence struct {
	Username string       `json:"username"`
	Status   PlayerStatus `json:"status"`
	LastPing int64        `json:"last_ping"` // Unix timestamp
}
