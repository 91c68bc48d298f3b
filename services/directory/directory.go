package directory

import (
	"fmt"
	"sort"
	"sync"
)

// Directory tracks which display names are connected. Names double as the
// participant identifier: they are unique while connected and a handle is
// never shared by two live connections.
type Directory struct {
	mu    sync.RWMutex
	users map[string]struct{}
}

func New() *Directory {
	return &Directory{users: make(map[string]struct{})}
}

// Join claims a display name. It fails if the name is already connected.
func (d *Directory) Join(username string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, taken := d.users[username]; taken {
		return fmt.Errorf("username %q is already taken", username)
	}
	d.users[username] = struct{}{}
	return nil
}

// Leave releases a display name. Unknown names are ignored.
func (d *Directory) Leave(username string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.users, username)
}

// Known reports whether a name is currently connected.
func (d *Directory) Known(username string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.users[username]
	return ok
}

// Users returns the connected names, sorted for stable roster payloads.
func (d *Directory) Users() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	names := make([]string, 0, len(d.users))
	for username := range d.users {
		names = append(names, username)
	}
	sort.Strings(names)
	return names
}
