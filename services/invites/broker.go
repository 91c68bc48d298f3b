package invites

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Invitation is a pending game proposal. It is consumed exactly once: by an
// accept, a decline or the TTL sweep, whichever comes first.
type Invitation struct {
	ID       string
	Inviter  string
	Opponent string
	Variant  string

	timer *time.Timer
}

// Broker owns the pending invitation table. All entry points are safe for
// concurrent use.
type Broker struct {
	mu      sync.Mutex
	pending map[string]*Invitation
	ttl     time.Duration
	expired func(inv *Invitation)
}

// NewBroker creates a broker. Invitations older than ttl are discarded and
// reported through expired (which may be nil). A ttl of zero disables the
// sweep.
func NewBroker(ttl time.Duration, expired func(inv *Invitation)) *Broker {
	return &Broker{
		pending: make(map[string]*Invitation),
		ttl:     ttl,
		expired: expired,
	}
}

// Propose records an invitation from inviter to opponent for a variant.
// Callers validate the opponent (known, not the inviter) before this point.
func (b *Broker) Propose(inviter, opponent, variant string) *Invitation {
	inv := &Invitation{
		ID:       uuid.NewString(),
		Inviter:  inviter,
		Opponent: opponent,
		Variant:  variant,
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending[inv.ID] = inv
	if b.ttl > 0 {
		inv.timer = time.AfterFunc(b.ttl, func() { b.expire(inv.ID) })
	}
	return inv
}

// Accept consumes the invitation if it exists and the acceptor is its
// recorded opponent. A second accept, or an accept after a decline or
// expiry, finds nothing and reports false.
func (b *Broker) Accept(id, acceptor string) (*Invitation, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	inv, ok := b.pending[id]
	if !ok || inv.Opponent != acceptor {
		return nil, false
	}
	b.removeLocked(inv)
	return inv, true
}

// Decline consumes the invitation, if it still exists.
func (b *Broker) Decline(id string) (*Invitation, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	inv, ok := b.pending[id]
	if !ok {
		return nil, false
	}
	b.removeLocked(inv)
	return inv, true
}

// DropParticipant discards every invitation a departed user is part of.
func (b *Broker) DropParticipant(username string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, inv := range b.pending {
		if inv.Inviter == username || inv.Opponent == username {
			b.removeLocked(inv)
		}
	}
}

// Len reports how many invitations are pending.
func (b *Broker) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending)
}

func (b *Broker) removeLocked(inv *Invitation) {
	delete(b.pending, inv.ID)
	if inv.timer != nil {
		inv.timer.Stop()
	}
}

func (b *Broker) expire(id string) {
	b.mu.Lock()
	inv, ok := b.pending[id]
	if ok {
		delete(b.pending, id)
	}
	b.mu.Unlock()

	if !ok {
		return
	}
	log.Printf("[INVITE] Expired invitation %s from %s to %s", inv.ID, inv.Inviter, inv.Opponent)
	if b.expired != nil {
		b.expired(inv)
	}
}
