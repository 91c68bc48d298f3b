package invites

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProposeAndAccept(t *testing.T) {
	b := NewBroker(0, nil)

	inv := b.Propose("alice", "bob", "tic-tac-toe")
	require.NotEmpty(t, inv.ID)
	assert.Equal(t, 1, b.Len())

	// only the recorded opponent can accept
	_, ok := b.Accept(inv.ID, "alice")
	assert.False(t, ok)
	assert.Equal(t, 1, b.Len())

	got, ok := b.Accept(inv.ID, "bob")
	require.True(t, ok)
	assert.Equal(t, inv.ID, got.ID)
	assert.Zero(t, b.Len())

	// accepting twice is a no-op
	_, ok = b.Accept(inv.ID, "bob")
	assert.False(t, ok)
}

func TestDeclineConsumesInvitation(t *testing.T) {
	b := NewBroker(0, nil)
	inv := b.Propose("alice", "bob", "snake")

	got, ok := b.Decline(inv.ID)
	require.True(t, ok)
	assert.Equal(t, "alice", got.Inviter)

	// accept after decline finds nothing
	_, ok = b.Accept(inv.ID, "bob")
	assert.False(t, ok)
	_, ok = b.Decline(inv.ID)
	assert.False(t, ok)
}

func TestInvitationExpiry(t *testing.T) {
	expired := make(chan *Invitation, 1)
	b := NewBroker(20*time.Millisecond, func(inv *Invitation) {
		expired <- inv
	})

	inv := b.Propose("alice", "bob", "palermo")

	select {
	case got := <-expired:
		assert.Equal(t, inv.ID, got.ID)
	case <-time.After(time.Second):
		t.Fatal("invitation never expired")
	}

	assert.Zero(t, b.Len())
	_, ok := b.Accept(inv.ID, "bob")
	assert.False(t, ok)
}

func TestAcceptStopsExpiry(t *testing.T) {
	expired := make(chan *Invitation, 1)
	b := NewBroker(30*time.Millisecond, func(inv *Invitation) {
		expired <- inv
	})

	inv := b.Propose("alice", "bob", "memory-game")
	_, ok := b.Accept(inv.ID, "bob")
	require.True(t, ok)

	select {
	case <-expired:
		t.Fatal("consumed invitation must not expire")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestDropParticipant(t *testing.T) {
	b := NewBroker(0, nil)
	b.Propose("alice", "bob", "snake")
	b.Propose("carol", "alice", "snake")
	kept := b.Propose("carol", "dave", "snake")

	b.DropParticipant("alice")
	assert.Equal(t, 1, b.Len())

	_, ok := b.Accept(kept.ID, "dave")
	assert.True(t, ok)
}
