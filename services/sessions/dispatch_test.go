package sessions

import (
	game_constants "Playroom/constants/game"
	"Playroom/services/games"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type emitted struct {
	target  string // room or username
	event   string
	payload interface{}
}

// fakeNotifier records emits instead of touching a socket server.
type fakeNotifier struct {
	mu     sync.Mutex
	room   []emitted
	direct []emitted
	joins  []string
}

func (f *fakeNotifier) ToRoom(room, event string, payload interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.room = append(f.room, emitted{room, event, payload})
}

func (f *fakeNotifier) ToUser(username, event string, payload interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.direct = append(f.direct, emitted{username, event, payload})
}

func (f *fakeNotifier) JoinRoom(username, room string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.joins = append(f.joins, username)
}

func (f *fakeNotifier) roomEvents(event string) []emitted {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []emitted
	for _, e := range f.room {
		if e.event == event {
			out = append(out, e)
		}
	}
	return out
}

func placeMove(index int) games.Move {
	return games.Move{Action: "place", Data: map[string]interface{}{"index": float64(index)}}
}

func TestStartRegistersSessionAndBroadcasts(t *testing.T) {
	st := NewStore()
	n := &fakeNotifier{}

	id, err := Start(st, n, game_constants.VariantTicTacToe, "alice", "bob")
	require.NoError(t, err)
	require.Equal(t, 1, st.Len())

	s, ok := st.Get(id)
	require.True(t, ok)
	assert.Equal(t, [2]string{"alice", "bob"}, s.Players)
	assert.NotEqual(t, s.Players[0], s.Players[1])

	assert.ElementsMatch(t, []string{"alice", "bob"}, n.joins)
	assert.Len(t, n.roomEvents("game_started"), 1)
	assert.Len(t, n.roomEvents("game_state"), 1)
}

func TestStartUnknownVariant(t *testing.T) {
	st := NewStore()
	_, err := Start(st, &fakeNotifier{}, "chess", "alice", "bob")
	assert.Error(t, err)
	assert.Zero(t, st.Len())
}

func TestStartPalermoDealsRolesIndividually(t *testing.T) {
	st := NewStore()
	n := &fakeNotifier{}

	_, err := Start(st, n, game_constants.VariantPalermo, "alice", "bob")
	require.NoError(t, err)

	// no shared game_started broadcast: each player gets their own role
	assert.Empty(t, n.roomEvents("game_started"))

	roles := make(map[string]string)
	for _, e := range n.direct {
		if e.event == "game_started" {
			payload := e.payload.(gin.H)
			roles[e.target] = payload["role"].(string)
		}
	}
	assert.Equal(t, map[string]string{"alice": "Killer", "bob": "Citizen"}, roles)
}

func TestDispatchTerminalRemovesSessionAtomically(t *testing.T) {
	st := NewStore()
	n := &fakeNotifier{}
	id, err := Start(st, n, game_constants.VariantTicTacToe, "alice", "bob")
	require.NoError(t, err)

	Dispatch(st, n, id, "alice", placeMove(0))
	Dispatch(st, n, id, "bob", placeMove(3))
	Dispatch(st, n, id, "alice", placeMove(1))
	Dispatch(st, n, id, "bob", placeMove(4))
	Dispatch(st, n, id, "alice", placeMove(2))

	overs := n.roomEvents("game_over")
	require.Len(t, overs, 1)
	assert.Equal(t, "alice wins!", overs[0].payload.(gin.H)["message"])
	assert.Zero(t, st.Len())

	// no further mutation is observable after termination
	states := len(n.roomEvents("game_state"))
	Dispatch(st, n, id, "bob", placeMove(5))
	assert.Len(t, n.roomEvents("game_state"), states)
	assert.Len(t, n.roomEvents("game_over"), 1)
}

func TestDispatchIgnoresOutsiders(t *testing.T) {
	st := NewStore()
	n := &fakeNotifier{}
	id, err := Start(st, n, game_constants.VariantTicTacToe, "alice", "bob")
	require.NoError(t, err)

	before := len(n.roomEvents("game_state"))
	Dispatch(st, n, id, "mallory", placeMove(0))
	assert.Len(t, n.roomEvents("game_state"), before)

	s, _ := st.Get(id)
	assert.Zero(t, s.State.(*games.TicTacToeState).TurnCount)
}

func TestTerminateIsIdempotent(t *testing.T) {
	st := NewStore()
	n := &fakeNotifier{}
	id, err := Start(st, n, game_constants.VariantTicTacToe, "alice", "bob")
	require.NoError(t, err)

	Terminate(st, n, id, "alice disconnected. Game over!")
	Terminate(st, n, id, "alice disconnected. Game over!")

	assert.Len(t, n.roomEvents("game_over"), 1)
	assert.Zero(t, st.Len())
}

func TestDropParticipantEndsOnlyTheirSessions(t *testing.T) {
	st := NewStore()
	n := &fakeNotifier{}
	id1, err := Start(st, n, game_constants.VariantTicTacToe, "alice", "bob")
	require.NoError(t, err)
	id2, err := Start(st, n, game_constants.VariantRPS, "carol", "dave")
	require.NoError(t, err)

	DropParticipant(st, n, "alice")

	_, ok := st.Get(id1)
	assert.False(t, ok)
	_, ok = st.Get(id2)
	assert.True(t, ok)
	require.Len(t, n.roomEvents("game_over"), 1)
	assert.Contains(t, n.roomEvents("game_over")[0].payload.(gin.H)["message"], "alice disconnected")
}

func TestTickLoopStopsWithSession(t *testing.T) {
	st := NewStore()
	n := &fakeNotifier{}
	id, err := Start(st, n, game_constants.VariantAirHockey, "alice", "bob")
	require.NoError(t, err)

	// let a few ticks broadcast state
	require.Eventually(t, func() bool {
		return len(n.roomEvents("game_state")) > 2
	}, time.Second, 5*time.Millisecond)

	Terminate(st, n, id, "done")
	time.Sleep(3 * game_constants.AirHockeyTickInterval)
	after := len(n.roomEvents("game_state"))
	time.Sleep(5 * game_constants.AirHockeyTickInterval)

	// a late tick against the removed session must be a no-op
	assert.Equal(t, after, len(n.roomEvents("game_state")))
	assert.Len(t, n.roomEvents("game_over"), 1)
}

func TestWithMissingSession(t *testing.T) {
	st := NewStore()
	ran := false
	ok := st.With("nope", func(s *Session) { ran = true })
	assert.False(t, ok)
	assert.False(t, ran)
}
