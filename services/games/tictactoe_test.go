package games

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func place(index int) Move {
	return Move{Action: "place", Data: map[string]interface{}{"index": float64(index)}}
}

func TestTicTacToeWinningTriple(t *testing.T) {
	eng := ticTacToeEngine{}
	state := eng.Initialize("alice", "bob")

	// alice takes the top row before move 9
	moves := []struct {
		actor string
		index int
	}{
		{"alice", 0}, {"bob", 3}, {"alice", 1}, {"bob", 4},
	}
	for _, m := range moves {
		res := eng.Apply(state, m.actor, place(m.index))
		require.Equal(t, OutcomeContinue, res.Outcome)
	}

	res := eng.Apply(state, "alice", place(2))
	assert.Equal(t, OutcomeTerminal, res.Outcome)
	assert.Equal(t, "alice wins!", res.Message)
}

func TestTicTacToeDraw(t *testing.T) {
	eng := ticTacToeEngine{}
	state := eng.Initialize("alice", "bob")

	// X X O / O O X / X O X: full board, no triple
	sequence := []struct {
		actor string
		index int
	}{
		{"alice", 0}, {"bob", 2}, {"alice", 1}, {"bob", 3},
		{"alice", 5}, {"bob", 4}, {"alice", 6}, {"bob", 7},
	}
	for _, m := range sequence {
		res := eng.Apply(state, m.actor, place(m.index))
		require.Equal(t, OutcomeContinue, res.Outcome, "move at %d", m.index)
	}

	res := eng.Apply(state, "alice", place(8))
	assert.Equal(t, OutcomeTerminal, res.Outcome)
	assert.Equal(t, "It's a draw!", res.Message)
}

func TestTicTacToeRejections(t *testing.T) {
	eng := ticTacToeEngine{}
	state := eng.Initialize("alice", "bob")

	// not bob's turn
	res := eng.Apply(state, "bob", place(0))
	assert.Equal(t, OutcomeReject, res.Outcome)

	require.Equal(t, OutcomeContinue, eng.Apply(state, "alice", place(0)).Outcome)

	// occupied cell
	res = eng.Apply(state, "bob", place(0))
	assert.Equal(t, OutcomeReject, res.Outcome)

	// out of range
	res = eng.Apply(state, "bob", place(9))
	assert.Equal(t, OutcomeReject, res.Outcome)

	// malformed payload
	res = eng.Apply(state, "bob", Move{Action: "place", Data: map[string]interface{}{"index": "nope"}})
	assert.Equal(t, OutcomeReject, res.Outcome)

	// rejected moves change nothing
	game := state.(*TicTacToeState)
	assert.Equal(t, 1, game.TurnCount)
	assert.Equal(t, "bob", game.CurrentPlayer)
}
