package games

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func play(choice string) Move {
	return Move{Action: "play", Data: map[string]interface{}{"move": choice}}
}

func TestRPSRockBeatsScissors(t *testing.T) {
	eng := rpsEngine{}
	state := eng.Initialize("alice", "bob")

	res := eng.Apply(state, "alice", play("rock"))
	require.Equal(t, OutcomeContinue, res.Outcome)
	assert.True(t, res.Quiet)
	assert.Contains(t, res.Advisory, "Waiting for opponent")

	res = eng.Apply(state, "bob", play("scissors"))
	require.Equal(t, OutcomeContinue, res.Outcome)
	require.NotNil(t, res.Round)
	assert.Equal(t, "alice wins the round!", res.Round.Result)
	assert.Equal(t, 1, res.Round.Scores["alice"])
	assert.Equal(t, 0, res.Round.Scores["bob"])
}

func TestRPSTieLeavesScoresUnchanged(t *testing.T) {
	eng := rpsEngine{}
	state := eng.Initialize("alice", "bob")

	eng.Apply(state, "alice", play("rock"))
	res := eng.Apply(state, "bob", play("rock"))
	require.NotNil(t, res.Round)
	assert.Equal(t, "It's a tie for this round!", res.Round.Result)
	assert.Equal(t, 0, res.Round.Scores["alice"])
	assert.Equal(t, 0, res.Round.Scores["bob"])
}

func TestRPSChoicesResetAfterResolution(t *testing.T) {
	eng := rpsEngine{}
	state := eng.Initialize("alice", "bob")
	game := state.(*RPSState)

	eng.Apply(state, "alice", play("paper"))
	eng.Apply(state, "bob", play("rock"))

	assert.Empty(t, game.Players["alice"].Choice)
	assert.Empty(t, game.Players["bob"].Choice)

	// a new round can start right away
	res := eng.Apply(state, "bob", play("scissors"))
	assert.Equal(t, OutcomeContinue, res.Outcome)
}

func TestRPSRejections(t *testing.T) {
	eng := rpsEngine{}
	state := eng.Initialize("alice", "bob")

	// double choice before resolution
	require.Equal(t, OutcomeContinue, eng.Apply(state, "alice", play("rock")).Outcome)
	assert.Equal(t, OutcomeReject, eng.Apply(state, "alice", play("paper")).Outcome)

	// outsider
	assert.Equal(t, OutcomeReject, eng.Apply(state, "mallory", play("rock")).Outcome)

	// unknown choice gets an advisory
	res := eng.Apply(state, "bob", play("dynamite"))
	assert.Equal(t, OutcomeReject, res.Outcome)
	assert.NotEmpty(t, res.Advisory)
}
