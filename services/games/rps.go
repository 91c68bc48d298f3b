package games

import (
	game_constants "Playroom/constants/game"
	"fmt"
)

// RPSHand is one participant's side of a rock-paper-scissors session.
type RPSHand struct {
	Choice string `json:"-"` // hidden from snapshots, revealed via round_result
	Score  int    `json:"score"`
}

// RPSState holds both hands; rounds resolve once both choices are present.
type RPSState struct {
	Players map[string]*RPSHand `json:"players"`
}

func (s *RPSState) Variant() string { return game_constants.VariantRPS }

type rpsEngine struct{}

func init() { Register(rpsEngine{}) }

func (rpsEngine) Variant() string { return game_constants.VariantRPS }

func (rpsEngine) Initialize(inviter, opponent string) State {
	return &RPSState{
		Players: map[string]*RPSHand{
			inviter:  {},
			opponent: {},
		},
	}
}

// beats maps each choice to the choice it defeats.
var beats = map[string]string{
	"rock":     "scissors",
	"paper":    "rock",
	"scissors": "paper",
}

func (rpsEngine) Apply(s State, actor string, mv Move) Result {
	game, ok := s.(*RPSState)
	if !ok || mv.Action != "play" {
		return reject()
	}
	hand, ok := game.Players[actor]
	if !ok || hand.Choice != "" {
		return reject()
	}
	choice, ok := stringField(mv.Data, "move")
	if !ok {
		return reject()
	}
	if _, valid := beats[choice]; !valid {
		return advise("Invalid move. Pick rock, paper or scissors.")
	}

	hand.Choice = choice

	var opponent string
	for username := range game.Players {
		if username != actor {
			opponent = username
		}
	}
	other := game.Players[opponent]
	if other.Choice == "" {
		return Result{
			Outcome:  OutcomeContinue,
			Advisory: fmt.Sprintf("You chose %s. Waiting for opponent...", choice),
			Quiet:    true,
		}
	}

	var winner string
	if hand.Choice != other.Choice {
		if beats[hand.Choice] == other.Choice {
			winner = actor
		} else {
			winner = opponent
		}
	}

	result := "It's a tie for this round!"
	if winner != "" {
		game.Players[winner].Score++
		result = fmt.Sprintf("%s wins the round!", winner)
	}

	scores := map[string]int{
		actor:    hand.Score,
		opponent: other.Score,
	}

	// Both choices reset after every resolution, win or tie.
	hand.Choice = ""
	other.Choice = ""

	return Result{
		Outcome: OutcomeContinue,
		Round:   &RoundResult{Result: result, Scores: scores},
		Quiet:   true,
	}
}
