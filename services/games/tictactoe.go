package games

import (
	game_constants "Playroom/constants/game"
	"fmt"
)

// TicTacToeState is the board of a turn-grid game. Cells hold "X", "O" or "".
type TicTacToeState struct {
	Board         [9]string         `json:"board"`
	CurrentPlayer string            `json:"current_player"`
	Marks         map[string]string `json:"marks"`
	TurnCount     int               `json:"turn_count"`
	Winner        string            `json:"winner,omitempty"`
}

func (s *TicTacToeState) Variant() string { return game_constants.VariantTicTacToe }

type ticTacToeEngine struct{}

func init() { Register(ticTacToeEngine{}) }

func (ticTacToeEngine) Variant() string { return game_constants.VariantTicTacToe }

func (ticTacToeEngine) Initialize(inviter, opponent string) State {
	return &TicTacToeState{
		CurrentPlayer: inviter,
		Marks:         map[string]string{inviter: "X", opponent: "O"},
	}
}

var winTriples = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

func (ticTacToeEngine) Apply(s State, actor string, mv Move) Result {
	game, ok := s.(*TicTacToeState)
	if !ok || mv.Action != "place" {
		return reject()
	}
	index, ok := intField(mv.Data, "index")
	if !ok || index < 0 || index > 8 {
		return reject()
	}
	if game.Winner != "" || game.CurrentPlayer != actor || game.Board[index] != "" {
		return reject()
	}

	game.Board[index] = game.Marks[actor]
	game.TurnCount++

	for _, t := range winTriples {
		if game.Board[t[0]] != "" && game.Board[t[0]] == game.Board[t[1]] && game.Board[t[0]] == game.Board[t[2]] {
			game.Winner = actor
			break
		}
	}

	if game.Winner != "" {
		return terminal(fmt.Sprintf("%s wins!", game.Winner))
	}
	if game.TurnCount == 9 {
		return terminal("It's a draw!")
	}

	for username := range game.Marks {
		if username != actor {
			game.CurrentPlayer = username
		}
	}
	return Result{Outcome: OutcomeContinue}
}
