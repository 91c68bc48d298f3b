package games

import (
	game_constants "Playroom/constants/game"
	"fmt"
	"math/rand"
)

// MemoryTile is one card on the memory board.
type MemoryTile struct {
	Symbol  string `json:"symbol"`
	Flipped bool   `json:"flipped"`
	Matched bool   `json:"matched"`
}

// MemoryState is a tile-matching board. While two mismatched tiles are face
// up the board is locked until the deferred revert runs.
type MemoryState struct {
	Board          []MemoryTile   `json:"board"`
	Players        [2]string      `json:"players"`
	CurrentPlayer  string         `json:"current_player"`
	FlippedIndices []int          `json:"flipped_indices"`
	Scores         map[string]int `json:"scores"`
	LockBoard      bool           `json:"lock_board"`
	MatchedPairs   int            `json:"matched_pairs"`
}

func (s *MemoryState) Variant() string { return game_constants.VariantMemory }

var memorySymbols = []string{"😀", "😂", "😍", "🥳", "😎", "🤩", "👍", "❤️"}

type memoryEngine struct{}

func init() { Register(memoryEngine{}) }

func (memoryEngine) Variant() string { return game_constants.VariantMemory }

func (memoryEngine) Initialize(inviter, opponent string) State {
	board := make([]MemoryTile, 0, 2*len(memorySymbols))
	for _, symbol := range memorySymbols {
		board = append(board, MemoryTile{Symbol: symbol}, MemoryTile{Symbol: symbol})
	}
	rand.Shuffle(len(board), func(i, j int) {
		board[i], board[j] = board[j], board[i]
	})
	return &MemoryState{
		Board:         board,
		Players:       [2]string{inviter, opponent},
		CurrentPlayer: inviter,
		Scores:        map[string]int{inviter: 0, opponent: 0},
	}
}

func (memoryEngine) Apply(s State, actor string, mv Move) Result {
	game, ok := s.(*MemoryState)
	if !ok || mv.Action != "flip" {
		return reject()
	}
	index, ok := intField(mv.Data, "index")
	if !ok || index < 0 || index >= len(game.Board) {
		return reject()
	}
	if game.CurrentPlayer != actor || game.LockBoard || game.Board[index].Flipped {
		return reject()
	}

	game.Board[index].Flipped = true
	game.FlippedIndices = append(game.FlippedIndices, index)

	if len(game.FlippedIndices) < 2 {
		return Result{Outcome: OutcomeContinue}
	}

	idx1, idx2 := game.FlippedIndices[0], game.FlippedIndices[1]
	if game.Board[idx1].Symbol == game.Board[idx2].Symbol {
		game.Board[idx1].Matched = true
		game.Board[idx2].Matched = true
		game.Scores[actor]++
		game.MatchedPairs++
		game.FlippedIndices = nil
		if game.MatchedPairs == len(game.Board)/2 {
			return terminal("All pairs found! " + memoryVerdict(game))
		}
		return Result{Outcome: OutcomeContinue}
	}

	// Mismatch: lock the board, reveal both tiles for a moment, then
	// revert and pass the turn.
	game.LockBoard = true
	return Result{
		Outcome: OutcomeContinue,
		Deferred: &Deferred{
			After: game_constants.MemoryFlipBackDelay,
			Apply: func(s State) Result {
				game, ok := s.(*MemoryState)
				if !ok {
					return reject()
				}
				game.Board[idx1].Flipped = false
				game.Board[idx2].Flipped = false
				for _, username := range game.Players {
					if username != actor {
						game.CurrentPlayer = username
					}
				}
				game.FlippedIndices = nil
				game.LockBoard = false
				return Result{Outcome: OutcomeContinue}
			},
		},
	}
}

func memoryVerdict(game *MemoryState) string {
	p1, p2 := game.Players[0], game.Players[1]
	s1, s2 := game.Scores[p1], game.Scores[p2]
	switch {
	case s1 == s2:
		return "It's a draw!"
	case s1 > s2:
		return fmt.Sprintf("%s wins!", p1)
	default:
		return fmt.Sprintf("%s wins!", p2)
	}
}
