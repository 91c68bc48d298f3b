package games

import (
	game_constants "Playroom/constants/game"
	"fmt"
)

// NumberGuessState is a secret-number game: the setter picks 1-100, the
// guesser has a bounded number of attempts. Target stays 0 until set.
type NumberGuessState struct {
	Setter      string `json:"setter"`
	Guesser     string `json:"guesser"`
	Target      int    `json:"target_number"`
	Attempts    int    `json:"attempts"`
	MaxAttempts int    `json:"max_attempts"`
	Feedback    string `json:"feedback"`
}

func (s *NumberGuessState) Variant() string { return game_constants.VariantNumberGuess }

type numberGuessEngine struct{}

func init() { Register(numberGuessEngine{}) }

func (numberGuessEngine) Variant() string { return game_constants.VariantNumberGuess }

func (numberGuessEngine) Initialize(inviter, opponent string) State {
	return &NumberGuessState{
		Setter:      inviter,
		Guesser:     opponent,
		MaxAttempts: game_constants.MAX_GUESS_ATTEMPTS,
		Feedback:    fmt.Sprintf("Waiting for %s to set a number.", inviter),
	}
}

func (numberGuessEngine) Apply(s State, actor string, mv Move) Result {
	game, ok := s.(*NumberGuessState)
	if !ok {
		return reject()
	}
	switch mv.Action {
	case "set":
		return applySet(game, actor, mv)
	case "guess":
		return applyGuess(game, actor, mv)
	}
	return reject()
}

func applySet(game *NumberGuessState, actor string, mv Move) Result {
	if game.Setter != actor || game.Target != 0 {
		return reject()
	}
	number, ok := intField(mv.Data, "number")
	if !ok || number < game_constants.SECRET_MIN || number > game_constants.SECRET_MAX {
		// Out-of-range secrets are re-requested, never clamped.
		return advise("Please set a valid number between 1 and 100.")
	}
	game.Target = number
	game.Feedback = fmt.Sprintf("%s, it's your turn to guess!", game.Guesser)
	return Result{Outcome: OutcomeContinue}
}

func applyGuess(game *NumberGuessState, actor string, mv Move) Result {
	if game.Guesser != actor || game.Target == 0 {
		return reject()
	}
	guess, ok := intField(mv.Data, "guess")
	if !ok {
		return reject()
	}
	game.Attempts++
	if guess == game.Target {
		return terminal(fmt.Sprintf("%s guessed the number %d in %d attempts!", actor, game.Target, game.Attempts))
	}
	if game.Attempts >= game.MaxAttempts {
		return terminal(fmt.Sprintf("Out of attempts! The number was %d.", game.Target))
	}
	hint := "lower"
	if guess < game.Target {
		hint = "higher"
	}
	game.Feedback = fmt.Sprintf("Guess: %d. Try %s. Attempts left: %d", guess, hint, game.MaxAttempts-game.Attempts)
	return Result{Outcome: OutcomeContinue}
}
