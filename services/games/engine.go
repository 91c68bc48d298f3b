package games

import (
	"strconv"
	"strings"
	"time"
)

// Outcome classifies the effect of applying a move or a tick to a game state.
type Outcome int

const (
	// OutcomeContinue means the game goes on; the session state was updated.
	OutcomeContinue Outcome = iota
	// OutcomeTerminal means the game is over and the session must be torn down.
	OutcomeTerminal
	// OutcomeReject means the move was illegal or malformed; no state change.
	OutcomeReject
)

// State is the variant-specific payload of a session. Engines mutate it in
// place; the session layer guarantees single-threaded access per session.
type State interface {
	Variant() string
}

// Move is a participant's intended action, already decoded from the wire.
// Data holds the raw JSON object fields (numbers arrive as float64).
type Move struct {
	Action string
	Data   map[string]interface{}
}

// RoundResult is emitted for games that resolve in rounds (rock-paper-scissors).
type RoundResult struct {
	Result string         `json:"result"`
	Scores map[string]int `json:"scores"`
}

// Deferred schedules a follow-up transition (e.g. flipping mismatched memory
// tiles back). Apply runs under the same per-session serialization as moves
// and only if the session still exists.
type Deferred struct {
	After time.Duration
	Apply func(s State) Result
}

// Result describes what happened and what the session layer should broadcast.
type Result struct {
	Outcome  Outcome
	Message  string       // termination message, only set with OutcomeTerminal
	Advisory string       // sent to the acting participant only
	Announce string       // sent to the whole session room
	Round    *RoundResult // round resolution, rock-paper-scissors only
	Quiet    bool         // skip the state snapshot broadcast
	Deferred *Deferred
}

// Engine is the rule set of one game variant. Implementations are stateless;
// all game data lives in the State they produce.
type Engine interface {
	Variant() string
	Initialize(inviter, opponent string) State
	Apply(s State, actor string, mv Move) Result
}

// TickEngine is implemented by continuously-simulated variants.
type TickEngine interface {
	Engine
	Tick(s State) Result
	TickInterval() time.Duration
}

var registry = make(map[string]Engine)

// Register adds an engine to the variant registry. Called from init funcs.
func Register(e Engine) {
	registry[e.Variant()] = e
}

// Lookup resolves a variant tag to its engine.
func Lookup(variant string) (Engine, bool) {
	e, ok := registry[variant]
	return e, ok
}

func reject() Result {
	return Result{Outcome: OutcomeReject}
}

func advise(msg string) Result {
	return Result{Outcome: OutcomeReject, Advisory: msg}
}

func terminal(msg string) Result {
	return Result{Outcome: OutcomeTerminal, Message: msg}
}

// intField reads an integer out of a decoded JSON object. Clients send
// numbers either as JSON numbers or as raw input strings.
func intField(data map[string]interface{}, key string) (int, bool) {
	switch v := data[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

func floatField(data map[string]interface{}, key string) (float64, bool) {
	switch v := data[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

func stringField(data map[string]interface{}, key string) (string, bool) {
	v, ok := data[key].(string)
	return v, ok
}
