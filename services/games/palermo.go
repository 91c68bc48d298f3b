package games

import (
	game_constants "Playroom/constants/game"
	"fmt"
)

// Palermo roles.
const (
	RoleKiller  = "Killer"
	RoleCitizen = "Citizen"
)

// PalermoPlayer is one participant's hidden role and life state.
type PalermoPlayer struct {
	Role  string `json:"role"`
	Alive bool   `json:"alive"`
}

// PalermoState is a two-player social deduction game alternating day votes
// and night kills.
type PalermoState struct {
	Players  map[string]*PalermoPlayer `json:"player_info"`
	AliveIDs []string                  `json:"alive_player_ids"`
	Phase    string                    `json:"phase"`
	Votes    map[string]string         `json:"votes"`
	Message  string                    `json:"message"`
}

func (s *PalermoState) Variant() string { return game_constants.VariantPalermo }

// RoleOf reports the role dealt to a participant, used for the session
// started event.
func (s *PalermoState) RoleOf(username string) string {
	if p, ok := s.Players[username]; ok {
		return p.Role
	}
	return ""
}

type palermoEngine struct{}

func init() { Register(palermoEngine{}) }

func (palermoEngine) Variant() string { return game_constants.VariantPalermo }

func (palermoEngine) Initialize(inviter, opponent string) State {
	return &PalermoState{
		Players: map[string]*PalermoPlayer{
			inviter:  {Role: RoleKiller, Alive: true},
			opponent: {Role: RoleCitizen, Alive: true},
		},
		AliveIDs: []string{inviter, opponent},
		Phase:    "day",
		Votes:    make(map[string]string),
		Message:  "Day 1. Discuss and vote.",
	}
}

func (palermoEngine) Apply(s State, actor string, mv Move) Result {
	game, ok := s.(*PalermoState)
	if !ok || mv.Action != "act" {
		return reject()
	}
	player, ok := game.Players[actor]
	if !ok || !player.Alive {
		return reject()
	}
	target, ok := stringField(mv.Data, "target")
	if !ok || target == "" {
		return reject()
	}

	if game.Phase == "day" {
		if _, voted := game.Votes[actor]; voted {
			return reject()
		}
		game.Votes[actor] = target
		announce := fmt.Sprintf("%s has voted. (%d/%d)", actor, len(game.Votes), len(game.AliveIDs))
		if len(game.Votes) < len(game.AliveIDs) {
			return Result{Outcome: OutcomeContinue, Announce: announce, Quiet: true}
		}
		res := tallyVotes(game)
		res.Announce = announce
		return res
	}

	if game.Phase == "night" && player.Role == RoleKiller {
		eliminate(game, target)
		game.Message = "The Killer has acted! It is now day."
		game.Phase = "day"
		return checkWin(game)
	}

	return reject()
}

// tallyVotes resolves a completed day vote: a strict plurality eliminates
// its target, a tie eliminates no one and brings the night.
func tallyVotes(game *PalermoState) Result {
	counts := make(map[string]int, len(game.AliveIDs))
	for _, id := range game.AliveIDs {
		counts[id] = 0
	}
	for _, votedID := range game.Votes {
		if _, ok := counts[votedID]; ok {
			counts[votedID]++
		}
	}

	maxVotes := 0
	var leaders []string
	for _, id := range game.AliveIDs {
		if counts[id] > maxVotes {
			maxVotes = counts[id]
			leaders = []string{id}
		} else if counts[id] == maxVotes {
			leaders = append(leaders, id)
		}
	}

	game.Votes = make(map[string]string)

	if len(leaders) != 1 {
		game.Message = "The vote was tied. No one was eliminated. It is now night."
		game.Phase = "night"
		return Result{Outcome: OutcomeContinue}
	}

	elimID := leaders[0]
	eliminate(game, elimID)
	game.Message = fmt.Sprintf("%s was eliminated! They were a %s.", elimID, game.Players[elimID].Role)
	return checkWin(game)
}

func eliminate(game *PalermoState, username string) {
	if p, ok := game.Players[username]; ok {
		p.Alive = false
	}
	remaining := game.AliveIDs[:0]
	for _, id := range game.AliveIDs {
		if id != username {
			remaining = append(remaining, id)
		}
	}
	game.AliveIDs = remaining
}

// checkWin runs after every elimination. The Citizens-zero-Killers check
// comes first, so wiping out every role at once still reads as a Citizen
// win.
func checkWin(game *PalermoState) Result {
	killers, citizens := 0, 0
	for _, id := range game.AliveIDs {
		switch game.Players[id].Role {
		case RoleKiller:
			killers++
		case RoleCitizen:
			citizens++
		}
	}
	if killers == 0 {
		return terminal("Citizens win!")
	}
	if killers >= citizens {
		return terminal("Killers win!")
	}
	return Result{Outcome: OutcomeContinue}
}
