package games

import (
	game_constants "Playroom/constants/game"
	"fmt"
	"math"
	"time"
)

// Puck is the moving piece of an air hockey session.
type Puck struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	VX float64 `json:"vx"`
	VY float64 `json:"vy"`
	R  float64 `json:"r"`
}

// Paddle is one participant's striker, restricted to their half of the field.
type Paddle struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	R float64 `json:"r"`
}

// AirHockeyState is a bounded field with a decaying puck. The inviter
// defends the bottom edge, the opponent the top edge.
type AirHockeyState struct {
	Width   float64            `json:"width"`
	Height  float64            `json:"height"`
	Puck    Puck               `json:"puck"`
	Paddles map[string]*Paddle `json:"paddles"`
	Scores  map[string]int     `json:"scores"`
	Bottom  string             `json:"bottom"`
	Top     string             `json:"top"`
}

func (s *AirHockeyState) Variant() string { return game_constants.VariantAirHockey }

type airHockeyEngine struct{}

func init() { Register(airHockeyEngine{}) }

func (airHockeyEngine) Variant() string { return game_constants.VariantAirHockey }

func (airHockeyEngine) TickInterval() time.Duration { return game_constants.AirHockeyTickInterval }

func (airHockeyEngine) Initialize(inviter, opponent string) State {
	w, h := game_constants.FIELD_WIDTH, game_constants.FIELD_HEIGHT
	return &AirHockeyState{
		Width:  w,
		Height: h,
		Puck:   Puck{X: w / 2, Y: h / 2, R: game_constants.PUCK_RADIUS},
		Paddles: map[string]*Paddle{
			inviter:  {X: w / 2, Y: h - 50, R: game_constants.PADDLE_RADIUS},
			opponent: {X: w / 2, Y: 50, R: game_constants.PADDLE_RADIUS},
		},
		Scores: map[string]int{inviter: 0, opponent: 0},
		Bottom: inviter,
		Top:    opponent,
	}
}

// Apply clamps paddle movement to the field and to the owner's half.
func (airHockeyEngine) Apply(s State, actor string, mv Move) Result {
	game, ok := s.(*AirHockeyState)
	if !ok || mv.Action != "paddle" {
		return reject()
	}
	paddle, ok := game.Paddles[actor]
	if !ok {
		return reject()
	}
	x, okX := floatField(mv.Data, "x")
	y, okY := floatField(mv.Data, "y")
	if !okX || !okY {
		return reject()
	}

	paddle.X = math.Max(paddle.R, math.Min(game.Width-paddle.R, x))
	if actor == game.Bottom {
		paddle.Y = math.Max(game.Height/2, math.Min(game.Height-paddle.R, y))
	} else {
		paddle.Y = math.Max(paddle.R, math.Min(game.Height/2, y))
	}
	return Result{Outcome: OutcomeContinue, Quiet: true}
}

func (airHockeyEngine) Tick(s State) Result {
	game, ok := s.(*AirHockeyState)
	if !ok {
		return reject()
	}
	puck := &game.Puck

	puck.X += puck.VX
	puck.Y += puck.VY
	puck.VX *= game_constants.PUCK_DECAY
	puck.VY *= game_constants.PUCK_DECAY

	// Side walls reflect and clamp.
	if puck.X < puck.R {
		puck.VX *= -1
		puck.X = puck.R
	} else if puck.X > game.Width-puck.R {
		puck.VX *= -1
		puck.X = game.Width - puck.R
	}

	goalLeft := (game.Width - game_constants.GOAL_WIDTH) / 2
	goalRight := (game.Width + game_constants.GOAL_WIDTH) / 2

	// Scoring edges: a goal only counts inside the goal-width window,
	// otherwise the puck reflects off the edge.
	if puck.Y < puck.R {
		if puck.X > goalLeft && puck.X < goalRight {
			game.Scores[game.Bottom]++
			resetPuck(game, game.Top)
		} else {
			puck.VY *= -1
			puck.Y = puck.R
		}
	} else if puck.Y > game.Height-puck.R {
		if puck.X > goalLeft && puck.X < goalRight {
			game.Scores[game.Top]++
			resetPuck(game, game.Bottom)
		} else {
			puck.VY *= -1
			puck.Y = game.Height - puck.R
		}
	}

	for _, paddle := range game.Paddles {
		dx := puck.X - paddle.X
		dy := puck.Y - paddle.Y
		dist := math.Hypot(dx, dy)
		if dist < puck.R+paddle.R {
			angle := math.Atan2(dy, dx)
			speed := math.Hypot(puck.VX, puck.VY) + 1
			puck.VX = math.Cos(angle) * speed
			puck.VY = math.Sin(angle) * speed
		}
	}

	for username, score := range game.Scores {
		if score >= game_constants.WIN_SCORE {
			return terminal(fmt.Sprintf("%s wins!", username))
		}
	}
	return Result{Outcome: OutcomeContinue}
}

// resetPuck recenters the puck after a goal and serves it toward the
// conceding side.
func resetPuck(game *AirHockeyState, serveTo string) {
	game.Puck.X = game.Width / 2
	game.Puck.Y = game.Height / 2
	game.Puck.VX = 0
	if game.Paddles[serveTo].Y > game.Height/2 {
		game.Puck.VY = -game_constants.SERVE_SPEED
	} else {
		game.Puck.VY = game_constants.SERVE_SPEED
	}
}
