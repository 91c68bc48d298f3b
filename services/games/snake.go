package games

import (
	game_constants "Playroom/constants/game"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Cell is one grid square of the snake arena.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// SnakePlayer is one participant's snake: body cells head-first, current
// heading and whether it is still alive.
type SnakePlayer struct {
	Body  []Cell `json:"snake"`
	Dir   string `json:"dir"`
	Alive bool   `json:"alive"`
}

// SnakeState is a shared-grid snake arena ticked at a fixed cadence.
type SnakeState struct {
	GridSize int                     `json:"grid_size"`
	Players  map[string]*SnakePlayer `json:"players"`
	Food     Cell                    `json:"food"`
}

func (s *SnakeState) Variant() string { return game_constants.VariantSnake }

type snakeEngine struct{}

func init() { Register(snakeEngine{}) }

func (snakeEngine) Variant() string { return game_constants.VariantSnake }

func (snakeEngine) TickInterval() time.Duration { return game_constants.SnakeTickInterval }

func (snakeEngine) Initialize(inviter, opponent string) State {
	return &SnakeState{
		GridSize: game_constants.SNAKE_GRID_SIZE,
		Players: map[string]*SnakePlayer{
			inviter:  {Body: []Cell{{X: 5, Y: 5}}, Dir: "right", Alive: true},
			opponent: {Body: []Cell{{X: 19, Y: 19}}, Dir: "left", Alive: true},
		},
		Food: Cell{X: 12, Y: 12},
	}
}

var opposite = map[string]string{
	"up":    "down",
	"down":  "up",
	"left":  "right",
	"right": "left",
}

// Apply handles steering. Clients send the mouse position on their canvas;
// the heading follows the dominant axis of the vector from the head to the
// cursor. Reversing straight into the previous heading is ignored.
func (snakeEngine) Apply(s State, actor string, mv Move) Result {
	game, ok := s.(*SnakeState)
	if !ok || mv.Action != "steer" {
		return reject()
	}
	player, ok := game.Players[actor]
	if !ok || !player.Alive {
		return reject()
	}
	mouseX, okX := floatField(mv.Data, "x")
	mouseY, okY := floatField(mv.Data, "y")
	if !okX || !okY {
		return reject()
	}

	scale := float64(game_constants.SNAKE_CANVAS_SIZE) / float64(game.GridSize)
	head := player.Body[0]
	dx := mouseX - float64(head.X)*scale
	dy := mouseY - float64(head.Y)*scale

	newDir := player.Dir
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			newDir = "right"
		} else {
			newDir = "left"
		}
	} else {
		if dy > 0 {
			newDir = "down"
		} else {
			newDir = "up"
		}
	}
	if opposite[newDir] != player.Dir {
		player.Dir = newDir
	}
	// The tick loop broadcasts state; steering itself is silent.
	return Result{Outcome: OutcomeContinue, Quiet: true}
}

func (snakeEngine) Tick(s State) Result {
	game, ok := s.(*SnakeState)
	if !ok {
		return reject()
	}

	// Occupancy is sampled before anyone moves, so two heads moving into
	// the same cell on the same tick both die.
	occupied := make(map[Cell]bool)
	for _, player := range game.Players {
		for _, cell := range player.Body {
			occupied[cell] = true
		}
	}

	for _, player := range game.Players {
		if !player.Alive {
			continue
		}
		head := player.Body[0]
		switch player.Dir {
		case "up":
			head.Y--
		case "down":
			head.Y++
		case "left":
			head.X--
		case "right":
			head.X++
		}
		if head.X < 0 || head.Y < 0 || head.X >= game.GridSize || head.Y >= game.GridSize || occupied[head] {
			player.Alive = false
			continue
		}
		player.Body = append([]Cell{head}, player.Body...)
		if head == game.Food {
			game.Food = Cell{X: rand.Intn(game.GridSize), Y: rand.Intn(game.GridSize)}
		} else {
			player.Body = player.Body[:len(player.Body)-1]
		}
	}

	alive := 0
	var survivor string
	for username, player := range game.Players {
		if player.Alive {
			alive++
			survivor = username
		}
	}
	if alive > 1 {
		return Result{Outcome: OutcomeContinue}
	}
	if alive == 1 {
		return terminal(fmt.Sprintf("%s wins!", survivor))
	}
	return terminal("It's a draw!")
}
