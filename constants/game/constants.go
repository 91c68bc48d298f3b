package game_constants

import "time"

// Variant tags, as sent by clients when inviting an opponent.
const (
	VariantTicTacToe   = "tic-tac-toe"
	VariantRPS         = "rock-paper-scissors"
	VariantNumberGuess = "number-guess"
	VariantSnake       = "snake"
	VariantAirHockey   = "air-hockey"
	VariantPalermo     = "palermo"
	VariantMemory      = "memory-game"
)

// Number guess
const MAX_GUESS_ATTEMPTS = 7
const SECRET_MIN = 1
const SECRET_MAX = 100

// Snake
const SNAKE_GRID_SIZE = 25
const SNAKE_CANVAS_SIZE = 500 // client canvas, used to map mouse position to grid cells
const SnakeTickInterval = 120 * time.Millisecond

// Air hockey
const (
	FIELD_WIDTH   = 400.0
	FIELD_HEIGHT  = 600.0
	PUCK_RADIUS   = 15.0
	PADDLE_RADIUS = 25.0
	PUCK_DECAY    = 0.99
	GOAL_WIDTH    = 100.0
	SERVE_SPEED   = 3.0
	WIN_SCORE     = 5
)

const AirHockeyTickInterval = 16 * time.Millisecond

// Memory game
const MemoryFlipBackDelay = 1200 * time.Millisecond

// Invitations are garbage-collected if neither accepted nor declined in time.
const InviteTTL = 60 * time.Second

// Chat history kept in Redis (when configured)
const ChatHistoryLimit = 50
const ChatHistoryTTL = 24 * time.Hour
const PresenceTTL = 30 * time.Second
