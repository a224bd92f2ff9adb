// Package dodge implements the hidden arcade mini-game: a player slides along
// the bottom of the play field while obstacles fall from above. Every
// obstacle that leaves the field scores a point; touching one ends the game.
//
// The simulation is a pure transform of (World, Input, now) and never touches
// a terminal. Drawing goes through the Surface interface.
package dodge

import (
	"time"

	"github.com/vovakirdan/termfolio/internal/config"
	"github.com/vovakirdan/termfolio/internal/core"
)

// Params are the resolved simulation constants, in logical field units.
type Params struct {
	FieldW, FieldH     float64
	PlayerW, PlayerH   float64
	PlayerStep         float64
	PlayerBottomOffset float64
	ObstacleW          float64
	ObstacleH          float64
	SpawnY             float64
	SpawnInterval      time.Duration
	MinSpeed           float64
	MaxSpeed           float64 // Exclusive
}

// ParamsFromConfig resolves simulation constants from a loaded config.
func ParamsFromConfig(cfg config.DodgeConfig) Params {
	return Params{
		FieldW:             cfg.Field.Width,
		FieldH:             cfg.Field.Height,
		PlayerW:            cfg.Player.Width,
		PlayerH:            cfg.Player.Height,
		PlayerStep:         cfg.Player.Step,
		PlayerBottomOffset: cfg.Player.BottomOffset,
		ObstacleW:          cfg.Obstacles.Width,
		ObstacleH:          cfg.Obstacles.Height,
		SpawnY:             cfg.Obstacles.SpawnY,
		SpawnInterval:      time.Duration(cfg.Obstacles.SpawnIntervalMS) * time.Millisecond,
		MinSpeed:           cfg.Obstacles.MinSpeed,
		MaxSpeed:           cfg.Obstacles.MaxSpeed,
	}
}

// DefaultParams returns the parameters of the built-in configuration.
func DefaultParams() Params {
	return ParamsFromConfig(config.DefaultDodgeConfig())
}

// Player is the rectangle steered by the user. Its Y never changes.
type Player struct {
	core.Box
}

// Obstacle is a falling rectangle with its own speed, fixed at spawn time.
type Obstacle struct {
	core.Box
	Speed float64 // Units per tick
}

// Input is the held directional state read once per tick.
type Input struct {
	Left  bool
	Right bool
}

// World is the complete simulation state.
type World struct {
	Player    Player
	Obstacles []Obstacle // Live obstacles, in spawn order
	Score     int
	Ticks     int
	LastSpawn time.Time // Zero until the first spawn, so the first tick spawns
}

// NewWorld creates the initial world: player centred near the bottom,
// no obstacles, score zero.
func NewWorld(p Params) World {
	return World{
		Player: Player{
			Box: core.NewBox(p.FieldW/2-p.PlayerW/2, p.FieldH-p.PlayerBottomOffset, p.PlayerW, p.PlayerH),
		},
	}
}

// Restarted returns the world reset for another round. The player keeps its
// horizontal position.
func (w World) Restarted() World {
	return World{
		Player:    w.Player,
		LastSpawn: w.LastSpawn,
	}
}

// Outcome reports what happened during one tick.
type Outcome struct {
	Collided bool // An obstacle hit the player; the round is over
	Exited   int  // Obstacles that left the bottom of the field this tick
	Spawned  bool // A new obstacle entered this tick
}
