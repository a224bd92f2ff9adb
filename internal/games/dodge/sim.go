package dodge

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/termfolio/internal/config"
	"github.com/vovakirdan/termfolio/internal/core"
)

// Rand is the random source used for spawning. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Sim advances worlds. It holds only immutable parameters and the spawn RNG,
// so a Sim built from the same seed replays identically.
type Sim struct {
	params     Params
	difficulty *config.DifficultyManager
	rng        Rand
}

// NewSim creates a simulator. A nil difficulty manager means fixed difficulty.
func NewSim(p Params, diff *config.DifficultyManager, rng Rand) *Sim {
	if diff == nil {
		diff = config.NewDifficultyManager(config.DifficultyConfig{})
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Sim{
		params:     p,
		difficulty: diff,
		rng:        rng,
	}
}

// Params returns the simulation parameters.
func (s *Sim) Params() Params {
	return s.params
}

// NewWorld creates the initial world for this simulator.
func (s *Sim) NewWorld() World {
	return NewWorld(s.params)
}

// Step advances the world by one tick and returns the next world.
// The input world's obstacle slice is not modified.
func (s *Sim) Step(w World, in Input, now time.Time) (World, Outcome) {
	var out Outcome
	p := s.params

	next := World{
		Player:    s.movePlayer(w.Player, in),
		Score:     w.Score,
		Ticks:     w.Ticks + 1,
		LastSpawn: w.LastSpawn,
	}

	live := w.Obstacles
	interval := s.difficulty.SpawnInterval(p.SpawnInterval, w.Score, w.Ticks)
	if now.Sub(w.LastSpawn) > interval {
		live = append(live[:len(live):len(live)], s.spawn(w.Score, w.Ticks))
		next.LastSpawn = now
		out.Spawned = true
	}

	retained := make([]Obstacle, 0, len(live))
	for _, o := range live {
		o.Y += o.Speed

		if o.Intersects(next.Player.Box) {
			out.Collided = true
			continue
		}
		if o.Y >= p.FieldH {
			next.Score++
			out.Exited++
			continue
		}
		retained = append(retained, o)
	}
	next.Obstacles = retained

	return next, out
}

// movePlayer applies held directions and clamps to the field.
func (s *Sim) movePlayer(pl Player, in Input) Player {
	p := s.params
	if in.Left {
		pl.X -= p.PlayerStep
	}
	if in.Right {
		pl.X += p.PlayerStep
	}
	pl.X = core.ClampF(pl.X, 0, p.FieldW-pl.W)
	return pl
}

// spawn creates an obstacle at a random x above the visible field.
func (s *Sim) spawn(score, ticks int) Obstacle {
	p := s.params
	x := s.rng.Float64() * (p.FieldW - p.ObstacleW)
	speed := p.MinSpeed + s.rng.Float64()*(p.MaxSpeed-p.MinSpeed)
	speed *= s.difficulty.SpeedFactor(score, ticks)

	return Obstacle{
		Box:   core.NewBox(x, p.SpawnY, p.ObstacleW, p.ObstacleH),
		Speed: speed,
	}
}
