// Package flappy implements the simulation core of a Flappy Bird-style game.
// The bird falls under gravity, rises on a flap and must pass scrolling gates;
// touching gates on two collision checks in a row without passing one in
// between ends the run.
//
// The core is pure: no I/O, no timers, no goroutines. A frame driver calls
// Tick once per frame and input collaborators call SelectVariant and Flap
// between ticks.
package flappy

import (
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// StrikesToEnd is the number of consecutive collisions that end a run.
const StrikesToEnd = 2

// DefaultFrame is the elapsed time assumed for a Tick called with a zero
// or negative duration.
const DefaultFrame = time.Second / 60

// Bird is the player-controlled entity. Its x position and size are fixed
// by the config.
type Bird struct {
	Y        float64 // Top of the hitbox
	Velocity float64 // Positive = falling

	// DoubleJumpAllowed is cleared by the first flap and restored by Reset.
	// Nothing reads it to block a flap.
	DoubleJumpAllowed bool
}

// Game owns all mutable state of one session.
type Game struct {
	cfg       config.FlappyConfig
	rng       RandSource
	phase     Phase
	variant   Variant
	bird      Bird
	obstacles *ObstacleQueue
	score     int
	hits      int // consecutive collisions since the last passed gate
	tick      uint64

	selectionElapsed time.Duration
}

// New creates a game in PhaseSelecting. The config is expected to be
// valid (see config.FlappyConfig.Validate).
func New(cfg config.FlappyConfig, rng RandSource) *Game {
	if rng == nil {
		rng = NewRand(time.Now().UnixNano())
	}
	g := &Game{
		cfg:       cfg,
		rng:       rng,
		obstacles: NewObstacleQueue(cfg.Playfield, cfg.Obstacles),
	}
	g.Reset()
	return g
}

// Reset returns every field to its initial value and the phase to
// PhaseSelecting. The random source keeps its position.
func (g *Game) Reset() {
	g.phase = PhaseSelecting
	g.variant = VariantA
	g.bird = Bird{
		Y:                 g.cfg.Playfield.Height / 2,
		DoubleJumpAllowed: true,
	}
	g.obstacles.Reset()
	g.score = 0
	g.hits = 0
	g.tick = 0
	g.selectionElapsed = 0
}

// SelectVariant picks the bird and starts the run. Only the first trigger
// in PhaseSelecting has an effect; the return value reports whether this
// call was it.
func (g *Game) SelectVariant(v Variant) bool {
	if g.phase != PhaseSelecting || !v.Valid() {
		return false
	}
	g.start(v)
	return true
}

func (g *Game) start(v Variant) {
	g.variant = v
	g.phase = PhaseRunning
	g.selectionElapsed = 0
}

// Flap sets the bird's velocity to the jump impulse. Repeated calls within
// a tick do not stack. Ignored outside PhaseRunning.
func (g *Game) Flap() bool {
	if g.phase != PhaseRunning {
		return false
	}
	g.bird.Velocity = g.cfg.Physics.JumpImpulse
	g.bird.DoubleJumpAllowed = false
	return true
}

// Tick advances the game by one frame. In PhaseSelecting it only advances
// the selection clock; in PhaseEnded it changes nothing.
func (g *Game) Tick(elapsed time.Duration) StepResult {
	if elapsed <= 0 {
		elapsed = DefaultFrame
	}

	switch g.phase {
	case PhaseSelecting:
		g.selectionElapsed += elapsed
		if g.selectionElapsed >= g.cfg.Selection.Timeout {
			g.start(VariantA)
		}
		return StepResult{Snapshot: g.Snapshot()}
	case PhaseEnded:
		return StepResult{Snapshot: g.Snapshot()}
	}

	g.tick++
	g.integrate()
	g.obstacles.Spawn(g.rng)
	g.obstacles.Scroll()

	over := g.resolveObstacles()
	return StepResult{Snapshot: g.Snapshot(), GameOver: over}
}

// integrate applies gravity and the floor clamp. There is no ceiling.
func (g *Game) integrate() {
	g.bird.Velocity += g.cfg.Physics.Gravity
	g.bird.Y += g.bird.Velocity

	floor := g.cfg.Playfield.FloorY()
	if g.bird.Y+g.cfg.Bird.Height > floor {
		g.bird.Y = floor - g.cfg.Bird.Height
		g.bird.Velocity = 0
	}
}

// resolveObstacles walks the gates front to back. Each gate is checked for
// a collision first and only then for passage, so a passage on the same
// tick clears a strike taken on it. Processing stops as soon as the run
// ends.
func (g *Game) resolveObstacles() *GameOver {
	passed := 0
	for i, o := range g.obstacles.Items() {
		if g.collides(o) {
			g.hits++
			if g.hits >= StrikesToEnd {
				g.obstacles.dropFront(passed)
				return g.end()
			}
		}

		if i == passed && g.obstacles.OffScreen(o) {
			passed++
			g.score++
			g.hits = 0
		}
	}
	g.obstacles.dropFront(passed)
	return nil
}

// collides applies the buffered collision test. Exact ties do not collide.
func (g *Game) collides(o Obstacle) bool {
	gap := g.cfg.Obstacles.GapHeight
	tol := g.cfg.Collision.VerticalTolerance

	top := g.bird.Y
	bottom := g.bird.Y + g.cfg.Bird.Height
	outsideGap := top < o.GapAnchor-gap+tol || bottom > o.GapAnchor+gap+tol
	if !outsideGap {
		return false
	}
	return o.X < g.cfg.Bird.Width+g.cfg.Collision.HorizontalTolerance
}

func (g *Game) end() *GameOver {
	g.phase = PhaseEnded
	return &GameOver{
		Score:   g.score,
		Tick:    g.tick,
		Variant: g.variant,
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Bird returns a copy of the bird state.
func (g *Game) Bird() Bird {
	return g.bird
}

// Snapshot returns a copy of the state for rendering.
func (g *Game) Snapshot() Snapshot {
	var remaining time.Duration
	if g.phase == PhaseSelecting {
		remaining = max(g.cfg.Selection.Timeout-g.selectionElapsed, 0)
	}

	return Snapshot{
		Phase:              g.phase,
		Tick:               g.tick,
		Variant:            g.variant,
		BirdX:              g.cfg.Bird.X,
		BirdY:              g.bird.Y,
		BirdVelocity:       g.bird.Velocity,
		Obstacles:          g.obstacles.views(),
		Score:              g.score,
		Hits:               g.hits,
		GapHeight:          g.cfg.Obstacles.GapHeight,
		ObstacleWidth:      g.cfg.Obstacles.Width,
		BirdWidth:          g.cfg.Bird.Width,
		BirdHeight:         g.cfg.Bird.Height,
		FloorY:             g.cfg.Playfield.FloorY(),
		Width:              g.cfg.Playfield.Width,
		Height:             g.cfg.Playfield.Height,
		SelectionRemaining: remaining,
	}
}
