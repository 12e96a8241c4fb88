package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Obstacle is a gate with one passable gap. Width and gap height are shared
// by all gates and live in the config.
type Obstacle struct {
	X         float64 // Left edge
	GapAnchor float64 // Reference y of the gap
}

// ObstacleQueue holds the live gates in spawn order, which is also their
// left-to-right order on screen. Gates leave only from the front.
type ObstacleQueue struct {
	items  []Obstacle
	cursor float64 // next-spawn cursor, independent of the gates themselves

	fieldW    float64
	fieldH    float64
	width     float64
	gapHeight float64
	speed     float64
}

// NewObstacleQueue creates an empty queue for the given playfield.
func NewObstacleQueue(field config.FlappyPlayfield, obs config.FlappyObstacles) *ObstacleQueue {
	q := &ObstacleQueue{
		items:     make([]Obstacle, 0, 4),
		fieldW:    field.Width,
		fieldH:    field.Height,
		width:     obs.Width,
		gapHeight: obs.GapHeight,
		speed:     obs.Speed,
	}
	q.Reset()
	return q
}

// Reset drops all gates and puts the spawn cursor back at the right edge.
func (q *ObstacleQueue) Reset() {
	q.items = q.items[:0]
	q.cursor = q.fieldW
}

// Spawn runs the spawn policy for one tick. Once the cursor has scrolled
// past the middle of the playfield a gate is appended at the right edge and
// the cursor rewinds; otherwise the cursor moves left. Reports whether a
// gate was added.
func (q *ObstacleQueue) Spawn(rng RandSource) bool {
	if q.cursor < q.fieldW/2 {
		q.Push(Obstacle{X: q.fieldW, GapAnchor: q.randomAnchor(rng)})
		q.cursor = q.fieldW
		return true
	}
	q.cursor -= q.speed
	return false
}

// randomAnchor picks a whole-pixel anchor in [0, height-gap).
func (q *ObstacleQueue) randomAnchor(rng RandSource) float64 {
	n := int(q.fieldH - q.gapHeight)
	if n <= 0 {
		return 0
	}
	return float64(rng.Intn(n))
}

// Scroll moves every gate left by the obstacle speed.
func (q *ObstacleQueue) Scroll() {
	for i := range q.items {
		q.items[i].X -= q.speed
	}
}

// OffScreen reports whether the gate's right edge is past the left edge.
func (q *ObstacleQueue) OffScreen(o Obstacle) bool {
	return o.X+q.width < 0
}

// Items returns the live gates, front first. Callers must not modify it.
func (q *ObstacleQueue) Items() []Obstacle {
	return q.items
}

// Len returns the number of live gates.
func (q *ObstacleQueue) Len() int {
	return len(q.items)
}

// Cursor returns the next-spawn cursor.
func (q *ObstacleQueue) Cursor() float64 {
	return q.cursor
}

// Push appends a gate at the back of the queue.
func (q *ObstacleQueue) Push(o Obstacle) {
	q.items = append(q.items, o)
}

// dropFront removes the first n gates.
func (q *ObstacleQueue) dropFront(n int) {
	if n <= 0 {
		return
	}
	q.items = append(q.items[:0], q.items[n:]...)
}

// views copies the gates for a snapshot.
func (q *ObstacleQueue) views() []ObstacleView {
	out := make([]ObstacleView, len(q.items))
	for i, o := range q.items {
		out[i] = ObstacleView{X: o.X, GapAnchor: o.GapAnchor}
	}
	return out
}
