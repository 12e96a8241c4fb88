package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Visual characters for rendering
const (
	PipeChar      = '█'
	PipeCapTop    = '▀'
	PipeCapBottom = '▄'
	GroundTopChar = '═'
	GroundChar    = '░'
	OffTopChar    = '^'
)

// birdLook is how a variant is drawn.
type birdLook struct {
	head  rune
	body  rune
	color core.Color
}

var birdLooks = map[flappy.Variant]birdLook{
	flappy.VariantA: {head: '▶', body: '●', color: core.ColorBrightYellow},
	flappy.VariantB: {head: '►', body: '◆', color: core.ColorBrightCyan},
}

// Draw renders a snapshot into dst. It only reads the snapshot; the
// playfield is scaled to fill the screen.
func Draw(dst *core.Screen, s flappy.Snapshot, fx Effects) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	sc := core.NewScaler(s.Width, s.Height, dst.Width(), dst.Height())
	floorRow := core.Clamp(sc.Y(s.FloorY), 0, dst.Height())

	drawGround(dst, floorRow)

	if s.Phase == flappy.PhaseSelecting {
		drawSelection(dst, s, fx)
		return
	}

	for _, o := range s.Obstacles {
		drawPipe(dst, sc, s, o, floorRow)
	}
	// The bird goes over the HUD so the off-top marker stays visible.
	drawHUD(dst, s)
	drawBird(dst, sc, s)

	if s.Phase == flappy.PhaseEnded {
		drawGameOver(dst, s, fx)
	}
}

func drawGround(dst *core.Screen, floorRow int) {
	if floorRow >= dst.Height() {
		return
	}
	dst.DrawHLine(0, floorRow, dst.Width(), GroundTopChar, core.ColorGreen)
	dst.FillRect(core.NewRect(0, floorRow+1, dst.Width(), dst.Height()-floorRow-1), GroundChar, core.ColorOrange)
}

// drawPipe draws the top section over [0, anchor) and the bottom section
// over [anchor+gap, floor).
func drawPipe(dst *core.Screen, sc core.Scaler, s flappy.Snapshot, o flappy.ObstacleView, floorRow int) {
	x := sc.X(o.X)
	w := sc.W(s.ObstacleWidth)

	topEnd := core.Clamp(sc.Y(o.GapAnchor), 0, floorRow)
	if topEnd > 0 {
		dst.FillRect(core.NewRect(x, 0, w, topEnd), PipeChar, core.ColorGreen)
		dst.DrawHLine(x, topEnd-1, w, PipeCapTop, core.ColorBrightGreen)
	}

	bottomStart := core.Clamp(sc.Y(o.GapAnchor+s.GapHeight), 0, floorRow)
	if bottomStart < floorRow {
		dst.FillRect(core.NewRect(x, bottomStart, w, floorRow-bottomStart), PipeChar, core.ColorGreen)
		dst.DrawHLine(x, bottomStart, w, PipeCapBottom, core.ColorBrightGreen)
	}
}

func drawBird(dst *core.Screen, sc core.Scaler, s flappy.Snapshot) {
	look := birdLooks[s.Variant]
	x := sc.X(s.BirdX)
	y := sc.Y(s.BirdY)
	w := sc.W(s.BirdWidth)
	h := sc.H(s.BirdHeight)

	if y+h <= 0 {
		// Above the playfield: show where it is.
		dst.SetColored(x+w/2, 0, OffTopChar, look.color)
		return
	}
	paintBird(dst, x, y, w, h, look)
}

func paintBird(dst *core.Screen, x, y, w, h int, look birdLook) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			r := look.body
			if dx == w-1 && dy == 0 {
				r = look.head
			}
			dst.SetColored(x+dx, y+dy, r, look.color)
		}
	}
}

func drawHUD(dst *core.Screen, s flappy.Snapshot) {
	score := fmt.Sprintf(" Score: %d ", s.Score)
	dst.DrawText(1, 0, score, core.ColorBrightWhite)
	if s.Hits > 0 && s.Phase == flappy.PhaseRunning {
		dst.DrawText(1+len(score), 0, " HIT! ", core.ColorBrightRed)
	}
}

func drawSelection(dst *core.Screen, s flappy.Snapshot, fx Effects) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-3, "Choose your bird!", core.ColorBrightWhite)
	dst.DrawTextCentered(mid-1, "Press 1 for Bird 1 or 2 for Bird 2", core.ColorWhite)

	cx := dst.Width() / 2
	birdY := mid + 1 + fx.BirdBob
	paintBird(dst, cx-8, birdY, 2, 1, birdLooks[flappy.VariantA])
	paintBird(dst, cx+6, birdY, 2, 1, birdLooks[flappy.VariantB])
	dst.DrawText(cx-9, mid+3, "Bird 1", core.ColorYellow)
	dst.DrawText(cx+5, mid+3, "Bird 2", core.ColorCyan)

	countdown := fmt.Sprintf("Starting with Bird 1 in %.1fs", s.SelectionRemaining.Seconds())
	dst.DrawTextCentered(mid+5, countdown, core.ColorGray)
}

func drawGameOver(dst *core.Screen, s flappy.Snapshot, fx Effects) {
	title := "GAME OVER"
	score := fmt.Sprintf("Your score: %d", s.Score)
	hint := "Press R to play again"

	boxW := len(hint) + 4
	boxH := 7
	boxX := (dst.Width() - boxW) / 2
	target := (dst.Height() - boxH) / 2
	// Slides down from above the screen.
	boxY := -boxH + int(float64(target+boxH)*fx.BannerProgress+0.5)

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightRed)
	dst.DrawText(boxX+(boxW-len(score))/2, boxY+3, score, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-len(hint))/2, boxY+5, hint, core.ColorGray)
}
