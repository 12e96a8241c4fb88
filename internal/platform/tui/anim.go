package tui

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	bobSeconds    = 0.6 // half period of the selection-screen bob
	bobAmplitude  = 1   // rows
	bannerSeconds = 0.8
)

// Effects are presentation-only offsets handed to Draw.
type Effects struct {
	BirdBob        int     // row offset of the birds on the selection screen
	BannerProgress float64 // 0 = banner above the screen, 1 = centered
}

// Animator drives the cosmetic tweens. It never touches game state.
type Animator struct {
	bob    *gween.Tween
	bobUp  bool
	bobVal float32

	banner    *gween.Tween
	bannerVal float32
}

// NewAnimator creates an animator with the bob running and no banner.
func NewAnimator() *Animator {
	a := &Animator{}
	a.Reset()
	return a
}

// Reset restarts the bob and hides the game-over banner.
func (a *Animator) Reset() {
	a.bobUp = false
	a.bob = gween.New(-bobAmplitude, bobAmplitude, bobSeconds, ease.InOutSine)
	a.bobVal = -bobAmplitude
	a.banner = nil
	a.bannerVal = 0
}

// ShowBanner starts the game-over banner slide-in.
func (a *Animator) ShowBanner() {
	a.banner = gween.New(0, 1, bannerSeconds, ease.OutBounce)
	a.bannerVal = 0
}

// Update advances all tweens by dt.
func (a *Animator) Update(dt time.Duration) {
	sec := float32(dt.Seconds())

	val, done := a.bob.Update(sec)
	a.bobVal = val
	if done {
		from, to := float32(-bobAmplitude), float32(bobAmplitude)
		if !a.bobUp {
			from, to = to, from
		}
		a.bobUp = !a.bobUp
		a.bob = gween.New(from, to, bobSeconds, ease.InOutSine)
	}

	if a.banner != nil {
		a.bannerVal, _ = a.banner.Update(sec)
	}
}

// Effects returns the current offsets.
func (a *Animator) Effects() Effects {
	fx := Effects{BirdBob: roundToInt(a.bobVal)}
	if a.banner != nil {
		fx.BannerProgress = float64(a.bannerVal)
	}
	return fx
}

func roundToInt(v float32) int {
	if v < 0 {
		return -int(-v + 0.5)
	}
	return int(v + 0.5)
}
