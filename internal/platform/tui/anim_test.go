package tui

import (
	"testing"
	"time"
)

func TestAnimatorBobStaysInRange(t *testing.T) {
	a := NewAnimator()
	seen := map[int]bool{}

	for i := 0; i < 200; i++ {
		a.Update(time.Second / 60)
		bob := a.Effects().BirdBob
		if bob < -bobAmplitude || bob > bobAmplitude {
			t.Fatalf("bob offset %d out of range", bob)
		}
		seen[bob] = true
	}

	if !seen[-bobAmplitude] || !seen[bobAmplitude] {
		t.Errorf("bob should swing both ways, saw %v", seen)
	}
}

func TestAnimatorBanner(t *testing.T) {
	a := NewAnimator()
	if a.Effects().BannerProgress != 0 {
		t.Error("banner should be hidden before ShowBanner")
	}

	a.ShowBanner()
	for i := 0; i < 120; i++ {
		a.Update(time.Second / 60)
	}
	if got := a.Effects().BannerProgress; got < 0.99 {
		t.Errorf("banner should have settled, progress = %v", got)
	}

	a.Reset()
	if a.Effects().BannerProgress != 0 {
		t.Error("Reset should hide the banner")
	}
}
