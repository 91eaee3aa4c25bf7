package obj

import "github.com/milk9111/stormtravel/common"

// Fade eases an alpha value in 0..255 toward a target. Each step closes
// Rate*dt of the remaining gap.
type Fade struct {
	Alpha  float64
	Target float64
	Rate   float64
}

func NewFade(alpha, rate float64) *Fade {
	return &Fade{Alpha: alpha, Target: alpha, Rate: rate}
}

func (f *Fade) To(target float64) {
	f.Target = target
}

func (f *Fade) Step(dt float64) {
	f.Alpha = common.Smooth(f.Alpha, f.Target, f.Rate, dt)
}

// Visible reports whether the fade is above the invisibility threshold.
func (f *Fade) Visible() bool {
	return f.Alpha > 1
}

// Opacity returns the alpha as a 0..1 fraction.
func (f *Fade) Opacity() float64 {
	return min(max(f.Alpha/255, 0), 1)
}
