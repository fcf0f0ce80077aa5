package entity

// Avatar is the player-controlled character.
//
// Vertical motion is not integrated from a velocity. The jump is a closed-form
// parabola over Ticks, the frame count since the last bounce; CurrentHeight and
// PreviousHeight are consecutive samples of it and their difference is the
// distance moved this frame (positive is up).
type Avatar struct {
	X, Y          float64
	Width, Height float64

	// Derived bounds, refreshed by UpdateDerived
	Mid    float64
	Right  float64
	Bottom float64
	Rising bool

	// Bounce asks for the parabola to restart on the next trajectory step
	Bounce bool
	// OnSpring selects the spring jump profile
	OnSpring bool

	CurrentHeight  float64
	PreviousHeight float64
	Ticks          int
}

// Landing describes the outcome of a landing check
type Landing struct {
	Landed   bool
	OnSpring bool
}

// NewAvatar creates an avatar standing on the floor near the screen center.
func NewAvatar(width, height, screenW, screenH float64) *Avatar {
	a := &Avatar{
		Width:  width,
		Height: height,
		// Offset by half the height, not the width
		X: screenW/2 + height/2,
		Y: screenH - height,
	}
	a.UpdateDerived()
	return a
}

// UpdateDerived recomputes bounds and the rising phase from current state
func (a *Avatar) UpdateDerived() {
	a.Mid = a.X + a.Width/2
	a.Bottom = a.Y + a.Height
	a.Right = a.X + a.Width
	a.Rising = a.PreviousHeight < a.CurrentHeight
}

// ApplyHorizontalInput moves the avatar sideways, arms a bounce while up is
// held, and wraps it around the screen edges by its midpoint.
func (a *Avatar) ApplyHorizontalInput(left, right, up bool, speed, screenW float64) {
	if left {
		a.X -= speed
	}
	if right {
		a.X += speed
	}
	if up {
		a.Bounce = true
	}

	mid := a.X + a.Width/2
	if mid < 0 {
		a.X = screenW - a.Width/2
	} else if mid > screenW {
		a.X = -a.Width / 2
	}
	a.UpdateDerived()
}

// CheckLanding tests the avatar against one platform. A landing only counts
// while falling, with the avatar's bottom edge inside the platform's band and
// the horizontal spans touching. It marks the platform consumed, arms a
// bounce and picks the jump profile.
func (a *Avatar) CheckLanding(p *Platform) Landing {
	a.UpdateDerived()

	if a.Rising || !p.SpanOverlaps(a.X, a.Right) || !p.BandContains(a.Bottom) {
		return Landing{}
	}

	p.Consumed = true
	a.Bounce = true
	a.OnSpring = false

	if p.HasSpring() && p.Spring.SpanOverlaps(a.X, a.Right) {
		a.OnSpring = true
		p.Spring.Pop()
	}

	return Landing{Landed: true, OnSpring: a.OnSpring}
}

// Profile returns the jump profile index: 0 normal, 1 spring
func (a *Avatar) Profile() int {
	if a.OnSpring {
		return 1
	}
	return 0
}

// Trajectory returns the jump height after ticks frames:
// (ticks - gravity*ticks²) * multiplier.
func Trajectory(ticks int, gravity, multiplier float64) float64 {
	t := float64(ticks)
	return (t - gravity*(t*t)) * multiplier
}
