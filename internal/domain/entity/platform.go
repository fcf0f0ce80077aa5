package entity

import "image/color"

// Platform is a single landing surface in the field
type Platform struct {
	Body
	ID EntityID

	// Parity alternates horizontal direction for movers: even moves right.
	Parity int
	Caps   Capability
	Spring Spring

	// Consumed is set by any landing. Only clouds act on it.
	Consumed bool

	Tint color.RGBA
}

// NewPlatform creates a platform with no capabilities
func NewPlatform(id EntityID, x, y, width, height float64) *Platform {
	return &Platform{
		Body: Body{X: x, Y: y, Width: width, Height: height},
		ID:   id,
		Tint: color.RGBA{A: 255},
	}
}

// AttachSpring gives the platform its spring, centered on the top edge
func (p *Platform) AttachSpring(width, armedHeight, poppedHeight float64) {
	p.Caps = p.Caps.With(CapSpring)
	p.Spring = Spring{
		Body:         Body{Width: width, Height: armedHeight},
		ArmedHeight:  armedHeight,
		PoppedHeight: poppedHeight,
	}
	p.ManageSpring()
}

// HasSpring reports whether the spring capability is still active
func (p *Platform) HasSpring() bool {
	return p.Caps.Has(CapSpring)
}

// IsCloud reports whether the platform is a cloud
func (p *Platform) IsCloud() bool {
	return p.Caps.Has(CapCloud)
}

// Move steps a mover horizontally, reversing once it crosses a screen edge
func (p *Platform) Move(speed, screenW float64) {
	if p.X < 0 || p.Right() > screenW {
		p.Parity++
	}

	if p.Parity%2 == 0 {
		p.X += speed
	} else {
		p.X -= speed
	}
}

// ManageCloud retires a consumed cloud by parking it off screen. The platform
// stays in the field until it scrolls past the bottom like any other.
func (p *Platform) ManageCloud(deadLetterX float64) {
	if !p.Consumed {
		return
	}
	p.Caps = p.Caps.Without(CapMover).Without(CapSpring)
	p.X = deadLetterX
}

// ManageSpring moves the spring with the platform
func (p *Platform) ManageSpring() {
	p.Spring.X = p.CenterX() - p.Spring.Width/2
	p.Spring.Y = p.Y - p.Spring.Height
}

// Update runs each present capability once: move, then cloud, then spring
func (p *Platform) Update(speed, screenW, deadLetterX float64) {
	if p.Caps.Has(CapMover) {
		p.Move(speed, screenW)
	}
	if p.Caps.Has(CapCloud) {
		p.ManageCloud(deadLetterX)
	}
	if p.Caps.Has(CapSpring) {
		p.ManageSpring()
	}
}
