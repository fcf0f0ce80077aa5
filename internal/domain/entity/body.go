package entity

// Body is an axis-aligned box in screen space. Y grows downward, so Y is the
// top edge and Bottom() the bottom edge.
type Body struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the x coordinate of the right edge
func (b *Body) Right() float64 {
	return b.X + b.Width
}

// Bottom returns the y coordinate of the bottom edge
func (b *Body) Bottom() float64 {
	return b.Y + b.Height
}

// CenterX returns the horizontal center
func (b *Body) CenterX() float64 {
	return b.X + b.Width/2
}

// SpanOverlaps reports whether the horizontal span [left, right] touches the
// body's own span. Touching edges count as overlap.
func (b *Body) SpanOverlaps(left, right float64) bool {
	return right >= b.X && left <= b.X+b.Width
}

// BandContains reports whether y lies within the body's vertical extent,
// edges included.
func (b *Body) BandContains(y float64) bool {
	return y >= b.Y && y <= b.Y+b.Height
}
