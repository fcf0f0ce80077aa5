package entity

// Spring is the boost pad a platform may carry. It lives inline in its
// platform and is repositioned from it every frame, so it never needs a
// reference back.
type Spring struct {
	Body
	ArmedHeight  float64
	PoppedHeight float64
	Popped       bool
}

// Pop switches the spring to its popped (extended) state
func (s *Spring) Pop() {
	s.Popped = true
	s.Height = s.PoppedHeight
}
