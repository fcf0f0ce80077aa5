package playing

import (
	"github.com/charmbracelet/harmonica"

	"github.com/younwookim/hopper/internal/domain/entity"
)

const (
	springFrequency = 9.0
	springDamping   = 0.3
)

// springAnimator eases each spring's drawn height toward its real height.
// The domain height switches instantly on a pop; only the picture wobbles.
type springAnimator struct {
	spring harmonica.Spring
	pos    map[entity.EntityID]float64
	vel    map[entity.EntityID]float64
}

func newSpringAnimator(fps int) *springAnimator {
	return &springAnimator{
		spring: harmonica.NewSpring(harmonica.FPS(fps), springFrequency, springDamping),
		pos:    make(map[entity.EntityID]float64),
		vel:    make(map[entity.EntityID]float64),
	}
}

// Step advances the animation for every platform that carries a spring
func (s *springAnimator) Step(platforms []*entity.Platform) {
	for _, p := range platforms {
		if !p.HasSpring() {
			continue
		}
		pos, ok := s.pos[p.ID]
		if !ok {
			s.pos[p.ID] = p.Spring.Height
			continue
		}
		pos, vel := s.spring.Update(pos, s.vel[p.ID], p.Spring.Height)
		s.pos[p.ID] = pos
		s.vel[p.ID] = vel
	}
}

// Height returns the drawn height for the platform's spring
func (s *springAnimator) Height(p *entity.Platform) float64 {
	if h, ok := s.pos[p.ID]; ok {
		return h
	}
	return p.Spring.Height
}

// Forget drops animation state for a platform that left the field
func (s *springAnimator) Forget(id entity.EntityID) {
	delete(s.pos, id)
	delete(s.vel, id)
}

func (s *springAnimator) Len() int {
	return len(s.pos)
}
