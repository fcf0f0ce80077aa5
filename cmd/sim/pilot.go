package main

import (
	"fmt"
	"math"

	"github.com/younwookim/hopper/internal/application/session"
	"github.com/younwookim/hopper/internal/application/system"
	"github.com/younwookim/hopper/internal/domain/entity"
)

// pilot scripts the input for a headless run
type pilot interface {
	Next(s *session.Session) system.InputState
}

func newPilot(name string) (pilot, error) {
	switch name {
	case "idle":
		return idlePilot{}, nil
	case "hop":
		return hopPilot{every: 45}, nil
	case "zigzag":
		return zigzagPilot{period: 120}, nil
	case "seek":
		return seekPilot{}, nil
	default:
		return nil, fmt.Errorf("unknown pattern %q (want idle, hop, zigzag or seek)", name)
	}
}

type idlePilot struct{}

func (idlePilot) Next(*session.Session) system.InputState {
	return system.InputState{}
}

// hopPilot holds up every few frames
type hopPilot struct {
	every int
}

func (p hopPilot) Next(s *session.Session) system.InputState {
	return system.InputState{Up: s.Frame()%p.every == 0}
}

// zigzagPilot sweeps left for half a period, then right
type zigzagPilot struct {
	period int
}

func (p zigzagPilot) Next(s *session.Session) system.InputState {
	left := s.Frame()%p.period < p.period/2
	return system.InputState{Left: left, Right: !left}
}

// seekPilot steers under the platform it is most likely to land on next:
// the nearest one above its feet while rising, below them while falling.
type seekPilot struct{}

func (seekPilot) Next(s *session.Session) system.InputState {
	a := s.Avatar()
	target := seekTarget(a, s.Field().Platforms(), float64(s.Config().Physics.Display.ScreenWidth))
	if target == nil {
		return system.InputState{}
	}

	speed := s.Config().Entities.Avatar.Speed
	dx := target.CenterX() - a.Mid
	switch {
	case math.Abs(dx) < speed:
		return system.InputState{}
	case dx < 0:
		return system.InputState{Left: true}
	default:
		return system.InputState{Right: true}
	}
}

func seekTarget(a *entity.Avatar, platforms []*entity.Platform, screenW float64) *entity.Platform {
	var (
		best     *entity.Platform
		bestDist = math.Inf(1)
	)
	for _, p := range platforms {
		// Parked clouds sit off screen
		if p.X > screenW {
			continue
		}
		dist := p.Y - a.Bottom
		if a.Rising {
			dist = -dist
		}
		if dist < 0 || dist >= bestDist {
			continue
		}
		best, bestDist = p, dist
	}
	return best
}
