// Package session runs one play session: the platform field, the avatar and
// the strictly ordered per-frame pass that ties them together.
package session

import (
	"github.com/younwookim/hopper/internal/application/state"
	"github.com/younwookim/hopper/internal/application/system"
	"github.com/younwookim/hopper/internal/domain/entity"
	"github.com/younwookim/hopper/internal/infrastructure/config"
)

// Session owns all mutable simulation state. There is no global state; two
// sessions built from the same config and seed produce the same frames for
// the same inputs.
type Session struct {
	cfg *config.GameConfig

	field   *system.FieldSystem
	physics *system.PhysicsSystem
	input   *system.InputSystem
	avatar  *entity.Avatar

	state   state.GameState
	started bool
	frame   int
	camera  system.CameraMode
}

// New creates a session and lays out the starting field
func New(cfg *config.GameConfig, rng system.RNG) (*Session, error) {
	field, err := system.NewFieldSystem(cfg, rng)
	if err != nil {
		return nil, err
	}
	field.Initialize()

	a := cfg.Entities.Avatar
	d := cfg.Physics.Display

	return &Session{
		cfg:     cfg,
		field:   field,
		physics: system.NewPhysicsSystem(cfg),
		input:   system.NewInputSystem(cfg),
		avatar:  entity.NewAvatar(a.Width, a.Height, float64(d.ScreenWidth), float64(d.ScreenHeight)),
		state:   state.StateRunning,
	}, nil
}

// Update advances the session by one frame and returns what happened in it.
// Once frozen, Update does nothing.
//
// Order: recycle and spawn, platform behaviors, avatar input, landing checks,
// trajectory, camera, difficulty ramp.
func (s *Session) Update(in system.InputState) []system.Event {
	if s.state == state.StateFrozen {
		return nil
	}

	events := s.field.Recycle()

	s.field.UpdatePlatforms()

	s.input.UpdateAvatar(s.avatar, in)

	if landing, p := s.physics.ResolveLandings(s.avatar, s.field.Platforms()); landing.Landed {
		s.started = true
		events = append(events, system.LandedEvent{
			PlatformID: p.ID,
			OnSpring:   landing.OnSpring,
			Cloud:      p.IsCloud(),
		})
	}

	frozen := s.physics.ResolveTrajectory(s.avatar, s.started)

	s.camera, _ = s.physics.Reconcile(s.avatar, s.field)

	if ev, ok := s.field.Ramp(); ok {
		events = append(events, ev)
	}

	// The freezing frame still completes so the last picture is consistent
	if frozen {
		s.state = state.StateFrozen
		events = append(events, system.FrozenEvent{Frame: s.frame, Score: s.field.Score()})
	}

	s.frame++
	return events
}

// State returns StateRunning or StateFrozen
func (s *Session) State() state.GameState {
	return s.state
}

// Started reports whether the avatar has landed on any platform yet. Until
// then the bottom edge of the screen acts as a floor.
func (s *Session) Started() bool {
	return s.started
}

// Score returns the number of platforms recycled off the bottom edge
func (s *Session) Score() int {
	return s.field.Score()
}

// Frame returns the number of frames simulated so far
func (s *Session) Frame() int {
	return s.frame
}

// Avatar returns the simulated avatar
func (s *Session) Avatar() *entity.Avatar {
	return s.avatar
}

// Field returns the platform field manager
func (s *Session) Field() *system.FieldSystem {
	return s.field
}

// CameraMode returns what moved on the last simulated frame
func (s *Session) CameraMode() system.CameraMode {
	return s.camera
}

// Config returns the config the session was built from
func (s *Session) Config() *config.GameConfig {
	return s.cfg
}
