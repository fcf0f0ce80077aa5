package system

import (
	"github.com/younwookim/hopper/internal/domain/entity"
	"github.com/younwookim/hopper/internal/infrastructure/config"
)

// CameraMode says what moved during camera reconciliation
type CameraMode int

const (
	// CameraAvatar means the avatar moved and the field stayed put
	CameraAvatar CameraMode = iota
	// CameraScroll means the field scrolled and the avatar stayed put
	CameraScroll
)

// String returns the string representation of the camera mode
func (m CameraMode) String() string {
	switch m {
	case CameraAvatar:
		return "Avatar"
	case CameraScroll:
		return "Scroll"
	default:
		return "Unknown"
	}
}

// Scroller is anything whose contents can be shifted vertically
type Scroller interface {
	Shift(dy float64)
}

// PhysicsSystem resolves landings, advances the jump trajectory and decides
// whether the avatar or the world moves each frame.
type PhysicsSystem struct {
	profiles     ProfileTable
	floor        float64
	freezeMargin float64
	maxDrop      float64 // Largest downward step per frame, so the avatar cannot skip a platform
	scrollLine   float64
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.GameConfig) *PhysicsSystem {
	screenH := float64(cfg.Physics.Display.ScreenHeight)
	return &PhysicsSystem{
		profiles:     LoadProfiles(cfg.Physics),
		floor:        screenH,
		freezeMargin: cfg.Physics.Freeze.Margin,
		maxDrop:      cfg.Entities.Platform.Height - 1,
		scrollLine:   screenH * cfg.Physics.Camera.ScrollZone,
	}
}

// Profiles returns the jump profile table
func (s *PhysicsSystem) Profiles() ProfileTable {
	return s.profiles
}

// ResolveLandings checks the avatar against every platform in collection
// order. If more than one platform qualifies in the same frame the last one
// checked wins.
func (s *PhysicsSystem) ResolveLandings(avatar *entity.Avatar, platforms []*entity.Platform) (entity.Landing, *entity.Platform) {
	var (
		landing entity.Landing
		hit     *entity.Platform
	)
	for _, p := range platforms {
		if l := avatar.CheckLanding(p); l.Landed {
			landing = l
			hit = p
		}
	}
	return landing, hit
}

// ResolveTrajectory advances the jump by one frame and reports whether the
// avatar has dropped far enough below the floor to freeze the session.
//
// Until the first landing (started == false) the floor bounces the avatar.
// A pending bounce restarts the parabola at tick 1.
func (s *PhysicsSystem) ResolveTrajectory(avatar *entity.Avatar, started bool) bool {
	avatar.Ticks++
	avatar.PreviousHeight = avatar.CurrentHeight

	frozen := avatar.Bottom > s.floor+s.freezeMargin

	if avatar.Bottom > s.floor && !started {
		avatar.Bounce = true
	}
	if avatar.Bounce {
		avatar.Ticks = 1
		avatar.PreviousHeight = 0
	}

	avatar.CurrentHeight = s.profiles.Height(avatar.Ticks, avatar.Profile())
	avatar.Bounce = false

	return frozen
}

// Reconcile applies this frame's vertical motion. A rising avatar inside the
// scroll zone stays pinned and the field scrolls down instead; otherwise the
// avatar moves. The returned delta is the frame's motion after clamping.
func (s *PhysicsSystem) Reconcile(avatar *entity.Avatar, field Scroller) (CameraMode, float64) {
	delta := avatar.CurrentHeight - avatar.PreviousHeight
	if delta < -s.maxDrop {
		delta = -s.maxDrop
	}

	if avatar.Y <= s.scrollLine && avatar.Rising {
		field.Shift(delta)
		return CameraScroll, delta
	}

	avatar.Y -= delta
	return CameraAvatar, delta
}
