package system

import (
	"github.com/younwookim/hopper/internal/domain/entity"
	"github.com/younwookim/hopper/internal/infrastructure/config"
)

// Profile indexes into a ProfileTable
const (
	ProfileNormal = 0
	ProfileSpring = 1
)

// ProfileTable holds the jump profiles indexed by ProfileNormal/ProfileSpring
type ProfileTable struct {
	Gravity      [2]float64
	BounceHeight [2]float64
}

// LoadProfiles converts the physics config into a ProfileTable
func LoadProfiles(cfg *config.PhysicsConfig) ProfileTable {
	return ProfileTable{
		Gravity: [2]float64{
			ProfileNormal: cfg.Profiles.Normal.Gravity,
			ProfileSpring: cfg.Profiles.Spring.Gravity,
		},
		BounceHeight: [2]float64{
			ProfileNormal: cfg.Profiles.Normal.BounceHeight,
			ProfileSpring: cfg.Profiles.Spring.BounceHeight,
		},
	}
}

// Height returns the trajectory value after ticks frames under the given profile
func (t ProfileTable) Height(ticks, profile int) float64 {
	return entity.Trajectory(ticks, t.Gravity[profile], t.BounceHeight[profile])
}
