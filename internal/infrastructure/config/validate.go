package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned (wrapped) for any configuration that would make
// platform generation or the jump physics degenerate.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks every precondition the simulation relies on.
func (c *GameConfig) Validate() error {
	if c.Physics == nil || c.Entities == nil || c.Field == nil {
		return fmt.Errorf("%w: missing section", ErrInvalidConfig)
	}

	d := c.Physics.Display
	if d.ScreenWidth <= 0 || d.ScreenHeight <= 0 {
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, d.ScreenWidth, d.ScreenHeight)
	}
	if d.Scale < 1 {
		return fmt.Errorf("%w: display scale %d", ErrInvalidConfig, d.Scale)
	}
	if d.Framerate <= 0 {
		return fmt.Errorf("%w: framerate %d", ErrInvalidConfig, d.Framerate)
	}

	for name, p := range map[string]JumpProfile{
		"normal": c.Physics.Profiles.Normal,
		"spring": c.Physics.Profiles.Spring,
	} {
		if p.Gravity <= 0 || p.BounceHeight <= 0 {
			return fmt.Errorf("%w: %s profile gravity=%v bounceHeight=%v", ErrInvalidConfig, name, p.Gravity, p.BounceHeight)
		}
	}
	if z := c.Physics.Camera.ScrollZone; z <= 0 || z > 1 {
		return fmt.Errorf("%w: camera scroll zone %v", ErrInvalidConfig, z)
	}
	if c.Physics.Freeze.Margin < 0 {
		return fmt.Errorf("%w: freeze margin %v", ErrInvalidConfig, c.Physics.Freeze.Margin)
	}

	e := c.Entities
	if e.Avatar.Width <= 0 || e.Avatar.Height <= 0 || e.Avatar.Speed < 0 {
		return fmt.Errorf("%w: avatar %vx%v speed %v", ErrInvalidConfig, e.Avatar.Width, e.Avatar.Height, e.Avatar.Speed)
	}
	if e.Platform.Width <= 0 || e.Platform.Height <= 0 || e.Platform.Speed < 0 {
		return fmt.Errorf("%w: platform %vx%v speed %v", ErrInvalidConfig, e.Platform.Width, e.Platform.Height, e.Platform.Speed)
	}
	if e.Platform.Width > float64(d.ScreenWidth) {
		return fmt.Errorf("%w: platform wider than screen", ErrInvalidConfig)
	}
	if e.Spring.Width <= 0 || e.Spring.Height <= 0 || e.Spring.PoppedHeight <= 0 {
		return fmt.Errorf("%w: spring %vx%v popped %v", ErrInvalidConfig, e.Spring.Width, e.Spring.Height, e.Spring.PoppedHeight)
	}
	if e.Spring.Width > e.Platform.Width {
		return fmt.Errorf("%w: spring wider than platform", ErrInvalidConfig)
	}

	f := c.Field
	if f.Spawn.MinPlatformCount < PlatformFloor {
		return fmt.Errorf("%w: min platform count %d below %d", ErrInvalidConfig, f.Spawn.MinPlatformCount, PlatformFloor)
	}
	if f.Spawn.PlatformCount < f.Spawn.MinPlatformCount {
		return fmt.Errorf("%w: platform count %d below floor %d", ErrInvalidConfig, f.Spawn.PlatformCount, f.Spawn.MinPlatformCount)
	}
	band := float64(d.ScreenHeight) / float64(f.Spawn.PlatformCount)
	if f.Spawn.BandGuard < e.Platform.Height || band <= f.Spawn.BandGuard {
		return fmt.Errorf("%w: band %v cannot fit guard %v for platform height %v", ErrInvalidConfig, band, f.Spawn.BandGuard, e.Platform.Height)
	}
	if f.Spawn.BandOffset < 0 || f.Spawn.BandOffset+e.Platform.Height > f.Spawn.BandGuard {
		return fmt.Errorf("%w: band offset %v", ErrInvalidConfig, f.Spawn.BandOffset)
	}
	if f.Spawn.Jitter < 0 || f.Spawn.Jitter >= 1 {
		return fmt.Errorf("%w: spawn jitter %v", ErrInvalidConfig, f.Spawn.Jitter)
	}
	if f.Spawn.Ceiling > 0 {
		return fmt.Errorf("%w: spawn ceiling %v is on screen", ErrInvalidConfig, f.Spawn.Ceiling)
	}
	if f.Odds.Cloud < 0 || f.Odds.Spring < 0 || f.Odds.Move < 0 {
		return fmt.Errorf("%w: negative odds cloud=%v spring=%v move=%v", ErrInvalidConfig, f.Odds.Cloud, f.Odds.Spring, f.Odds.Move)
	}
	if f.Ramp.Every <= 0 || f.Ramp.Step <= 0 || f.Ramp.Step%f.Ramp.Every != 0 {
		return fmt.Errorf("%w: ramp every=%d step=%d", ErrInvalidConfig, f.Ramp.Every, f.Ramp.Step)
	}
	if f.Ramp.SpeedIncrement < 0 || f.Ramp.OddsDivisor <= 0 {
		return fmt.Errorf("%w: ramp speed increment %v odds divisor %v", ErrInvalidConfig, f.Ramp.SpeedIncrement, f.Ramp.OddsDivisor)
	}

	return nil
}
