package system

import (
	"image/color"

	"github.com/younwookim/hopper/internal/domain/entity"
	"github.com/younwookim/hopper/internal/infrastructure/config"
)

// Odds are the capability roll parameters. A roll succeeds when
// rand*odds >= 1.
type Odds struct {
	Cloud  float64
	Spring float64
	Move   float64
}

// FieldSystem owns the live platforms: initial layout, recycling past the
// bottom edge, per-frame platform behavior, scoring and the difficulty ramp.
//
// Platforms are kept in spawn order. The front is the lowest platform (the
// next to be recycled) and the back is the topmost.
type FieldSystem struct {
	cfg *config.GameConfig
	rng RNG

	platforms []*entity.Platform
	nextID    entity.EntityID

	targetCount int
	speed       float64
	odds        Odds

	score     int
	lastScore int

	screenW     float64
	screenH     float64
	deadLetterX float64
	tint        color.RGBA
	cloudTint   color.RGBA
}

// NewFieldSystem creates a field system. The config is validated first so
// generation never runs on degenerate parameters.
func NewFieldSystem(cfg *config.GameConfig, rng RNG) (*FieldSystem, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	screenW := float64(cfg.Physics.Display.ScreenWidth)
	return &FieldSystem{
		cfg:         cfg,
		rng:         rng,
		nextID:      1,
		targetCount: cfg.Field.Spawn.PlatformCount,
		speed:       cfg.Entities.Platform.Speed,
		odds: Odds{
			Cloud:  cfg.Field.Odds.Cloud,
			Spring: cfg.Field.Odds.Spring,
			Move:   cfg.Field.Odds.Move,
		},
		screenW:     screenW,
		screenH:     float64(cfg.Physics.Display.ScreenHeight),
		deadLetterX: screenW + cfg.Field.Spawn.DeadLetterOffset,
		tint:        cfg.Entities.Platform.Color.Color(),
		cloudTint:   cfg.Entities.Platform.CloudTint.Color(),
	}, nil
}

// Initialize lays out the starting platforms, one per horizontal band of the
// screen. Each platform lands at a random offset inside its band, shrunk by
// the band guard so neighbours can never touch.
func (f *FieldSystem) Initialize() {
	spawn := f.cfg.Field.Spawn
	band := f.BandHeight()

	f.platforms = make([]*entity.Platform, 0, f.targetCount)
	for i := 0; i < f.targetCount; i++ {
		y := f.rng.Float64()*(band-spawn.BandGuard) + spawn.BandOffset + float64(i)*band
		p := f.newPlatform(y)
		f.platforms = append([]*entity.Platform{p}, f.platforms...)
	}
}

// Recycle removes every platform whose top edge is below the screen, scoring
// one point each. While the field is under its target count, each removal is
// replaced by a new platform above the current topmost.
func (f *FieldSystem) Recycle() []Event {
	var events []Event

	for i := 0; i < len(f.platforms); {
		p := f.platforms[i]
		if p.Y <= f.screenH {
			i++
			continue
		}

		f.score++
		f.platforms = append(f.platforms[:i], f.platforms[i+1:]...)
		events = append(events, RecycledEvent{PlatformID: p.ID, Score: f.score})

		if len(f.platforms) < f.targetCount {
			np := f.spawnAbove()
			events = append(events, SpawnedEvent{PlatformID: np.ID, Y: np.Y, Caps: np.Caps})
		}
	}

	return events
}

// UpdatePlatforms runs each platform's capabilities for one frame
func (f *FieldSystem) UpdatePlatforms() {
	for _, p := range f.platforms {
		p.Update(f.speed, f.screenW, f.deadLetterX)
	}
}

// Shift moves every platform down by dy (negative moves them up)
func (f *FieldSystem) Shift(dy float64) {
	for _, p := range f.platforms {
		p.Y += dy
	}
}

// Ramp raises the difficulty. It only acts on the first frame the score sits
// on a multiple of Ramp.Every: every Ramp.Step points the target count drops
// (down to the floor) and platforms speed up, and from Ramp.OddsThreshold on
// the cloud and move odds are re-rolled against the current score.
func (f *FieldSystem) Ramp() (RampEvent, bool) {
	defer func() { f.lastScore = f.score }()

	r := f.cfg.Field.Ramp
	if f.score%r.Every != 0 || f.score == f.lastScore {
		return RampEvent{}, false
	}

	if f.score%r.Step == 0 {
		if f.targetCount > f.cfg.Field.Spawn.MinPlatformCount {
			f.targetCount--
		}
		f.speed += r.SpeedIncrement
	}

	// Re-rolled from scratch each time, so odds can go down between ramps.
	if f.score >= r.OddsThreshold {
		f.odds.Cloud = f.rng.Float64() * float64(f.score) / r.OddsDivisor
		f.odds.Move = f.rng.Float64() * float64(f.score) / r.OddsDivisor
	}

	return RampEvent{
		Score:       f.score,
		TargetCount: f.targetCount,
		Speed:       f.speed,
		CloudOdds:   f.odds.Cloud,
		MoveOdds:    f.odds.Move,
	}, true
}

// Platforms returns the live platforms, lowest first. The slice is owned by
// the field and is only valid until the next Recycle.
func (f *FieldSystem) Platforms() []*entity.Platform {
	return f.platforms
}

// Score returns the number of platforms that have left through the bottom
func (f *FieldSystem) Score() int {
	return f.score
}

// TargetCount returns the number of platforms the field tries to keep alive
func (f *FieldSystem) TargetCount() int {
	return f.targetCount
}

// Speed returns the current horizontal speed of moving platforms
func (f *FieldSystem) Speed() float64 {
	return f.speed
}

// Odds returns the current capability odds
func (f *FieldSystem) Odds() Odds {
	return f.odds
}

// BandHeight returns the vertical spacing unit for the current target count
func (f *FieldSystem) BandHeight() float64 {
	return f.screenH / float64(f.targetCount)
}

// spawnAbove appends a replacement one band (plus jitter) above the topmost
// platform, never lower than the spawn ceiling.
func (f *FieldSystem) spawnAbove() *entity.Platform {
	spawn := f.cfg.Field.Spawn
	band := f.BandHeight()

	top := spawn.Ceiling
	if n := len(f.platforms); n > 0 {
		top = f.platforms[n-1].Y
	}

	spread := band * spawn.Jitter
	y := top - band - (f.rng.Float64()*spread - spread/2)
	if y > spawn.Ceiling {
		y = spawn.Ceiling
	}

	p := f.newPlatform(y)
	f.platforms = append(f.platforms, p)
	return p
}

func (f *FieldSystem) newPlatform(y float64) *entity.Platform {
	w := f.cfg.Entities.Platform.Width
	x := f.rng.Float64() * (f.screenW - w)

	p := entity.NewPlatform(f.nextID, x, y, w, f.cfg.Entities.Platform.Height)
	p.Tint = f.tint
	f.nextID++

	f.assignAttributes(p)
	return p
}

// assignAttributes rolls the three capabilities, in order cloud, spring, mover
func (f *FieldSystem) assignAttributes(p *entity.Platform) {
	if f.roll(f.odds.Cloud) {
		p.Caps = p.Caps.With(entity.CapCloud)
		p.Tint = f.cloudTint
	}

	if f.roll(f.odds.Spring) {
		s := f.cfg.Entities.Spring
		p.AttachSpring(s.Width, s.Height, s.PoppedHeight)
	}

	if f.roll(f.odds.Move) {
		p.Caps = p.Caps.With(entity.CapMover)
		p.Parity = int(f.rng.Float64() * 2)
	}
}

func (f *FieldSystem) roll(odds float64) bool {
	return f.rng.Float64()*odds >= 1
}
