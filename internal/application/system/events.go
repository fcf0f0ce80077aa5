package system

import "github.com/younwookim/hopper/internal/domain/entity"

// Event is something notable that happened during a frame
type Event interface {
	isEvent()
}

// LandedEvent is emitted when the avatar bounces off a platform
type LandedEvent struct {
	PlatformID entity.EntityID
	OnSpring   bool
	Cloud      bool
}

func (LandedEvent) isEvent() {}

// RecycledEvent is emitted when a platform leaves through the bottom
type RecycledEvent struct {
	PlatformID entity.EntityID
	Score      int // Score after this platform was counted
}

func (RecycledEvent) isEvent() {}

// SpawnedEvent is emitted when a replacement platform is created
type SpawnedEvent struct {
	PlatformID entity.EntityID
	Y          float64
	Caps       entity.Capability
}

func (SpawnedEvent) isEvent() {}

// RampEvent is emitted when the difficulty ramp fires
type RampEvent struct {
	Score       int
	TargetCount int
	Speed       float64
	CloudOdds   float64
	MoveOdds    float64
}

func (RampEvent) isEvent() {}

// FrozenEvent is emitted once, on the frame the session freezes
type FrozenEvent struct {
	Frame int
	Score int
}

func (FrozenEvent) isEvent() {}
