package config

// Default returns the stock tuning for an 850x800 canvas. It matches the
// JSON files shipped in cmd/game/configs.
func Default() *GameConfig {
	return &GameConfig{
		Physics: &PhysicsConfig{
			Display: DisplayConfig{
				ScreenWidth:  850,
				ScreenHeight: 800,
				Scale:        1,
				Framerate:    60,
			},
			Profiles: ProfilesConfig{
				Normal: JumpProfile{Gravity: 1.0 / 80, BounceHeight: 12},
				Spring: JumpProfile{Gravity: 1.0 / 200, BounceHeight: 24},
			},
			Camera: CameraConfig{ScrollZone: 0.25},
			Freeze: FreezeConfig{Margin: 15},
		},
		Entities: &EntitiesConfig{
			Avatar: AvatarConfig{
				Width:  35,
				Height: 50,
				Speed:  9,
				Color:  RGB{R: 103, G: 80, B: 179},
			},
			Platform: PlatformConfig{
				Width:     95,
				Height:    14,
				Roundness: 6,
				Speed:     3,
				Color:     RGB{},
				CloudTint: RGB{R: 255, G: 255, B: 255},
			},
			Spring: SpringConfig{
				Width:        13,
				Height:       8,
				PoppedHeight: 14,
				Color:        RGB{R: 255},
			},
		},
		Field: &FieldConfig{
			Spawn: SpawnConfig{
				PlatformCount:    12,
				MinPlatformCount: 7,
				BandGuard:        19,
				BandOffset:       5,
				Ceiling:          -20,
				Jitter:           0.25,
				DeadLetterOffset: 100,
			},
			Odds: OddsConfig{
				Cloud:  1.7,
				Spring: 1.08,
				Move:   1.8,
			},
			Ramp: RampConfig{
				Every:          50,
				Step:           100,
				SpeedIncrement: 0.5,
				OddsThreshold:  100,
				OddsDivisor:    50,
			},
		},
	}
}
