package config

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display  DisplayConfig  `json:"display"`
	Profiles ProfilesConfig `json:"profiles"`
	Camera   CameraConfig   `json:"camera"`
	Freeze   FreezeConfig   `json:"freeze"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

// ProfilesConfig holds the two jump profiles. The avatar uses Spring for the
// bounce that follows a spring landing and Normal otherwise.
type ProfilesConfig struct {
	Normal JumpProfile `json:"normal"`
	Spring JumpProfile `json:"spring"`
}

// JumpProfile parameterizes height = (t - Gravity*t*t) * BounceHeight
type JumpProfile struct {
	Gravity      float64 `json:"gravity"`
	BounceHeight float64 `json:"bounceHeight"`
}

type CameraConfig struct {
	// ScrollZone is the fraction of the screen height, measured from the top,
	// inside which a rising avatar stays pinned and the field scrolls instead.
	ScrollZone float64 `json:"scrollZone"`
}

type FreezeConfig struct {
	// Margin is how far below the floor the avatar's bottom edge may fall
	// before the session freezes (pixels).
	Margin float64 `json:"margin"`
}
