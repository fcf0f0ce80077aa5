package config

// PlatformFloor is the lowest platform count the difficulty ramp may reach.
const PlatformFloor = 7

// FieldConfig is the root config for field.json
type FieldConfig struct {
	Spawn SpawnConfig `json:"spawn"`
	Odds  OddsConfig  `json:"odds"`
	Ramp  RampConfig  `json:"ramp"`
}

type SpawnConfig struct {
	PlatformCount    int     `json:"platformCount"`
	MinPlatformCount int     `json:"minPlatformCount"`
	BandGuard        float64 `json:"bandGuard"`  // Shrinks the random offset range inside each initial band
	BandOffset       float64 `json:"bandOffset"` // Minimum offset from the top of each initial band
	Ceiling          float64 `json:"ceiling"`    // Replacements never spawn below this y
	Jitter           float64 `json:"jitter"`     // Fraction of band height; spacing varies by ±Jitter/2 of the band
	DeadLetterOffset float64 `json:"deadLetterOffset"`
}

// OddsConfig holds capability odds. A roll succeeds when rand*odds >= 1, so
// values at or below 1 disable the capability.
type OddsConfig struct {
	Cloud  float64 `json:"cloud"`
	Spring float64 `json:"spring"`
	Move   float64 `json:"move"`
}

type RampConfig struct {
	Every          int     `json:"every"`          // Ramp is evaluated on multiples of this score
	Step           int     `json:"step"`           // Platform count and speed change on multiples of this score
	SpeedIncrement float64 `json:"speedIncrement"`
	OddsThreshold  int     `json:"oddsThreshold"` // Cloud/move odds are re-rolled from this score on
	OddsDivisor    float64 `json:"oddsDivisor"`
}
