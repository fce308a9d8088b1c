package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tunable parameters for a game session
type Config struct {
	// ScreenWidth is the play-area width in pixels
	ScreenWidth int `yaml:"screen_width"`

	// ScreenHeight is the play-area height in pixels
	ScreenHeight int `yaml:"screen_height"`

	// NumRings is the number of rings; fixed once the world is built
	NumRings int `yaml:"num_rings"`

	// NumGoals is the number of goal pegs along the bottom of the tank
	NumGoals int `yaml:"num_goals"`

	// RingRadius is the ring body radius in pixels
	RingRadius float64 `yaml:"ring_radius"`

	// RingSpacing is the horizontal distance between ring centers at startup
	RingSpacing float64 `yaml:"ring_spacing"`

	// RingDensity sets the ring mass per unit area; low values float
	RingDensity float64 `yaml:"ring_density"`

	// RingElasticity is the ring bounciness (0 = dead, 1 = perfect bounce)
	RingElasticity float64 `yaml:"ring_elasticity"`

	// RingFriction is the ring surface friction
	RingFriction float64 `yaml:"ring_friction"`

	// Gravity is the downward gravity in engine units (1.0 = engine default)
	Gravity float64 `yaml:"gravity"`

	// ForceMagnitude is the pump impulse strength in engine force units
	ForceMagnitude float64 `yaml:"force_magnitude"`

	// WallThickness is the thickness of the boundary walls in pixels
	WallThickness float64 `yaml:"wall_thickness"`

	// GoalWidth is the goal peg width in pixels
	GoalWidth float64 `yaml:"goal_width"`

	// GoalHeight is the goal peg height in pixels
	GoalHeight float64 `yaml:"goal_height"`

	// GoalBottomOffset is the distance from the tank floor to a goal center
	GoalBottomOffset float64 `yaml:"goal_bottom_offset"`

	// Seed seeds the pump nudge randomness; 0 picks a time-based seed
	Seed int64 `yaml:"seed"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:      600,
		ScreenHeight:     400,
		NumRings:         5,
		NumGoals:         3,
		RingRadius:       20,
		RingSpacing:      50,
		RingDensity:      0.0012,
		RingElasticity:   0.6,
		RingFriction:     0.1,
		Gravity:          0.5, // half the engine default, for slow underwater falling
		ForceMagnitude:   0.05,
		WallThickness:    20,
		GoalWidth:        15,
		GoalHeight:       60,
		GoalBottomOffset: 30,
		Seed:             0,
	}
}

// LoadConfig reads a YAML file and overlays it on the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
