package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var spec T
	if err := LoadSpecInto(filename, &spec); err != nil {
		var zero T
		return zero, err
	}
	return spec, nil
}

// LoadSpecInto decodes filename over spec, so keys the file leaves out keep
// the value spec already holds. An explicit zero in the file is kept.
func LoadSpecInto[T any](filename string, spec *T) error {
	data, err := Load(filename)
	if err != nil {
		return fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	return decodeSpec(filename, data, spec)
}

func decodeSpec[T any](filename string, data []byte, spec *T) error {
	if err := yaml.Unmarshal(data, spec); err != nil {
		return fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return nil
}

// WorldSpec holds the fixed-step and contact tuning.
type WorldSpec struct {
	Name             string  `yaml:"name"`
	TickRate         float64 `yaml:"tick_rate"`
	Gravity          float64 `yaml:"gravity"`
	LandingTolerance float64 `yaml:"landing_tolerance"`
	ContactSkin      float64 `yaml:"contact_skin"`
}

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PlayerSpec struct {
	Name          string       `yaml:"name"`
	MoveSpeed     float64      `yaml:"move_speed"`
	JumpSpeed     float64      `yaml:"jump_speed"`
	MaxJumpHeight float64      `yaml:"max_jump_height"`
	Collider      ColliderSpec `yaml:"collider"`
}

type CameraSpec struct {
	Name       string  `yaml:"name"`
	Smoothness float64 `yaml:"smoothness"`
}

// Tuning bundles every spec the runtime needs.
type Tuning struct {
	World  WorldSpec
	Player PlayerSpec
	Camera CameraSpec
}

// DefaultTuning holds the values a prefab falls back to for keys it omits.
func DefaultTuning() Tuning {
	return Tuning{
		World: WorldSpec{
			Name:             "world",
			TickRate:         60,
			Gravity:          -900,
			LandingTolerance: 4,
			ContactSkin:      0.5,
		},
		Player: PlayerSpec{
			Name:          "player",
			MoveSpeed:     180,
			JumpSpeed:     300,
			MaxJumpHeight: 120,
			Collider:      ColliderSpec{Width: 24, Height: 32},
		},
		Camera: CameraSpec{Name: "camera", Smoothness: 0.15},
	}
}

// LoadTuning reads world.yaml, player.yaml and camera.yaml over
// DefaultTuning.
func LoadTuning() (Tuning, error) {
	t := DefaultTuning()
	if err := LoadSpecInto("world.yaml", &t.World); err != nil {
		return Tuning{}, err
	}
	if err := LoadSpecInto("player.yaml", &t.Player); err != nil {
		return Tuning{}, err
	}
	if err := LoadSpecInto("camera.yaml", &t.Camera); err != nil {
		return Tuning{}, err
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// Validate rejects tuning the physics cannot run with.
func (t Tuning) Validate() error {
	switch {
	case t.World.TickRate <= 0:
		return fmt.Errorf("prefabs: world.yaml: tick_rate must be positive, got %v", t.World.TickRate)
	case t.World.Gravity >= 0:
		return fmt.Errorf("prefabs: world.yaml: gravity must pull down (negative), got %v", t.World.Gravity)
	case t.Player.MaxJumpHeight < 0:
		return fmt.Errorf("prefabs: player.yaml: max_jump_height must not be negative, got %v", t.Player.MaxJumpHeight)
	case t.Player.Collider.Width < 0 || t.Player.Collider.Height < 0:
		return fmt.Errorf("prefabs: player.yaml: collider must not be negative")
	}
	return nil
}

// DT is the fixed tick length in seconds.
func (t Tuning) DT() float64 {
	return 1 / t.World.TickRate
}
