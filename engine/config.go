package engine

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/omerfuyar/shuildgo/shuilderr"
)

// Config holds the engine-wide settings an App is built with: window
// parameters (§4.4), physics tuning (§4.8) and a debug-drawing flag. It is
// ambient configuration, not a spec feature — see SPEC_FULL.md's ambient
// stack section.
type Config struct {
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`
	WindowTitle  string `yaml:"window_title"`
	VSync        bool   `yaml:"vsync"`
	Fullscreen   bool   `yaml:"fullscreen"`

	Gravity     float32 `yaml:"gravity"`
	Drag        float32 `yaml:"drag"`
	Elasticity  float32 `yaml:"elasticity"`
	PhysicsIter int     `yaml:"physics_iterations"`

	Debug bool `yaml:"debug"`
}

// DefaultConfig returns sane defaults matching the reference main()'s
// 1080x720 core-profile window.
func DefaultConfig() Config {
	return Config{
		WindowWidth:  1080,
		WindowHeight: 720,
		WindowTitle:  "shuildgo",
		VSync:        true,
		Gravity:      -9.81,
		Drag:         0.01,
		Elasticity:   0.5,
		PhysicsIter:  4,
	}
}

// LoadConfigFile overlays a YAML document at path onto DefaultConfig.
// Optional — most CLI usages (per §6) never call this.
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, shuilderr.New(shuilderr.FileOpen, "engine.LoadConfigFile", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, shuilderr.New(shuilderr.ParseUnexpectedToken, "engine.LoadConfigFile", err)
	}
	return cfg, nil
}
