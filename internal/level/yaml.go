package level

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	Name   string      `yaml:"name,omitempty"`
	Player YAMLPoint   `yaml:"player"`
	Blocks []YAMLBlock `yaml:"blocks"`
}

// YAMLPoint is a world position.
type YAMLPoint struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// YAMLBlock is one obstacle rectangle.
type YAMLBlock struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// ParseYAML parses a YAML level document.
func ParseYAML(data []byte) (Level, error) {
	l, _, err := ParseNamedYAML(data)
	return l, err
}

// ParseNamedYAML parses a YAML level document and also returns its optional name.
func ParseNamedYAML(data []byte) (Level, string, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, "", fmt.Errorf("level: yaml unmarshal: %w", err)
	}

	l := Level{
		PlayerInitialPos: core.V(yl.Player.X, yl.Player.Y),
		Blocks:           make([]core.Recti, 0, len(yl.Blocks)),
	}
	for i, b := range yl.Blocks {
		if b.W < 0 || b.H < 0 {
			return Level{}, "", fmt.Errorf("level: block %d has negative size %dx%d", i, b.W, b.H)
		}
		l.Blocks = append(l.Blocks, core.NewRect(b.X, b.Y, b.W, b.H))
	}
	return l, yl.Name, nil
}

// MarshalYAML encodes a level as a YAML document.
func MarshalYAML(l Level, name string) ([]byte, error) {
	yl := YAMLLevel{
		Name:   name,
		Player: YAMLPoint{X: l.PlayerInitialPos.X, Y: l.PlayerInitialPos.Y},
		Blocks: make([]YAMLBlock, 0, len(l.Blocks)),
	}
	for _, b := range l.Blocks {
		yl.Blocks = append(yl.Blocks, YAMLBlock{X: b.Pos.X, Y: b.Pos.Y, W: b.Size.X, H: b.Size.Y})
	}

	data, err := yaml.Marshal(&yl)
	if err != nil {
		return nil, fmt.Errorf("level: yaml marshal: %w", err)
	}
	return data, nil
}
