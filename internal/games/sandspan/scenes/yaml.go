package scenes

import (
	"fmt"

	"github.com/vovakirdan/sandspan/internal/games/sandspan/core"
	"gopkg.in/yaml.v3"
)

// yamlScene is the on-disk form of a scene.
type yamlScene struct {
	ID          string      `yaml:"id"`
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Size        yamlSize    `yaml:"size"`
	Palette     []string    `yaml:"palette,omitempty"`
	Layout      []string    `yaml:"layout,omitempty"`
	Shapes      []yamlShape `yaml:"shapes,omitempty"`
}

type yamlSize struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

type yamlShape struct {
	Shape string `yaml:"shape"`
	Row   int    `yaml:"row"`
	Col   int    `yaml:"col"`
	Color string `yaml:"color"`
}

// Parse decodes and validates a YAML scene.
func Parse(data []byte) (Scene, error) {
	var ys yamlScene
	if err := yaml.Unmarshal(data, &ys); err != nil {
		return Scene{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if ys.ID == "" {
		return Scene{}, fmt.Errorf("scene has no id")
	}
	if err := core.ValidateSize(ys.Size.Cols, ys.Size.Rows); err != nil {
		return Scene{}, fmt.Errorf("scene %s: %w", ys.ID, err)
	}

	sc := Scene{
		ID:          ys.ID,
		Name:        ys.Name,
		Description: ys.Description,
		Cols:        ys.Size.Cols,
		Rows:        ys.Size.Rows,
		Layout:      ys.Layout,
	}
	if sc.Name == "" {
		sc.Name = sc.ID
	}

	if len(ys.Palette) > 0 {
		palette, err := core.ParsePalette(ys.Palette)
		if err != nil {
			return Scene{}, fmt.Errorf("scene %s: %w", ys.ID, err)
		}
		sc.Palette = palette
	}

	for i, s := range ys.Shapes {
		shape, ok := core.ShapeByName(s.Shape)
		if !ok {
			return Scene{}, fmt.Errorf("scene %s: shape %d: unknown shape %q", ys.ID, i, s.Shape)
		}
		color, ok := core.ParseColor(s.Color)
		if !ok {
			return Scene{}, fmt.Errorf("scene %s: shape %d: invalid color %q", ys.ID, i, s.Color)
		}
		sc.Shapes = append(sc.Shapes, Placement{
			Shape:  shape,
			Anchor: core.C(s.Row, s.Col),
			Color:  color,
		})
	}

	// Surface layout and placement errors at load time rather than at play time.
	if _, err := sc.Grid(core.DefaultPalette()); err != nil {
		return Scene{}, err
	}

	return sc, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
