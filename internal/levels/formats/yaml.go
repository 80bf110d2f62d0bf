// Package formats provides the level and world file parsers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLWorld is the world.yaml document at the root of a pack.
type YAMLWorld struct {
	ID     string              `yaml:"id"`
	Title  string              `yaml:"title"`
	Byline string              `yaml:"byline,omitempty"`
	Start  string              `yaml:"start"`
	Items  map[string]YAMLItem `yaml:"items,omitempty"`
}

// YAMLLevel is one level document.
type YAMLLevel struct {
	ID          string                  `yaml:"id"`
	Name        string                  `yaml:"name"`
	GroundTheme string                  `yaml:"ground_theme,omitempty"`
	Theme       string                  `yaml:"theme,omitempty"`
	Legend      map[string]YAMLLegend   `yaml:"legend,omitempty"`
	Map         []string                `yaml:"map,omitempty"`
	TMX         string                  `yaml:"tmx,omitempty"`
	Neighbors   map[string]YAMLNeighbor `yaml:"neighbors,omitempty"`
	Entities    []YAMLEntity            `yaml:"entities,omitempty"`
}

// YAMLLegend maps one map character to its three layers.
type YAMLLegend struct {
	Ground     string `yaml:"ground,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Overlay    string `yaml:"overlay,omitempty"`
}

// YAMLNeighbor links an edge to another level.
type YAMLNeighbor struct {
	Level string `yaml:"level"`
	Entry []int  `yaml:"entry,omitempty"` // [x, y]
}

// YAMLEntity is an entity placed in a level.
type YAMLEntity struct {
	Name        string         `yaml:"name"`
	At          []int          `yaml:"at"` // [x, y]
	Glyph       string         `yaml:"glyph,omitempty"`
	Color       string         `yaml:"color,omitempty"`
	Interactive bool           `yaml:"interactive,omitempty"`
	Hidden      bool           `yaml:"hidden,omitempty"`
	State       map[string]any `yaml:"state,omitempty"`
	Dialogue    []YAMLNode     `yaml:"dialogue,omitempty"`
}

// YAMLNode is one dialogue line.
type YAMLNode struct {
	Text      string         `yaml:"text"`
	Class     string         `yaml:"class,omitempty"`
	When      string         `yaml:"when,omitempty"`       // Lua expression
	WhenState map[string]any `yaml:"when_state,omitempty"` // declarative equality
	Reward    *YAMLItem      `yaml:"reward,omitempty"`
	Choices   []YAMLChoice   `yaml:"choices,omitempty"`
}

// YAMLChoice is one selectable answer.
type YAMLChoice struct {
	Text     string        `yaml:"text"`
	Class    string        `yaml:"class,omitempty"`
	Reward   *YAMLItem     `yaml:"reward,omitempty"`
	Response *YAMLResponse `yaml:"response,omitempty"`
}

// YAMLResponse is the text shown after a choice, with its side effects.
type YAMLResponse struct {
	Text   string         `yaml:"text"`
	Set    map[string]any `yaml:"set,omitempty"`
	Lua    string         `yaml:"lua,omitempty"`
	Reward *YAMLItem      `yaml:"reward,omitempty"`
	GoTo   string         `yaml:"goto,omitempty"`
	Finish bool           `yaml:"finish,omitempty"`
}

// YAMLItem is either a reference to a world item (a bare string) or an
// inline mapping.
type YAMLItem struct {
	Ref   string `yaml:"-"`
	ID    string `yaml:"id,omitempty"`
	Name  string `yaml:"name,omitempty"`
	Asset string `yaml:"asset,omitempty"`
}

// UnmarshalYAML accepts a scalar reference or a mapping.
func (it *YAMLItem) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		it.Ref = value.Value
		return nil
	}
	type plain YAMLItem
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*it = YAMLItem(p)
	return nil
}

// ParseYAMLWorld parses a world.yaml document.
func ParseYAMLWorld(data []byte) (YAMLWorld, error) {
	var w YAMLWorld
	if err := yaml.Unmarshal(data, &w); err != nil {
		return YAMLWorld{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return w, nil
}

// ParseYAML parses a level document.
func ParseYAML(data []byte) (YAMLLevel, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return YAMLLevel{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return yl, nil
}

// Layers expands the legend-encoded map into ground, foreground and overlay
// rows. Unknown characters are reported with their position.
func (yl YAMLLevel) Layers() (ground, fg, overlay [][]string, err error) {
	for y, line := range yl.Map {
		var g, f, o []string
		for x, r := range []rune(line) {
			entry, ok := yl.Legend[string(r)]
			if !ok {
				return nil, nil, nil, fmt.Errorf("unknown map character %q at %d,%d", r, x, y)
			}
			g = append(g, entry.Ground)
			f = append(f, entry.Foreground)
			o = append(o, entry.Overlay)
		}
		ground = append(ground, g)
		fg = append(fg, f)
		overlay = append(overlay, o)
	}
	return ground, fg, overlay, nil
}

// FormatExtensions returns supported level file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
