package levels

import (
	"fmt"
	"io/fs"
	"path"

	"github.com/vovakirdan/boxworld/internal/content"
	"github.com/vovakirdan/boxworld/internal/core"
	"github.com/vovakirdan/boxworld/internal/levels/formats"
	"github.com/vovakirdan/boxworld/internal/worldmap"
)

// builder converts parsed documents into content values.
type builder struct {
	compiler Compiler
	items    map[string]formats.YAMLItem
	fsys     fs.FS
}

var boundNames = map[string]content.Bound{
	"l": content.BoundLeft, "left": content.BoundLeft,
	"r": content.BoundRight, "right": content.BoundRight,
	"u": content.BoundUp, "up": content.BoundUp,
	"d": content.BoundDown, "down": content.BoundDown,
}

func (b *builder) level(yl formats.YAMLLevel, dir string) (*content.Level, error) {
	ground, fg, overlay, err := b.layers(yl, dir)
	if err != nil {
		return nil, err
	}
	grid, err := Assemble(ground, fg, overlay)
	if err != nil {
		return nil, err
	}

	lvl := &content.Level{
		ID:          yl.ID,
		Name:        yl.Name,
		GroundTheme: yl.GroundTheme,
		Theme:       yl.Theme,
		Map:         grid,
	}
	if lvl.Name == "" {
		lvl.Name = yl.ID
	}

	if len(yl.Neighbors) > 0 {
		lvl.Neighbors = make(map[content.Bound]content.Neighbor, len(yl.Neighbors))
	}
	for key, yn := range yl.Neighbors {
		bound, ok := boundNames[key]
		if !ok {
			return nil, invalid(CodeBadBound, "unknown edge %q", key)
		}
		nb := content.Neighbor{Level: yn.Level}
		if yn.Entry != nil {
			c, err := coord(yn.Entry)
			if err != nil {
				return nil, fmt.Errorf("neighbour %s: %w", key, err)
			}
			nb.Entry = &c
		}
		lvl.Neighbors[bound] = nb
	}

	for _, ye := range yl.Entities {
		e, err := b.entity(ye)
		if err != nil {
			return nil, fmt.Errorf("entity %q: %w", ye.Name, err)
		}
		lvl.Entities = append(lvl.Entities, e)
	}
	return lvl, nil
}

func (b *builder) layers(yl formats.YAMLLevel, dir string) (ground, fg, overlay [][]string, err error) {
	if yl.TMX == "" {
		return yl.Layers()
	}
	t, err := formats.ParseTMX(b.fsys, path.Join(dir, yl.TMX))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading %s: %w", yl.TMX, err)
	}
	return t.Ground, t.Foreground, t.Overlay, nil
}

// Assemble validates layer rows and builds the grid. An 11-wide square map
// is a single room; larger multiples of 11 are stitched from blocks.
func Assemble(ground, fg, overlay [][]string) (worldmap.Grid, error) {
	n := len(ground)
	if n == 0 {
		return nil, invalid(CodeEmptyMap, "map has no rows")
	}
	for _, layer := range [][][]string{ground, fg, overlay} {
		if layer == nil {
			continue
		}
		if len(layer) != n {
			return nil, invalid(CodeNotSquare, "layer has %d rows, want %d", len(layer), n)
		}
		for y, row := range layer {
			if len(row) != n {
				return nil, invalid(CodeNotSquare, "row %d has %d cells, want %d", y, len(row), n)
			}
		}
	}
	if n%worldmap.BlockSize != 0 {
		return nil, invalid(CodeBadSize, "map side %d is not a multiple of %d", n, worldmap.BlockSize)
	}
	if n == worldmap.BlockSize {
		return worldmap.AssembleBlock(ground, fg, overlay), nil
	}
	return worldmap.Assemble(
		worldmap.SplitBlocks(ground),
		worldmap.SplitBlocks(fg),
		worldmap.SplitBlocks(overlay),
	), nil
}

func (b *builder) entity(ye formats.YAMLEntity) (*content.Entity, error) {
	loc, err := coord(ye.At)
	if err != nil {
		return nil, err
	}
	e := &content.Entity{
		Name:        ye.Name,
		Location:    loc,
		Glyph:       '@',
		Interactive: ye.Interactive,
		Hidden:      ye.Hidden,
		State:       content.State{},
	}
	if r := []rune(ye.Glyph); len(r) > 0 {
		e.Glyph = r[0]
	}
	if ye.Color != "" {
		c, ok := core.ParseColor(ye.Color)
		if !ok {
			return nil, invalid(CodeBadColor, "unknown color %q", ye.Color)
		}
		e.Color = c
	}
	for k, v := range ye.State {
		e.State[k] = normalize(v)
	}
	for i, yn := range ye.Dialogue {
		node, err := b.node(yn)
		if err != nil {
			return nil, fmt.Errorf("dialogue %d: %w", i, err)
		}
		e.Dialogue = append(e.Dialogue, node)
	}
	return e, nil
}

func (b *builder) node(yn formats.YAMLNode) (content.DialogueNode, error) {
	node := content.DialogueNode{Text: yn.Text, Class: yn.Class}

	var conds content.AllOf
	if len(yn.WhenState) > 0 {
		conds = append(conds, content.StateEquals(normalizeMap(yn.WhenState)))
	}
	if yn.When != "" {
		p, err := b.predicate(yn.When)
		if err != nil {
			return node, err
		}
		conds = append(conds, p)
	}
	switch len(conds) {
	case 0:
	case 1:
		node.Condition = conds[0]
	default:
		node.Condition = conds
	}

	reward, err := b.item(yn.Reward)
	if err != nil {
		return node, err
	}
	node.Reward = reward

	for i, yc := range yn.Choices {
		c, err := b.choice(yc)
		if err != nil {
			return node, fmt.Errorf("choice %d: %w", i, err)
		}
		node.Choices = append(node.Choices, c)
	}
	return node, nil
}

func (b *builder) choice(yc formats.YAMLChoice) (content.Choice, error) {
	c := content.Choice{Text: yc.Text, Class: yc.Class}
	reward, err := b.item(yc.Reward)
	if err != nil {
		return c, err
	}
	c.Reward = reward
	if yc.Response == nil {
		return c, nil
	}

	yr := yc.Response
	resp := &content.Response{Text: yr.Text}
	if resp.Reward, err = b.item(yr.Reward); err != nil {
		return c, err
	}

	var effects content.Effects
	if len(yr.Set) > 0 {
		effects = append(effects, content.SetState(normalizeMap(yr.Set)))
	}
	if yr.Lua != "" {
		eff, err := b.effect(yr.Lua)
		if err != nil {
			return c, err
		}
		effects = append(effects, eff)
	}
	if yr.GoTo != "" {
		effects = append(effects, content.GoTo{Level: yr.GoTo})
	}
	if yr.Finish {
		effects = append(effects, content.EffectFunc(func(_ content.State, w content.World) { w.Finish() }))
	}
	switch len(effects) {
	case 0:
	case 1:
		resp.OnSelect = effects[0]
	default:
		resp.OnSelect = effects
	}
	c.Response = resp
	return c, nil
}

func (b *builder) item(yi *formats.YAMLItem) (*content.Item, error) {
	if yi == nil {
		return nil, nil
	}
	src := *yi
	if src.Ref != "" {
		ref, ok := b.items[src.Ref]
		if !ok {
			return nil, invalid(CodeUnknownItem, "item %q is not declared in %s", src.Ref, WorldFile)
		}
		src = ref
		if src.ID == "" {
			src.ID = yi.Ref
		}
	}
	it := &content.Item{ID: src.ID, Name: src.Name, Asset: src.Asset}
	if it.Name == "" {
		it.Name = it.ID
	}
	if it.ID == "" {
		it.ID = it.Name
	}
	return it, nil
}

func (b *builder) predicate(expr string) (content.Predicate, error) {
	if b.compiler == nil {
		return nil, invalid(CodeNoScripts, "lua condition %q needs a script compiler", expr)
	}
	return b.compiler.Predicate(expr)
}

func (b *builder) effect(body string) (content.Effect, error) {
	if b.compiler == nil {
		return nil, invalid(CodeNoScripts, "lua effect needs a script compiler")
	}
	return b.compiler.Effect(body)
}

func coord(v []int) (core.Coord, error) {
	if len(v) != 2 {
		return core.Coord{}, invalid(CodeBadCoord, "coordinate %v is not [x, y]", v)
	}
	return core.C(v[0], v[1]), nil
}

// normalize maps YAML scalars onto the value types content.State uses.
func normalize(v any) any {
	switch x := v.(type) {
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case uint64:
		return float64(x)
	}
	return v
}

func normalizeMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = normalize(v)
	}
	return out
}
