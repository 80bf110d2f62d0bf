package content

import (
	"github.com/vovakirdan/boxworld/internal/core"
	"github.com/vovakirdan/boxworld/internal/worldmap"
)

// Bound names the map edge a committed step reached.
type Bound string

const (
	BoundNone  Bound = ""
	BoundLeft  Bound = "l"
	BoundRight Bound = "r"
	BoundUp    Bound = "u"
	BoundDown  Bound = "d"
)

// Neighbor links a level edge to another level.
type Neighbor struct {
	Level string
	Entry *core.Coord // nil means the target level's centre
}

// Level is one map with its entity roster.
type Level struct {
	ID          string
	Name        string
	GroundTheme string // ambient display theme, e.g. "grass"
	Theme       string // music cue name
	Map         worldmap.Grid
	Entities    []*Entity
	Neighbors   map[Bound]Neighbor
}

// Size returns the side of the (square) level map.
func (l *Level) Size() int {
	return l.Map.Height()
}

// Centre returns the default entry offset.
func (l *Level) Centre() core.Coord {
	n := l.Size()
	return core.C((n-1)/2, (n-1)/2)
}

// Occupants returns the visible entities as window occupants.
func (l *Level) Occupants() []worldmap.Occupant {
	out := make([]worldmap.Occupant, 0, len(l.Entities))
	for _, e := range l.Entities {
		if e.Hidden {
			continue
		}
		out = append(out, e)
	}
	return out
}

// EntityAt returns the visible entity standing exactly on c.
func (l *Level) EntityAt(c core.Coord) *Entity {
	for _, e := range l.Entities {
		if !e.Hidden && e.Location == c {
			return e
		}
	}
	return nil
}

// Pack is a playable world: a set of levels and where to begin.
type Pack struct {
	ID         string
	Title      string
	Byline     string
	StartLevel string
	Levels     []*Level
}

// Level returns the level with the given id, or nil.
func (p *Pack) Level(id string) *Level {
	for _, l := range p.Levels {
		if l.ID == id {
			return l
		}
	}
	return nil
}
