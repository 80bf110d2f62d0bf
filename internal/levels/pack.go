package levels

import (
	"github.com/vovakirdan/boxworld/internal/content"
	"github.com/vovakirdan/boxworld/internal/core"
)

// ValidatePack checks cross-level references and entity placement.
func ValidatePack(p *content.Pack) error {
	if len(p.Levels) == 0 {
		return invalid(CodeEmptyMap, "pack has no levels")
	}

	seen := make(map[string]*content.Level, len(p.Levels))
	for _, l := range p.Levels {
		if l.ID == "" {
			return invalid(CodeMissingID, "level without id")
		}
		if seen[l.ID] != nil {
			return invalid(CodeDuplicateLevel, "level %q defined twice", l.ID)
		}
		seen[l.ID] = l
	}
	if p.StartLevel == "" {
		p.StartLevel = p.Levels[0].ID
	}
	if seen[p.StartLevel] == nil {
		return invalid(CodeUnknownStart, "start level %q not found", p.StartLevel)
	}

	for _, l := range p.Levels {
		if err := validateLevel(l, seen); err != nil {
			return err
		}
	}
	return nil
}

func validateLevel(l *content.Level, known map[string]*content.Level) error {
	n := l.Size()

	for bound, nb := range l.Neighbors {
		target := known[nb.Level]
		if target == nil {
			return invalid(CodeUnknownNeighbor, "level %q edge %s points at unknown level %q", l.ID, bound, nb.Level)
		}
		if nb.Entry != nil && !inside(*nb.Entry, target.Size()) {
			return invalid(CodeBadCoord, "level %q edge %s enters %q at %v, outside the map", l.ID, bound, nb.Level, *nb.Entry)
		}
	}

	taken := make(map[core.Coord]string, len(l.Entities))
	for _, e := range l.Entities {
		if !inside(e.Location, n) {
			return invalid(CodeEntityOutOfRange, "level %q: %s at %v is outside the %dx%d map", l.ID, e.Name, e.Location, n, n)
		}
		if other, ok := taken[e.Location]; ok {
			return invalid(CodeEntityOverlap, "level %q: %s and %s share %v", l.ID, other, e.Name, e.Location)
		}
		taken[e.Location] = e.Name
	}
	return nil
}

func inside(c core.Coord, n int) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < n && c.Y < n
}
