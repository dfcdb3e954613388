package generate

import (
	"cinder-roguelike/internal/gamemap"
	"cinder-roguelike/internal/rng"
)

// MinSpawnDistance is the Manhattan distance from the start inside which
// nothing spawns. It sits one past the enemies' sight range.
const MinSpawnDistance = 6

// Populate picks one free cell per actor id. A cell is free when it is
// walkable, has no prop or pile, is unclaimed and lies at least
// MinSpawnDistance (Manhattan) from start. Ids with no free cell after a
// bounded number of attempts are skipped.
func Populate(m *gamemap.GameMap, s *rng.Stream, start gamemap.Point, actorIDs []string) []Spawn {
	var out []Spawn
	occupied := map[gamemap.Point]bool{start: true}
	for _, id := range actorIDs {
		p, ok := pickFree(m, s, start, occupied)
		if !ok {
			continue
		}
		occupied[p] = true
		out = append(out, Spawn{ActorID: id, X: p.X, Y: p.Y})
	}
	return out
}

func pickFree(m *gamemap.GameMap, s *rng.Stream, start gamemap.Point, occupied map[gamemap.Point]bool) (gamemap.Point, bool) {
	const maxAttempts = 64
	if m.Width < 3 || m.Height < 3 {
		return gamemap.Point{}, false
	}
	for range maxAttempts {
		p := gamemap.Pt(s.NextIntInclusive(1, m.Width-2), s.NextIntInclusive(1, m.Height-2))
		if occupied[p] || !farEnough(p, start) {
			continue
		}
		if !m.IsWalkable(p.X, p.Y) || m.PropAt(p.X, p.Y) != nil || m.PileAt(p.X, p.Y) != nil {
			continue
		}
		return p, true
	}
	return gamemap.Point{}, false
}

func farEnough(p, start gamemap.Point) bool {
	return p.Manhattan(start) >= MinSpawnDistance
}
