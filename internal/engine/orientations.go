// Package engine implements the tiling solver: orientation generation,
// placement enumeration, and the exact-cover backtracking search.
package engine

import (
	"sort"

	"github.com/piwi3910/TileFit/internal/model"
)

// Orientations returns every distinct orientation of a shape reachable by
// the four 90-degree rotations combined with an optional horizontal
// reflection. Each result is normalized, and duplicates arising from the
// shape's own symmetry collapse, so the set has between 1 and 8 members.
// Results are sorted by canonical key so the order is reproducible.
func Orientations(shape model.Shape) []model.Shape {
	seen := make(map[string]model.Shape, 8)

	cur := shape
	for i := 0; i < 4; i++ {
		n := cur.Normalize()
		seen[n.Key()] = n

		m := cur.Reflect().Normalize()
		seen[m.Key()] = m

		cur = cur.Rotate90()
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]model.Shape, 0, len(keys))
	for _, k := range keys {
		out = append(out, seen[k])
	}
	return out
}
