package layout

import (
	"math"

	"github.com/zyedidia/generic/mapset"
)

// segment is one piece of geometry before it becomes a scene object.
type segment struct {
	kind      ElementKind
	position  Vec3
	rotationY float64
	dims      Dimensions
}

// keyPrecision is the rounding step for dedup keys. The two cells sharing a
// boundary compute the same wall through different arithmetic, which can
// differ in the last float bits; three decimals collapses those while keeping
// genuinely distinct geometry apart.
const keyPrecision = 1000.0

func roundKey(v float64) float64 {
	return math.Round(v*keyPrecision) / keyPrecision
}

// segmentKey identifies a segment for dedup: kind plus rounded position and
// rotation.
type segmentKey struct {
	kind    ElementKind
	x, y, z float64
	rot     float64
}

func (s segment) key() segmentKey {
	return segmentKey{
		kind: s.kind,
		x:    roundKey(s.position.X),
		y:    roundKey(s.position.Y),
		z:    roundKey(s.position.Z),
		rot:  roundKey(s.rotationY),
	}
}

// dedupSegments keeps the first segment for every key, preserving order. The
// wall and plate passes dedup independently while emitting; this pass guards
// the combined list.
func dedupSegments(segments []segment) []segment {
	seen := mapset.New[segmentKey]()
	out := make([]segment, 0, len(segments))
	for _, s := range segments {
		key := s.key()
		if seen.Has(key) {
			continue
		}
		seen.Put(key)
		out = append(out, s)
	}
	return out
}
