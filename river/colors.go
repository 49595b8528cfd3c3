package river

import (
	"fmt"

	"github.com/veratlas/lintide/lintree"
)

// Value-channel levels: every color starts at baseValue; emphasized
// entries (inclusive groups) get emphasisBonus on top.
const (
	baseValue     = 0.55
	emphasisBonus = 0.25
	hueCeiling    = 0.75 // keep the palette from wrapping back to red
)

// Colors deterministically assigns an HSV triple to each selected lineage
// so that taxonomic distance maps to hue distance.
//
// Each name's alias is ranked against every alias in the taxonomy; ranks
// are squared (stretching apart the densely named tails of the alphabet)
// and min-max normalized across the selection into [0, 0.75] as the hue.
// Saturation is fixed at 1. The value channel is 0.55, plus 0.25 when the
// corresponding emphasis flag is set — the visual cue separating inclusive
// from exclusive groups.
//
// A degenerate selection whose squared ranks all coincide gets hue 0
// throughout rather than a 0/0.
func Colors(names []string, emphasis []bool, idx *lintree.Index) ([]HSV, error) {
	if len(names) != len(emphasis) {
		return nil, fmt.Errorf("%w: %d names, %d emphasis flags", ErrShapeMismatch, len(names), len(emphasis))
	}

	sq := make([]float64, len(names))
	lo, hi := 0.0, 0.0
	for i, name := range names {
		n, ok := idx.Get(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLineage, name)
		}
		r := float64(idx.AliasRank(n.Alias))
		sq[i] = r * r
		if i == 0 || sq[i] < lo {
			lo = sq[i]
		}
		if i == 0 || sq[i] > hi {
			hi = sq[i]
		}
	}

	out := make([]HSV, len(names))
	for i := range names {
		hue := 0.0
		if hi > lo {
			hue = (sq[i] - lo) / (hi - lo) * hueCeiling
		}
		v := baseValue
		if emphasis[i] {
			v += emphasisBonus
		}
		out[i] = HSV{H: hue, S: 1, V: v}
	}

	return out, nil
}
