package treefill

import "github.com/collidersim/treefill/pkg/treefill/event"

// Flatten resolves the constituents of a composite candidate down to leaf
// candidates and returns their refs in traversal order. No deduplication is
// performed: a leaf referenced twice appears twice.
//
// Each direct sub-candidate is resolved by one of three shapes, matching the
// bounded nesting the upstream pipeline produces:
//
//   - a leaf (no constituents) is kept as-is;
//   - a one-level composite (e.g. a track holding its originating particle)
//     is resolved to its first constituent;
//   - a two-level composite (e.g. a tower of cells, each holding one hit)
//     contributes the first constituent of each of its items.
//
// A chain deeper than these shapes violates the upstream depth contract and
// returns a FlattenError wrapping ErrDepthExceeded.
func Flatten(ev *event.Event, ref event.Ref) ([]event.Ref, error) {
	cand := ev.At(ref)
	out := make([]event.Ref, 0, len(cand.Constituents))

	for _, sub := range cand.Constituents {
		sc := ev.At(sub)
		if len(sc.Constituents) == 0 {
			out = append(out, sub)
			continue
		}

		first := sc.Constituents[0]
		if len(ev.At(first).Constituents) == 0 {
			out = append(out, first)
			continue
		}

		// Two intermediate levels: each item under sub holds a leaf in
		// first position.
		for _, item := range sc.Constituents {
			ic := ev.At(item)
			if len(ic.Constituents) == 0 {
				return nil, &FlattenError{Ref: item}
			}
			leaf := ic.Constituents[0]
			if len(ev.At(leaf).Constituents) != 0 {
				return nil, &FlattenError{Ref: leaf}
			}
			out = append(out, leaf)
		}
	}

	return out, nil
}
