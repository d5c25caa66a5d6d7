package treefill

import (
	"sort"

	"github.com/collidersim/treefill/pkg/treefill/event"
)

// sortedRefs orders refs by descending transverse momentum. The sort is
// stable: candidates of equal PT keep their input order.
//
// By default the input slice is left untouched and a sorted copy is
// returned, so two branches reading the same collection are independent.
// With inPlace set, the collection's backing slice itself is reordered (the
// legacy behavior); every later reader of the collection then observes the
// sorted order.
func sortedRefs(ev *event.Event, refs []event.Ref, inPlace bool) []event.Ref {
	view := refs
	if !inPlace {
		view = make([]event.Ref, len(refs))
		copy(view, refs)
	}
	sort.SliceStable(view, func(i, j int) bool {
		return ev.At(view[i]).Momentum.Pt() > ev.At(view[j]).Momentum.Pt()
	})
	return view
}
