package treefill

import (
	"testing"

	"github.com/collidersim/treefill/pkg/treefill/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten_AllLeaves(t *testing.T) {
	ev := event.New()
	leaves := []event.Ref{
		ev.Add(event.Candidate{PID: 1}),
		ev.Add(event.Candidate{PID: 2}),
		ev.Add(event.Candidate{PID: 3}),
	}
	composite := ev.Add(event.Candidate{Constituents: leaves})

	got, err := Flatten(ev, composite)
	require.NoError(t, err)
	assert.Equal(t, leaves, got)
}

func TestFlatten_OneIntermediateLevel(t *testing.T) {
	ev := event.New()
	particle := ev.Add(event.Candidate{PID: 11})
	track := ev.Add(event.Candidate{Constituents: []event.Ref{particle}})
	composite := ev.Add(event.Candidate{Constituents: []event.Ref{track}})

	// The track resolves to its originating particle.
	got, err := Flatten(ev, composite)
	require.NoError(t, err)
	assert.Equal(t, []event.Ref{particle}, got)
}

func TestFlatten_TwoIntermediateLevels(t *testing.T) {
	ev := event.New()

	// Tower shape: cells each holding exactly one leaf hit.
	var hits []event.Ref
	var cells []event.Ref
	for i := 0; i < 3; i++ {
		hit := ev.Add(event.Candidate{PID: int32(i)})
		hits = append(hits, hit)
		cells = append(cells, ev.Add(event.Candidate{Constituents: []event.Ref{hit}}))
	}
	tower := ev.Add(event.Candidate{Constituents: cells})
	composite := ev.Add(event.Candidate{Constituents: []event.Ref{tower}})

	got, err := Flatten(ev, composite)
	require.NoError(t, err)
	assert.Equal(t, hits, got)
}

func TestFlatten_MixedDepths(t *testing.T) {
	ev := event.New()

	leaf := ev.Add(event.Candidate{})
	particle := ev.Add(event.Candidate{})
	track := ev.Add(event.Candidate{Constituents: []event.Ref{particle}})

	hit := ev.Add(event.Candidate{})
	cell := ev.Add(event.Candidate{Constituents: []event.Ref{hit}})
	tower := ev.Add(event.Candidate{Constituents: []event.Ref{cell}})

	composite := ev.Add(event.Candidate{Constituents: []event.Ref{leaf, track, tower}})

	got, err := Flatten(ev, composite)
	require.NoError(t, err)

	// Traversal order of the input reference list is preserved, and the
	// total count is the sum over direct sub-candidates.
	assert.Equal(t, []event.Ref{leaf, particle, hit}, got)
}

func TestFlatten_NoDeduplication(t *testing.T) {
	ev := event.New()
	leaf := ev.Add(event.Candidate{})
	composite := ev.Add(event.Candidate{Constituents: []event.Ref{leaf, leaf}})

	got, err := Flatten(ev, composite)
	require.NoError(t, err)
	assert.Equal(t, []event.Ref{leaf, leaf}, got)
}

func TestFlatten_Empty(t *testing.T) {
	ev := event.New()
	composite := ev.Add(event.Candidate{})

	got, err := Flatten(ev, composite)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFlatten_TooDeep(t *testing.T) {
	ev := event.New()

	// Four levels below the composite: one deeper than the contract allows.
	leaf := ev.Add(event.Candidate{})
	l3 := ev.Add(event.Candidate{Constituents: []event.Ref{leaf}})
	l2 := ev.Add(event.Candidate{Constituents: []event.Ref{l3}})
	l1 := ev.Add(event.Candidate{Constituents: []event.Ref{l2}})
	composite := ev.Add(event.Candidate{Constituents: []event.Ref{l1}})

	_, err := Flatten(ev, composite)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDepthExceeded)

	var fe *FlattenError
	require.ErrorAs(t, err, &fe)
}

func TestFlatten_MalformedIntermediate(t *testing.T) {
	ev := event.New()

	// A two-level composite where one item carries no leaf.
	hit := ev.Add(event.Candidate{})
	goodCell := ev.Add(event.Candidate{Constituents: []event.Ref{hit}})
	emptyCell := ev.Add(event.Candidate{})
	tower := ev.Add(event.Candidate{Constituents: []event.Ref{goodCell, emptyCell}})
	composite := ev.Add(event.Candidate{Constituents: []event.Ref{tower}})

	_, err := Flatten(ev, composite)
	assert.ErrorIs(t, err, ErrDepthExceeded)
}
