package benchmarks

import (
	"context"
	"testing"

	"github.com/collidersim/treefill/pkg/treefill"
	"github.com/collidersim/treefill/pkg/treefill/event"
	"github.com/collidersim/treefill/pkg/treefill/fourvec"
	"github.com/collidersim/treefill/pkg/treefill/sink"
)

// buildEvent assembles an event with n particles, n/2 tracks, and n/10 jets
// of ten constituents each.
func buildEvent(n int) *event.Event {
	ev := event.New()

	particles := make([]event.Ref, n)
	for i := 0; i < n; i++ {
		pt := float64(1 + i%97)
		particles[i] = ev.Add(event.Candidate{
			PID: 211, Status: 1,
			Momentum: fourvec.FourVec{Px: pt, Py: pt / 2, Pz: pt * 3, E: pt * 4},
			Position: fourvec.FourVec{Px: 0.1, Py: 0.1, E: float64(i)},
		})
	}
	ev.AddTo("gen/particles", particles...)

	for i := 0; i < n/2; i++ {
		c := event.Candidate{
			PID: 211, Charge: 1,
			Momentum:     ev.At(particles[i]).Momentum,
			Position:     fourvec.FourVec{Px: 1000, Py: 500, Pz: 2000, E: 7},
			Dxy:          0.01,
			Zd:           0.5,
			Constituents: []event.Ref{particles[i]},
		}
		c.TrkPar[treefill.ParD0] = 0.01
		c.TrkPar[treefill.ParZ0] = 0.5
		ev.AddTo("tracker/tracks", ev.Add(c))
	}

	for i := 0; i < n/10; i++ {
		lo := (i * 10) % n
		jet := event.Candidate{
			Momentum:     fourvec.FourVec{Px: float64(100 + i), E: float64(150 + i)},
			Constituents: particles[lo : lo+10],
		}
		ev.AddTo("jets", ev.Add(jet))
	}

	return ev
}

func benchSpecs() []treefill.BranchSpec {
	return []treefill.BranchSpec{
		{Input: "gen/particles", Name: "Particle", Class: "Particle"},
		{Input: "tracker/tracks", Name: "Track", Class: "Track"},
		{Input: "jets", Name: "Jet", Class: "Jet"},
		{Input: "gen/particles", Name: "GenMissingET", Class: "MissingET"},
	}
}

func mustWriter(b *testing.B, opts ...treefill.Option) *treefill.Writer {
	b.Helper()
	w, err := treefill.NewWriter(sink.NewMemoryStore(), benchSpecs(), opts...)
	if err != nil {
		b.Fatal(err)
	}
	return w
}

// BenchmarkProcessEvent_100 converts a 100-particle event sequentially.
func BenchmarkProcessEvent_100(b *testing.B) {
	w := mustWriter(b)
	ev := buildEvent(100)
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = w.ProcessEvent(ctx, ev)
	}
}

// BenchmarkProcessEvent_1000 converts a 1000-particle event sequentially.
func BenchmarkProcessEvent_1000(b *testing.B) {
	w := mustWriter(b)
	ev := buildEvent(1000)
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = w.ProcessEvent(ctx, ev)
	}
}

// BenchmarkProcessEvent_Parallel_1000 converts a 1000-particle event with
// branch groups running concurrently.
func BenchmarkProcessEvent_Parallel_1000(b *testing.B) {
	w := mustWriter(b, treefill.WithParallel(4))
	ev := buildEvent(1000)
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = w.ProcessEvent(ctx, ev)
	}
}

// BenchmarkFlatten_Jet resolves a ten-constituent jet to its leaves.
func BenchmarkFlatten_Jet(b *testing.B) {
	ev := buildEvent(100)
	refs, _ := ev.Collection("jets")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = treefill.Flatten(ev, refs[i%len(refs)])
	}
}
