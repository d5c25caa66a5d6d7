package treefill

import (
	"github.com/collidersim/treefill/pkg/treefill/event"
	"github.com/collidersim/treefill/pkg/treefill/fourvec"
)

// copyVertexTrack carries a reconstruction-side vertex track into the output
// record, field for field.
func copyVertexTrack(t event.VertexTrack) VertexTrack {
	return VertexTrack{
		Weight:   t.Weight,
		D0:       t.D0,
		Z0:       t.Z0,
		D0Err:    t.D0Err,
		Z0Err:    t.Z0Err,
		Momentum: t.Momentum,
		DPhi:     t.DPhi,
		DEta:     t.DEta,
	}
}

// copyVertexTracks copies a track list, preserving order.
func copyVertexTracks(ts []event.VertexTrack) []VertexTrack {
	if len(ts) == 0 {
		return nil
	}
	out := make([]VertexTrack, len(ts))
	for i, t := range ts {
		out[i] = copyVertexTrack(t)
	}
	return out
}

// copySecondaryVertex carries a displaced vertex and its associated tracks
// into the output record.
func copySecondaryVertex(v event.SecondaryVertex) SecondaryVertex {
	return SecondaryVertex{
		X: v.X, Y: v.Y, Z: v.Z,
		Lxy:                 v.Lxy,
		Lsig:                v.Lsig,
		DecayLengthVariance: v.DecayLengthVariance,
		NTracks:             v.NTracks,
		EFrac:               v.EFrac,
		Mass:                v.Mass,
		Config:              v.Config,
		Tracks:              copyVertexTracks(v.Tracks),
	}
}

func copyTruthVertices(vs []event.TruthVertex) []TruthVertex {
	if len(vs) == 0 {
		return nil
	}
	out := make([]TruthVertex, len(vs))
	for i, v := range vs {
		out[i] = TruthVertex{X: v.X, Y: v.Y, Z: v.Z, PID: v.PID}
	}
	return out
}

func (w *Writer) convertJets(ev *event.Event, refs []event.Ref, emit emitFunc) error {
	for _, r := range sortedRefs(ev, refs, w.cfg.inPlaceSort) {
		c := ev.At(r)
		mom, pos := c.Momentum, c.Position

		rec := Jet{
			Eta: mom.Eta(),
			Phi: mom.Phi(),
			PT:  mom.Pt(),
			T:   fourvec.LabTime(pos.T()),

			Mass: mom.M(),
			Area: c.Area,

			DeltaEta: c.DeltaEta,
			DeltaPhi: c.DeltaPhi,

			Flavor:     c.Flavor,
			FlavorAlgo: c.FlavorAlgo,
			FlavorPhys: c.FlavorPhys,

			BTag:     c.BTag,
			BTagAlgo: c.BTagAlgo,
			BTagPhys: c.BTagPhys,
			TauTag:   c.TauTag,

			Charge: c.Charge,

			// Secondary-vertex system, copied field for field.
			PrimaryVertexTracks:     copyVertexTracks(c.PrimaryVertexTracks),
			HLSecondaryVertexTracks: copyVertexTracks(c.HLSecVtxTracks),
			HLSecondaryVertex:       copyVertexTrack(c.HLSecVtx),
			MLSecondaryVertex:       copyVertexTrack(c.MLSecVtx),
			HLTrack:                 copyVertexTrack(c.HLTrack),
			TruthVertices:           copyTruthVertices(c.TruthVertices),

			NCharged:     c.NCharged,
			NNeutrals:    c.NNeutrals,
			Beta:         c.Beta,
			BetaStar:     c.BetaStar,
			MeanSqDeltaR: c.MeanSqDeltaR,
			PTD:          c.PTD,

			NSubJetsTrimmed:     c.NSubJetsTrimmed,
			NSubJetsPruned:      c.NSubJetsPruned,
			NSubJetsSoftDropped: c.NSubJetsSoftDropped,
			FracPt:              c.FracPt,
			Tau:                 c.Tau,
			TrimmedP4:           c.TrimmedP4,
			PrunedP4:            c.PrunedP4,
			SoftDroppedP4:       c.SoftDroppedP4,
		}

		if len(c.SecondaryVertices) > 0 {
			rec.SecondaryVertices = make([]SecondaryVertex, len(c.SecondaryVertices))
			for i, v := range c.SecondaryVertices {
				rec.SecondaryVertices[i] = copySecondaryVertex(v)
			}
		}

		// Constituents are kept as direct refs; the calorimeter ratio sums
		// their energy deposits.
		ecalEnergy, hcalEnergy := 0.0, 0.0
		if len(c.Constituents) > 0 {
			rec.Constituents = make([]event.Ref, len(c.Constituents))
			copy(rec.Constituents, c.Constituents)
			for _, cr := range c.Constituents {
				constituent := ev.At(cr)
				ecalEnergy += constituent.Eem
				hcalEnergy += constituent.Ehad
			}
		}
		rec.EhadOverEem = ratioSentinel
		if ecalEnergy > 0.0 {
			rec.EhadOverEem = hcalEnergy / ecalEnergy
		}

		if len(c.Subjets) > 0 {
			rec.Subjets = make([]event.Ref, len(c.Subjets))
			copy(rec.Subjets, c.Subjets)
		}
		if len(c.Tracks) > 0 {
			rec.Tracks = make([]event.Ref, len(c.Tracks))
			copy(rec.Tracks, c.Tracks)
		}

		particles, err := Flatten(ev, r)
		if err != nil {
			return err
		}
		rec.Particles = particles

		if err := emit(rec); err != nil {
			return err
		}
	}
	return nil
}
