package treefill

import (
	"github.com/collidersim/treefill/pkg/treefill/event"
	"github.com/collidersim/treefill/pkg/treefill/fourvec"
)

// ratioSentinel is stored for the hadronic/electromagnetic energy ratio when
// the electromagnetic sum is zero and the ratio is undefined.
const ratioSentinel = 999.9

// emitFunc appends one finished record to the bound output branch.
type emitFunc func(rec any) error

// converterFunc converts one input collection for one event, emitting zero
// or more records.
type converterFunc func(w *Writer, ev *event.Event, refs []event.Ref, emit emitFunc) error

// converterTable returns the closed class-to-converter binding.
func converterTable() map[Class]converterFunc {
	return map[Class]converterFunc{
		ClassParticle:  (*Writer).convertParticles,
		ClassVertex:    (*Writer).convertVertices,
		ClassTrack:     (*Writer).convertTracks,
		ClassTower:     (*Writer).convertTowers,
		ClassPhoton:    (*Writer).convertPhotons,
		ClassElectron:  (*Writer).convertElectrons,
		ClassMuon:      (*Writer).convertMuons,
		ClassJet:       (*Writer).convertJets,
		ClassMissingET: (*Writer).convertMissingET,
		ClassScalarHT:  (*Writer).convertScalarHT,
		ClassRho:       (*Writer).convertRho,
		ClassWeight:    (*Writer).convertWeight,
		ClassHectorHit: (*Writer).convertHectorHit,
	}
}

// firstConstituent returns the candidate's first constituent ref, or NoRef.
func firstConstituent(c *event.Candidate) event.Ref {
	if len(c.Constituents) == 0 {
		return event.NoRef
	}
	return c.Constituents[0]
}

func (w *Writer) convertParticles(ev *event.Event, refs []event.Ref, emit emitFunc) error {
	for _, r := range refs {
		c := ev.At(r)
		mom, pos := c.Momentum, c.Position

		rec := Particle{
			UID: c.UID,

			PID:    c.PID,
			Status: c.Status,
			IsPU:   c.IsPU,

			M1: c.M1, M2: c.M2,
			D1: c.D1, D2: c.D2,

			Charge: c.Charge,
			Mass:   c.Mass,

			E:  mom.E,
			Px: mom.Px, Py: mom.Py, Pz: mom.Pz,

			Eta:      mom.Eta(),
			Phi:      mom.Phi(),
			PT:       mom.Pt(),
			Rapidity: mom.Rapidity(),

			X: pos.X(), Y: pos.Y(), Z: pos.Z(),
			T: fourvec.LabTime(pos.T()),
		}
		if err := emit(rec); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) convertVertices(ev *event.Event, refs []event.Ref, emit emitFunc) error {
	for _, r := range refs {
		pos := ev.At(r).Position

		rec := Vertex{
			X: pos.X(), Y: pos.Y(), Z: pos.Z(),
			T: fourvec.LabTime(pos.T()),
		}
		if err := emit(rec); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) convertTracks(ev *event.Event, refs []event.Ref, emit emitFunc) error {
	for i, r := range refs {
		c := ev.At(r)
		mom, pos := c.Momentum, c.Position

		rec := Track{
			UID: c.UID,

			PID:    c.PID,
			Charge: c.Charge,

			// Outer-surface direction comes from the position vector.
			EtaOuter: pos.Eta(),
			PhiOuter: pos.Phi(),

			XOuter: pos.X(), YOuter: pos.Y(), ZOuter: pos.Z(),
			TOuter: fourvec.LabTime(pos.T()),

			Dxy:  c.Dxy,
			SDxy: c.SDxy,
			Xd:   c.Xd, Yd: c.Yd,
			Zd: c.Zd,

			TrkPar: c.TrkPar,
			TrkCov: c.TrkCov,

			Eta: mom.Eta(),
			Phi: mom.Phi(),
			PT:  mom.Pt(),

			Particle: firstConstituent(c),
		}

		// Origin is the production point of the originating particle.
		if rec.Particle != event.NoRef {
			origin := ev.At(rec.Particle).Position
			rec.X, rec.Y, rec.Z = origin.X(), origin.Y(), origin.Z()
			rec.T = fourvec.LabTime(origin.T())
		}

		if report := CheckTrack(&rec); len(report) > 0 && w.cfg.strict {
			return &ConsistencyError{Index: i, Report: report}
		}

		if err := emit(rec); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) convertTowers(ev *event.Event, refs []event.Ref, emit emitFunc) error {
	for _, r := range refs {
		c := ev.At(r)
		mom, pos := c.Momentum, c.Position

		particles, err := Flatten(ev, r)
		if err != nil {
			return err
		}

		rec := Tower{
			UID: c.UID,

			Eta: mom.Eta(),
			Phi: mom.Phi(),
			ET:  mom.Pt(),
			E:   mom.E,

			Eem:   c.Eem,
			Ehad:  c.Ehad,
			Edges: c.Edges,

			T:         fourvec.LabTime(pos.T()),
			NTimeHits: c.NTimeHits,

			Particles: particles,
		}
		if err := emit(rec); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) convertPhotons(ev *event.Event, refs []event.Ref, emit emitFunc) error {
	for _, r := range sortedRefs(ev, refs, w.cfg.inPlaceSort) {
		c := ev.At(r)
		mom, pos := c.Momentum, c.Position

		particles, err := Flatten(ev, r)
		if err != nil {
			return err
		}

		rec := Photon{
			Eta: mom.Eta(),
			Phi: mom.Phi(),
			PT:  mom.Pt(),
			E:   mom.E,
			T:   fourvec.LabTime(pos.T()),

			IsolationVar:        c.IsolationVar,
			IsolationVarRhoCorr: c.IsolationVarRhoCorr,
			SumPtCharged:        c.SumPtCharged,
			SumPtNeutral:        c.SumPtNeutral,
			SumPtChargedPU:      c.SumPtChargedPU,
			SumPt:               c.SumPt,

			EhadOverEem: ratioSentinel,

			Particles: particles,
		}
		if c.Eem > 0.0 {
			rec.EhadOverEem = c.Ehad / c.Eem
		}

		if err := emit(rec); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) convertElectrons(ev *event.Event, refs []event.Ref, emit emitFunc) error {
	for _, r := range sortedRefs(ev, refs, w.cfg.inPlaceSort) {
		c := ev.At(r)
		mom, pos := c.Momentum, c.Position

		rec := Electron{
			Eta: mom.Eta(),
			Phi: mom.Phi(),
			PT:  mom.Pt(),
			T:   fourvec.LabTime(pos.T()),

			IsolationVar:        c.IsolationVar,
			IsolationVarRhoCorr: c.IsolationVarRhoCorr,
			SumPtCharged:        c.SumPtCharged,
			SumPtNeutral:        c.SumPtNeutral,
			SumPtChargedPU:      c.SumPtChargedPU,
			SumPt:               c.SumPt,

			Charge: c.Charge,

			// Electrons are seeded by tracks; the calorimeter ratio is
			// zero by definition of the reconstruction.
			EhadOverEem: 0.0,

			Particle: firstConstituent(c),
		}
		if err := emit(rec); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) convertMuons(ev *event.Event, refs []event.Ref, emit emitFunc) error {
	for _, r := range sortedRefs(ev, refs, w.cfg.inPlaceSort) {
		c := ev.At(r)
		mom, pos := c.Momentum, c.Position

		rec := Muon{
			UID: c.UID,

			Eta: mom.Eta(),
			Phi: mom.Phi(),
			PT:  mom.Pt(),
			T:   fourvec.LabTime(pos.T()),

			IsolationVar:        c.IsolationVar,
			IsolationVarRhoCorr: c.IsolationVarRhoCorr,
			SumPtCharged:        c.SumPtCharged,
			SumPtNeutral:        c.SumPtNeutral,
			SumPtChargedPU:      c.SumPtChargedPU,
			SumPt:               c.SumPt,

			Charge: c.Charge,

			Particle: firstConstituent(c),
		}
		if err := emit(rec); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) convertMissingET(ev *event.Event, refs []event.Ref, emit emitFunc) error {
	if len(refs) == 0 {
		return nil
	}
	// Only the first entry carries the pre-summed visible momentum.
	mom := ev.At(refs[0]).Momentum
	neg := mom.Neg()

	return emit(MissingET{
		MET: mom.Pt(),
		Eta: neg.Eta(),
		Phi: neg.Phi(),
	})
}

func (w *Writer) convertScalarHT(ev *event.Event, refs []event.Ref, emit emitFunc) error {
	if len(refs) == 0 {
		return nil
	}
	return emit(ScalarHT{HT: ev.At(refs[0]).Momentum.Pt()})
}

func (w *Writer) convertRho(ev *event.Event, refs []event.Ref, emit emitFunc) error {
	// One record per entry: each candidate covers its own eta range.
	for _, r := range refs {
		c := ev.At(r)

		rec := Rho{
			Rho:   c.Momentum.E,
			Edges: [2]float64{c.Edges[0], c.Edges[1]},
		}
		if err := emit(rec); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) convertWeight(ev *event.Event, refs []event.Ref, emit emitFunc) error {
	if len(refs) == 0 {
		return nil
	}
	return emit(Weight{Weight: ev.At(refs[0]).Momentum.E})
}

func (w *Writer) convertHectorHit(ev *event.Event, refs []event.Ref, emit emitFunc) error {
	for _, r := range refs {
		c := ev.At(r)
		mom, pos := c.Momentum, c.Position

		rec := HectorHit{
			E: mom.E,

			Tx: mom.Px,
			Ty: mom.Py,

			// Forward-detector time is stored as produced.
			T: pos.T(),

			X: pos.X(), Y: pos.Y(),
			S: pos.Z(),

			Particle: firstConstituent(c),
		}
		if err := emit(rec); err != nil {
			return err
		}
	}
	return nil
}
