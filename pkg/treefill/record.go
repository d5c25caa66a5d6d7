package treefill

import (
	"github.com/collidersim/treefill/pkg/treefill/event"
	"github.com/collidersim/treefill/pkg/treefill/fourvec"
)

// The output record types. One value type per schema class, flat by
// construction: the only cross-references are event.Ref indices back into
// the event arena, never ownership. Records are never mutated after the
// converter emits them.

// Particle is a generator-level particle record.
type Particle struct {
	UID uint32

	PID    int32
	Status int32
	IsPU   int32

	M1, M2 int32
	D1, D2 int32

	Charge int32
	Mass   float64

	E          float64
	Px, Py, Pz float64

	Eta      float64
	Phi      float64
	PT       float64
	Rapidity float64

	X, Y, Z float64
	T       float64
}

// Vertex is a reconstructed interaction vertex record.
type Vertex struct {
	X, Y, Z float64
	T       float64
}

// Track parameter vector indices for Track.TrkPar.
const (
	ParD0 = iota
	ParZ0
	ParPhi
	ParTheta
	ParQOverP
)

// Track is a charged-track record. TrkPar holds the fitted 5-parameter
// representation (d0, z0, phi, theta, q/p) and TrkCov its 15-element
// covariance; Dxy and Zd duplicate the first two entries and CheckTrack
// verifies the duplication.
type Track struct {
	UID uint32

	PID    int32
	Charge int32

	EtaOuter float64
	PhiOuter float64

	XOuter, YOuter, ZOuter float64
	TOuter                 float64

	Dxy    float64
	SDxy   float64
	Xd, Yd float64
	Zd     float64

	TrkPar [5]float64
	TrkCov [15]float64

	Eta float64
	Phi float64
	PT  float64

	X, Y, Z float64
	T       float64

	// Particle references the originating generator particle.
	Particle event.Ref
}

// Tower is a calorimeter tower record.
type Tower struct {
	UID uint32

	Eta float64
	Phi float64
	ET  float64
	E   float64

	Eem   float64
	Ehad  float64
	Edges [4]float64

	T         float64
	NTimeHits int32

	// Particles lists the leaf constituents that deposited in the tower.
	Particles []event.Ref
}

// Photon is an isolated-photon record.
type Photon struct {
	Eta float64
	Phi float64
	PT  float64
	E   float64
	T   float64

	IsolationVar        float64
	IsolationVarRhoCorr float64
	SumPtCharged        float64
	SumPtNeutral        float64
	SumPtChargedPU      float64
	SumPt               float64

	EhadOverEem float64

	Particles []event.Ref
}

// Electron is an isolated-electron record.
type Electron struct {
	Eta float64
	Phi float64
	PT  float64
	T   float64

	IsolationVar        float64
	IsolationVarRhoCorr float64
	SumPtCharged        float64
	SumPtNeutral        float64
	SumPtChargedPU      float64
	SumPt               float64

	Charge int32

	EhadOverEem float64

	Particle event.Ref
}

// Muon is an isolated-muon record.
type Muon struct {
	UID uint32

	Eta float64
	Phi float64
	PT  float64
	T   float64

	IsolationVar        float64
	IsolationVarRhoCorr float64
	SumPtCharged        float64
	SumPtNeutral        float64
	SumPtChargedPU      float64
	SumPt               float64

	Charge int32

	Particle event.Ref
}

// VertexTrack summarizes one track entering a vertex fit, copied
// field-for-field from the candidate's reconstruction output.
type VertexTrack struct {
	Weight   float64
	D0       float64
	Z0       float64
	D0Err    float64
	Z0Err    float64
	Momentum float64
	DPhi     float64
	DEta     float64
}

// SecondaryVertex is a displaced decay vertex attached to a jet record.
type SecondaryVertex struct {
	X, Y, Z             float64
	Lxy                 float64
	Lsig                float64
	DecayLengthVariance float64
	NTracks             int32
	EFrac               float64
	Mass                float64
	Config              int32
	Tracks              []VertexTrack
}

// TruthVertex is a generator-level decay vertex matched to a jet.
type TruthVertex struct {
	X, Y, Z float64
	PID     int32
}

// Jet is a reconstructed-jet record, including flavor tags, pile-up jet
// identification shapes, substructure summaries, and the secondary-vertex
// system with its associated tracks.
type Jet struct {
	Eta float64
	Phi float64
	PT  float64
	T   float64

	Mass float64
	Area fourvec.FourVec

	DeltaEta float64
	DeltaPhi float64

	Flavor     int32
	FlavorAlgo int32
	FlavorPhys int32

	BTag     int32
	BTagAlgo int32
	BTagPhys int32
	TauTag   int32

	Charge int32

	EhadOverEem float64

	// Secondary-vertex system.
	PrimaryVertexTracks     []VertexTrack
	SecondaryVertices       []SecondaryVertex
	HLSecondaryVertexTracks []VertexTrack
	HLSecondaryVertex       VertexTrack
	MLSecondaryVertex       VertexTrack
	HLTrack                 VertexTrack
	TruthVertices           []TruthVertex

	// Pile-up jet identification.
	NCharged     int32
	NNeutrals    int32
	Beta         float64
	BetaStar     float64
	MeanSqDeltaR float64
	PTD          float64

	// Substructure.
	NSubJetsTrimmed     int32
	NSubJetsPruned      int32
	NSubJetsSoftDropped int32
	FracPt              [5]float64
	Tau                 [5]float64
	TrimmedP4           [5]fourvec.FourVec
	PrunedP4            [5]fourvec.FourVec
	SoftDroppedP4       [5]fourvec.FourVec

	Constituents []event.Ref
	Subjets      []event.Ref
	Tracks       []event.Ref
	Particles    []event.Ref
}

// MissingET is the event's missing transverse momentum record: the
// direction of the negated visible-momentum sum and its magnitude.
type MissingET struct {
	MET float64
	Eta float64
	Phi float64
}

// ScalarHT is the scalar sum of transverse momenta, one value per event.
type ScalarHT struct {
	HT float64
}

// Rho is a pile-up energy-density estimate over one eta range.
type Rho struct {
	Rho   float64
	Edges [2]float64
}

// Weight is the generator event weight.
type Weight struct {
	Weight float64
}

// HectorHit is a forward-detector hit record. Tx and Ty are the hit
// deflection angles, X/Y/S the detector-plane coordinates; T is stored
// as produced, without unit conversion.
type HectorHit struct {
	E float64

	Tx float64
	Ty float64

	T float64

	X, Y float64
	S    float64

	Particle event.Ref
}
