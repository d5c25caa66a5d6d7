package event

import "github.com/collidersim/treefill/pkg/treefill/fourvec"

// Candidate is the generic reconstructed-object record produced by the
// upstream simulation and reconstruction chain. One struct serves every
// object category; converters read only the fields meaningful for their
// category and ignore the rest.
type Candidate struct {
	// UID is the producer-assigned identity, preserved on output records
	// that other records reference back to.
	UID uint32

	Momentum fourvec.FourVec
	Position fourvec.FourVec

	// Constituents lists the direct sub-candidates, in production order.
	Constituents []Ref

	// Generator-level attributes.
	PID    int32
	Status int32
	IsPU   int32
	M1, M2 int32
	D1, D2 int32
	Charge int32
	Mass   float64

	// Calorimeter attributes.
	Eem       float64
	Ehad      float64
	Edges     [4]float64
	NTimeHits int32

	// Isolation sums.
	IsolationVar        float64
	IsolationVarRhoCorr float64
	SumPtCharged        float64
	SumPtNeutral        float64
	SumPtChargedPU      float64
	SumPt               float64

	// Track impact parameters and the fitted 5-parameter representation
	// with its 15-element covariance (lower triangle, row-major).
	Dxy    float64
	SDxy   float64
	Xd     float64
	Yd     float64
	Zd     float64
	TrkPar [5]float64
	TrkCov [15]float64

	// Jet attributes.
	Area               fourvec.FourVec
	DeltaEta, DeltaPhi float64
	Flavor             int32
	FlavorAlgo         int32
	FlavorPhys         int32
	BTag               int32
	BTagAlgo           int32
	BTagPhys           int32
	TauTag             int32

	// Pile-up jet identification shapes.
	NCharged     int32
	NNeutrals    int32
	Beta         float64
	BetaStar     float64
	MeanSqDeltaR float64
	PTD          float64

	// Jet substructure.
	NSubJetsTrimmed     int32
	NSubJetsPruned      int32
	NSubJetsSoftDropped int32
	FracPt              [5]float64
	Tau                 [5]float64
	TrimmedP4           [5]fourvec.FourVec
	PrunedP4            [5]fourvec.FourVec
	SoftDroppedP4       [5]fourvec.FourVec

	// Secondary-vertex reconstruction attached to jets.
	PrimaryVertexTracks []VertexTrack
	SecondaryVertices   []SecondaryVertex
	HLSecVtxTracks      []VertexTrack
	HLSecVtx            VertexTrack
	MLSecVtx            VertexTrack
	HLTrack             VertexTrack
	TruthVertices       []TruthVertex

	// Jet sub-clusterings and tagging tracks.
	Subjets []Ref
	Tracks  []Ref
}

// VertexTrack summarizes one track entering a vertex fit.
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

// SecondaryVertex is a displaced decay vertex reconstructed inside a jet,
// with its own associated tracks.
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
