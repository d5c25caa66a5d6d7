package treefill

// Class identifies one of the thirteen output record schemas. The set is
// closed: configuration can only bind branches to these classes, and the
// writer's converter table covers exactly this set.
type Class string

const (
	ClassParticle  Class = "Particle"
	ClassVertex    Class = "Vertex"
	ClassTrack     Class = "Track"
	ClassTower     Class = "Tower"
	ClassPhoton    Class = "Photon"
	ClassElectron  Class = "Electron"
	ClassMuon      Class = "Muon"
	ClassJet       Class = "Jet"
	ClassMissingET Class = "MissingET"
	ClassScalarHT  Class = "ScalarHT"
	ClassRho       Class = "Rho"
	ClassWeight    Class = "Weight"
	ClassHectorHit Class = "HectorHit"
)

// Classes returns all known classes in their canonical order.
func Classes() []Class {
	return []Class{
		ClassParticle,
		ClassVertex,
		ClassTrack,
		ClassTower,
		ClassPhoton,
		ClassElectron,
		ClassMuon,
		ClassJet,
		ClassMissingET,
		ClassScalarHT,
		ClassRho,
		ClassWeight,
		ClassHectorHit,
	}
}

// ParseClass resolves a schema-type name to a Class.
// Matching is case-sensitive.
func ParseClass(name string) (Class, bool) {
	for _, c := range Classes() {
		if string(c) == name {
			return c, true
		}
	}
	return "", false
}
