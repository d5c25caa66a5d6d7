// Package fourvec provides four-vector kinematics for collider event records.
//
// A FourVec is used both as a momentum four-vector (Px, Py, Pz, E) and as a
// position four-vector, where the components are read as (X, Y, Z, T) with T
// given in millimeters of light travel. All derived quantities are pure
// functions of the components, so identical inputs always produce bit-identical
// outputs.
package fourvec

import "math"

// CLight is the speed of light in meters per second.
// It is the single constant used for all time-unit conversions.
const CLight = 2.99792458e8

// axisSentinel is stored for eta and rapidity when the vector points exactly
// along the beam axis and the angle-based formulas are undefined.
const axisSentinel = 999.9

// FourVec is a momentum or position four-vector.
type FourVec struct {
	Px, Py, Pz, E float64
}

// X returns the first spatial component when the vector holds a position.
func (v FourVec) X() float64 { return v.Px }

// Y returns the second spatial component when the vector holds a position.
func (v FourVec) Y() float64 { return v.Py }

// Z returns the longitudinal component when the vector holds a position.
func (v FourVec) Z() float64 { return v.Pz }

// T returns the time component (in mm) when the vector holds a position.
func (v FourVec) T() float64 { return v.E }

// Pt returns the transverse momentum, sqrt(px^2 + py^2).
func (v FourVec) Pt() float64 {
	return math.Sqrt(v.Px*v.Px + v.Py*v.Py)
}

// P returns the magnitude of the three-momentum.
func (v FourVec) P() float64 {
	return math.Sqrt(v.Px*v.Px + v.Py*v.Py + v.Pz*v.Pz)
}

// CosTheta returns the cosine of the polar angle.
// A zero vector reports 1 (pointing along the positive beam axis).
func (v FourVec) CosTheta() float64 {
	p := v.P()
	if p == 0 {
		return 1
	}
	return v.Pz / p
}

// Phi returns the azimuthal angle in (-pi, pi].
func (v FourVec) Phi() float64 {
	return math.Atan2(v.Py, v.Px)
}

// Eta returns the pseudorapidity.
//
// When the vector points exactly along the beam axis (|cos theta| == 1.0)
// the closed form diverges, and Eta returns sign(pz) * 999.9 instead:
// undefined magnitude, known direction. pz == 0 counts as positive.
func (v FourVec) Eta() float64 {
	cosTheta := math.Abs(v.CosTheta())
	if cosTheta == 1.0 {
		return signPz(v.Pz) * axisSentinel
	}
	p := v.P()
	return 0.5 * math.Log((p+v.Pz)/(p-v.Pz))
}

// Rapidity returns the energy-based rapidity, with the same beam-axis
// sentinel policy as Eta.
func (v FourVec) Rapidity() float64 {
	cosTheta := math.Abs(v.CosTheta())
	if cosTheta == 1.0 {
		return signPz(v.Pz) * axisSentinel
	}
	return 0.5 * math.Log((v.E+v.Pz)/(v.E-v.Pz))
}

// M returns the invariant mass. Spacelike vectors (negative mass squared)
// report the negated magnitude, matching the usual convention.
func (v FourVec) M() float64 {
	mm := v.E*v.E - (v.Px*v.Px + v.Py*v.Py + v.Pz*v.Pz)
	if mm < 0 {
		return -math.Sqrt(-mm)
	}
	return math.Sqrt(mm)
}

// Neg returns the four-vector with all components negated.
func (v FourVec) Neg() FourVec {
	return FourVec{Px: -v.Px, Py: -v.Py, Pz: -v.Pz, E: -v.E}
}

// LabTime converts a position time component, given in millimeters of light
// travel, to laboratory time: t * 1.0e-3 / CLight.
func LabTime(t float64) float64 {
	return t * 1.0e-3 / CLight
}

func signPz(pz float64) float64 {
	if pz >= 0 {
		return 1.0
	}
	return -1.0
}
