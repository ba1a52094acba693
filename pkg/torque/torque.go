// Package torque computes static gravitational loads on a serial robot arm.
//
// All inputs use the units found on a build sheet: link lengths in millimetres,
// masses in grams and servo ratings in kg·cm. Results are in newtons and
// newton-metres.
package torque

// Physical constants and unit conversions.
const (
	Gravity   = 9.8        // m/s^2
	GramsToKg = 1.0 / 1000 // g -> kg
	MMToM     = 1.0 / 1000 // mm -> m
	MMToCM    = 1.0 / 10   // mm -> cm
	KgCmToNm  = 10 * Gravity * MMToM
)

// NumLinks is the number of links between the shoulder and the tip.
const NumLinks = 4

// NumServos is the number of servos carried by the links.
const NumServos = 4

// Default servo masses in grams.
const (
	DefaultBaseServoMassG  = 56
	DefaultJointServoMassG = 13.4
)

// Link is a rigid segment with its mass concentrated at half its length.
type Link struct {
	LengthMM float64
	MassG    float64
}

// ServoMasses holds the two servo masses carried by the arm.
// Base is mounted closest to the shoulder; Joint is used for the remaining three.
type ServoMasses struct {
	Base  float64
	Joint float64
}

// DefaultServoMasses returns the servo masses of the reference arm.
func DefaultServoMasses() ServoMasses {
	return ServoMasses{
		Base:  DefaultBaseServoMassG,
		Joint: DefaultJointServoMassG,
	}
}

// Result holds the breakdown of a shoulder torque calculation.
type Result struct {
	LinkCoGM        [NumLinks]float64 // distance from shoulder to each link's centre of gravity
	LinkTorques     [NumLinks]float64
	ServoDistancesM [NumServos]float64
	ServoTorques    [NumServos]float64
	TotalNm         float64
	TotalLengthMM   float64
}

// LinkTorqueNm returns the summed torque of all links.
func (r Result) LinkTorqueNm() float64 {
	var sum float64
	for _, t := range r.LinkTorques {
		sum += t
	}
	return sum
}

// ServoTorqueNm returns the summed torque of all servos.
func (r Result) ServoTorqueNm() float64 {
	var sum float64
	for _, t := range r.ServoTorques {
		sum += t
	}
	return sum
}

// Weight converts a mass in grams to a force in newtons.
func Weight(massG float64) float64 {
	return massG * GramsToKg * Gravity
}

// Calc computes the torque on the shoulder joint with the arm held horizontal.
// Inputs are not validated; see Validate.
func Calc(links [NumLinks]Link, servos ServoMasses) Result {
	var r Result

	// Links: walk to each centre of gravity, then on to the next joint
	var dist float64
	for i, l := range links {
		half := l.LengthMM / 2 * MMToM
		dist += half
		r.LinkCoGM[i] = dist
		r.LinkTorques[i] = Weight(l.MassG) * dist
		dist += half
		r.TotalLengthMM += l.LengthMM
	}

	// Servos: mid-l3, end of l3, end of l4, end of ee
	distsMM := [NumServos]float64{
		links[0].LengthMM + links[1].LengthMM/2,
		links[0].LengthMM + links[1].LengthMM,
		links[0].LengthMM + links[1].LengthMM + links[2].LengthMM,
		links[0].LengthMM + links[1].LengthMM + links[2].LengthMM + links[3].LengthMM,
	}
	for i, d := range distsMM {
		mass := servos.Joint
		if i == 0 {
			mass = servos.Base
		}
		r.ServoDistancesM[i] = d * MMToM
		r.ServoTorques[i] = Weight(mass) * r.ServoDistancesM[i]
	}

	r.TotalNm = r.LinkTorqueNm() + r.ServoTorqueNm()
	return r
}
