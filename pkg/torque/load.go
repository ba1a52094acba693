package torque

// DefaultPercent is the share of rated servo torque used when none is given.
const DefaultPercent = 100

// PointLoad is a mass held at a lever arm from the joint.
type PointLoad struct {
	MassG    float64
	LengthMM float64
	WeightN  float64
	TorqueNm float64
}

// PointMass computes the torque of a point mass at lengthMM from the joint.
func PointMass(massG, lengthMM float64) PointLoad {
	w := Weight(massG)
	return PointLoad{
		MassG:    massG,
		LengthMM: lengthMM,
		WeightN:  w,
		TorqueNm: w * lengthMM * MMToM,
	}
}

// Capacity is the load a servo can hold at a distance.
type Capacity struct {
	RatingKgCm float64
	Percent    float64
	DistanceCM float64
	UsableKgCm float64
	UsableNm   float64
	MaxMassKg  float64
	MaxForceN  float64
}

// ServoCapacity estimates the largest mass a servo rated at ratingKgCm can hold
// at distanceMM when only percent of its rating is used.
// A zero distance yields an infinite mass.
func ServoCapacity(ratingKgCm, distanceMM, percent float64) Capacity {
	c := Capacity{
		RatingKgCm: ratingKgCm,
		Percent:    percent,
		DistanceCM: distanceMM * MMToCM,
		UsableKgCm: ratingKgCm * (percent / 100),
	}
	c.UsableNm = c.UsableKgCm * KgCmToNm
	c.MaxMassKg = c.UsableKgCm / c.DistanceCM
	c.MaxForceN = c.MaxMassKg * Gravity
	return c
}
