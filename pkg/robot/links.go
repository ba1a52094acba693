// Package robot describes the physical build of a robot arm.
package robot

// LinkName identifies a link of the arm.
type LinkName string

// Link names from the shoulder to the tip.
const (
	UpperArm    LinkName = "l2"
	Forearm     LinkName = "l3"
	Wrist       LinkName = "l4"
	EndEffector LinkName = "ee"
)

// AllLinks returns all link names in order from the shoulder to the tip.
func AllLinks() []LinkName {
	return []LinkName{
		UpperArm,
		Forearm,
		Wrist,
		EndEffector,
	}
}

// Label returns a human readable name for the link.
func (n LinkName) Label() string {
	switch n {
	case UpperArm:
		return "upper arm"
	case Forearm:
		return "forearm"
	case Wrist:
		return "wrist"
	case EndEffector:
		return "end effector"
	}
	return string(n)
}

// LinkConfig holds the length and mass of a single link.
type LinkConfig struct {
	LengthMM float64 `json:"length_mm"`
	MassG    float64 `json:"mass_g"`
}
