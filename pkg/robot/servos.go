package robot

import "github.com/gwillem/armtorque/pkg/torque"

// ServoConfig holds the physical data of a servo model.
type ServoConfig struct {
	MassG      float64 `json:"mass_g"`
	RatingKgCm float64 `json:"rating_kgcm,omitempty"`
}

// ServoMount names the position of a servo along the arm.
type ServoMount string

// Servo mounting positions from the shoulder to the tip. The base servo sits
// halfway along the forearm (l3), the joint servos at the far ends of l3, l4 and ee.
const (
	MountMidForearm ServoMount = "mid_l3"
	MountElbow      ServoMount = "end_l3"
	MountWrist      ServoMount = "end_l4"
	MountTip        ServoMount = "end_ee"
)

// AllMounts returns all servo mounting positions in the order used by torque.Calc.
func AllMounts() []ServoMount {
	return []ServoMount{
		MountMidForearm,
		MountElbow,
		MountWrist,
		MountTip,
	}
}

// Capacity returns the load the base servo can hold at distanceMM using the
// configured share of its rating.
func (c *Config) Capacity(distanceMM float64) torque.Capacity {
	return torque.ServoCapacity(c.BaseServo.RatingKgCm, distanceMM, c.Percent())
}

// JointCapacity returns the load the joint servo can hold at distanceMM using
// the configured share of its rating.
func (c *Config) JointCapacity(distanceMM float64) torque.Capacity {
	return torque.ServoCapacity(c.JointServo.RatingKgCm, distanceMM, c.Percent())
}

// JointReachMM returns the distance from the elbow servo (end of l3) to the tip.
func (c *Config) JointReachMM() float64 {
	return c.Links[Wrist].LengthMM + c.Links[EndEffector].LengthMM
}

// Percent returns the usable share of servo torque, falling back to
// torque.DefaultPercent when unset.
func (c *Config) Percent() float64 {
	if c.UsablePercent <= 0 {
		return torque.DefaultPercent
	}
	return c.UsablePercent
}
