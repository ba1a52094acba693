package torque

import (
	"fmt"
	"io"
)

// PrintTotal writes the total shoulder torque.
func PrintTotal(w io.Writer, r Result) {
	fmt.Fprintf(w, "Total torque from links and servos: %.3f Nm\n", r.TotalNm)
}

// PrintPointLoad writes the weight and torque of a point load.
func PrintPointLoad(w io.Writer, p PointLoad) {
	fmt.Fprintf(w, "Torque from %.2fg (%.2fN) at %vmm = %.3f Nm\n", p.MassG, p.WeightN, p.LengthMM, p.TorqueNm)
}

// PrintCapacity writes the usable torque and maximum load of a servo.
func PrintCapacity(w io.Writer, c Capacity) {
	fmt.Fprintf(w, "Using %v%% of a %v kg·cm servo's torque:\n", c.Percent, c.RatingKgCm)
	fmt.Fprintf(w, "→ Usable torque: %.2f kg·cm ≈ %.3f Nm\n", c.UsableKgCm, c.UsableNm)
	fmt.Fprintf(w, "→ Max load at %.1f cm: %.3f kg (%.2f N)\n", c.DistanceCM, c.MaxMassKg, c.MaxForceN)
}
