package main

import (
	"github.com/gwillem/armtorque/pkg/torque"
)

type PointCommand struct {
	Mass   float64  `short:"m" long:"mass" required:"true" description:"Mass in g"`
	Length *float64 `short:"l" long:"length" description:"Lever arm in mm (default: full extension of the arm)"`
}

func (c *PointCommand) Execute(args []string) error {
	var length float64
	if c.Length != nil {
		length = *c.Length
	} else {
		cfg, err := loadArm()
		if err != nil {
			return err
		}
		length = torque.Calc(cfg.TorqueLinks(), cfg.ServoMasses()).TotalLengthMM
	}

	torque.PrintPointLoad(stdout, torque.PointMass(c.Mass, length))
	return nil
}
