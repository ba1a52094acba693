package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/gwillem/armtorque/pkg/robot"
)

type Options struct {
	Config string `short:"c" long:"config" description:"Arm description file"`

	Torque   TorqueCommand   `command:"torque" description:"Compute the static torque on the shoulder joint"`
	Point    PointCommand    `command:"point" description:"Compute the torque of a point mass at a lever arm"`
	Capacity CapacityCommand `command:"capacity" alias:"cap" description:"Estimate the maximum load a servo can hold"`
	Setup    SetupCommand    `command:"setup" description:"Describe the arm and save it to the config file"`
	Tune     TuneCommand     `command:"tune" description:"Interactively explore servo capacity"`
}

var opts = Options{Config: robot.DefaultConfigFile}
var parser = flags.NewParser(&opts, flags.Default)

// stdout receives all command output.
var stdout io.Writer = os.Stdout

// loadArm reads the arm description, falling back to the reference SO-101 build.
func loadArm() (*robot.Config, error) {
	cfg, err := robot.LoadConfigOrDefault(opts.Config)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", opts.Config, err)
	}
	return cfg, nil
}

func main() {
	parser.LongDescription = "armtorque - static torque estimates for hobby robot arms"
	if o := parser.FindOptionByLongName("config"); o != nil {
		o.Default = []string{robot.DefaultConfigFile}
	}

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				os.Exit(0)
			}
		}
		os.Exit(1)
	}
}
