package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/gwillem/armtorque/pkg/robot"
	"github.com/gwillem/armtorque/pkg/torque"
)

type SetupCommand struct {
	Defaults bool `long:"defaults" description:"Save the reference SO-101 arm without asking"`
}

func (c *SetupCommand) Execute(args []string) error {
	fmt.Fprintln(stdout, headerStyle.Render("Arm Setup"))
	fmt.Fprintln(stdout, dimStyle.Render("━━━━━━━━━"))
	fmt.Fprintln(stdout)

	cfg := robot.DefaultConfig()
	if !c.Defaults {
		// Start from the existing description so setup can be re-run to tweak it
		if robot.ConfigExists(opts.Config) {
			loaded, err := robot.LoadConfigFrom(opts.Config)
			if err != nil {
				return err
			}
			cfg = loaded
			fmt.Fprintln(stdout, dimStyle.Render("Editing "+opts.Config))
		} else {
			fmt.Fprintln(stdout, dimStyle.Render("Starting from the reference SO-101 arm"))
		}
		fmt.Fprintln(stdout)

		if err := runSetupForm(cfg); err != nil {
			return fmt.Errorf("setup form: %w", err)
		}
	}

	if err := cfg.SaveTo(opts.Config); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, successStyle.Render("Setup complete!"))
	fmt.Fprintf(stdout, "Arm description saved to %s\n", opts.Config)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Compute the shoulder torque with: "+headerStyle.Render("armtorque torque"))

	return nil
}

// numberField is a form input bound to a float64.
type numberField struct {
	text   string
	target *float64
}

func newNumberField(target *float64) *numberField {
	return &numberField{
		text:   strconv.FormatFloat(*target, 'f', -1, 64),
		target: target,
	}
}

func (f *numberField) input(title, description string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Description(description).
		Value(&f.text).
		Validate(validateNumber)
}

func (f *numberField) apply() error {
	v, err := strconv.ParseFloat(f.text, 64)
	if err != nil {
		return err
	}
	*f.target = v
	return nil
}

func validateNumber(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("not a number")
	}
	return torque.CheckValue(v)
}

func runSetupForm(cfg *robot.Config) error {
	var fields []*numberField
	var groups []*huh.Group

	// One group per link, shoulder to tip
	links := make(map[robot.LinkName]*robot.LinkConfig, len(robot.AllLinks()))
	for _, name := range robot.AllLinks() {
		lc := cfg.Links[name]
		links[name] = &lc

		length := newNumberField(&links[name].LengthMM)
		mass := newNumberField(&links[name].MassG)
		fields = append(fields, length, mass)

		groups = append(groups, huh.NewGroup(
			length.input(fmt.Sprintf("%s length (mm)", name.Label()), "Joint to joint"),
			mass.input(fmt.Sprintf("%s mass (g)", name.Label()), "Without servos"),
		))
	}

	baseMass := newNumberField(&cfg.BaseServo.MassG)
	baseRating := newNumberField(&cfg.BaseServo.RatingKgCm)
	jointMass := newNumberField(&cfg.JointServo.MassG)
	jointRating := newNumberField(&cfg.JointServo.RatingKgCm)
	percent := newNumberField(&cfg.UsablePercent)
	fields = append(fields, baseMass, baseRating, jointMass, jointRating, percent)

	groups = append(groups, huh.NewGroup(
		baseMass.input("Base servo mass (g)", "Mounted halfway along the forearm (l3)"),
		baseRating.input("Base servo rating (kg·cm)", "Stall torque from the datasheet"),
		jointMass.input("Joint servo mass (g)", "Used at the ends of l3, l4 and ee"),
		jointRating.input("Joint servo rating (kg·cm)", "0 if unknown; checked against the elbow's reach"),
		percent.input("Usable torque (%)", "Share of the rating you are willing to use"),
	))

	if err := huh.NewForm(groups...).Run(); err != nil {
		return err
	}

	for _, f := range fields {
		if err := f.apply(); err != nil {
			return err
		}
	}
	for name, lc := range links {
		cfg.SetLink(name, *lc)
	}
	return nil
}
