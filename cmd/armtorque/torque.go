package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/gwillem/armtorque/pkg/robot"
	"github.com/gwillem/armtorque/pkg/torque"
)

type TorqueCommand struct {
	Links  []string           `short:"l" long:"link" value-name:"NAME=LENGTH:MASS" description:"Override a link (l2, l3, l4, ee) with length in mm and mass in g"`
	Servos map[string]float64 `short:"s" long:"servo" value-name:"base|joint:MASS" description:"Override a servo mass in g"`
	Strict bool               `long:"strict" description:"Reject negative or non-finite lengths and masses"`
	Quiet  bool               `short:"q" long:"quiet" description:"Only print the total"`
}

func (c *TorqueCommand) Execute(args []string) error {
	cfg, err := loadArm()
	if err != nil {
		return err
	}

	for _, s := range c.Links {
		name, lc, err := parseLinkOverride(s)
		if err != nil {
			return err
		}
		cfg.SetLink(name, lc)
	}
	for name, mass := range c.Servos {
		switch name {
		case "base":
			cfg.BaseServo.MassG = mass
		case "joint":
			cfg.JointServo.MassG = mass
		default:
			return fmt.Errorf("unknown servo %q (want base or joint)", name)
		}
	}

	links := cfg.TorqueLinks()
	servos := cfg.ServoMasses()
	if c.Strict {
		if err := torque.Validate(links, servos); err != nil {
			return fmt.Errorf("validate arm: %w", err)
		}
	}

	r := torque.Calc(links, servos)

	if !c.Quiet {
		fmt.Fprintln(stdout, headerStyle.Render("Shoulder torque"))
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, renderBreakdown(links, servos, r))
		fmt.Fprintln(stdout)
	}
	torque.PrintTotal(stdout, r)

	// Check usable torque at full extension
	if cfg.BaseServo.RatingKgCm > 0 {
		if !c.Quiet {
			fmt.Fprintln(stdout)
		}
		torque.PrintCapacity(stdout, cfg.Capacity(r.TotalLengthMM))
	}

	// The elbow servo only carries l4 and the end effector
	if cfg.JointServo.RatingKgCm > 0 {
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, subHeaderStyle.Render("Elbow servo"))
		torque.PrintCapacity(stdout, cfg.JointCapacity(cfg.JointReachMM()))
	}

	return nil
}

// parseLinkOverride parses NAME=LENGTH:MASS.
func parseLinkOverride(s string) (robot.LinkName, robot.LinkConfig, error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok {
		return "", robot.LinkConfig{}, fmt.Errorf("link %q: expected NAME=LENGTH:MASS", s)
	}

	link := robot.LinkName(name)
	known := false
	for _, n := range robot.AllLinks() {
		if n == link {
			known = true
			break
		}
	}
	if !known {
		return "", robot.LinkConfig{}, fmt.Errorf("link %q: unknown link name %q", s, name)
	}

	lengthStr, massStr, ok := strings.Cut(value, ":")
	if !ok {
		return "", robot.LinkConfig{}, fmt.Errorf("link %q: expected LENGTH:MASS", s)
	}
	length, err := strconv.ParseFloat(lengthStr, 64)
	if err != nil {
		return "", robot.LinkConfig{}, fmt.Errorf("link %q: parse length: %w", s, err)
	}
	mass, err := strconv.ParseFloat(massStr, 64)
	if err != nil {
		return "", robot.LinkConfig{}, fmt.Errorf("link %q: parse mass: %w", s, err)
	}

	return link, robot.LinkConfig{LengthMM: length, MassG: mass}, nil
}

func renderBreakdown(links [torque.NumLinks]torque.Link, servos torque.ServoMasses, r torque.Result) string {
	tableHeaderStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
	tableNameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Padding(0, 1)
	tableCellStyle := lipgloss.NewStyle().Padding(0, 1)
	tableTorqueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Padding(0, 1)

	rows := make([][]string, 0, torque.NumLinks+torque.NumServos)
	for i, name := range robot.AllLinks() {
		rows = append(rows, []string{
			fmt.Sprintf("%s (%s)", name, name.Label()),
			fmt.Sprintf("%.3f", r.LinkCoGM[i]/torque.MMToM),
			fmt.Sprintf("%.1f", links[i].MassG),
			fmt.Sprintf("%.4f", r.LinkTorques[i]),
		})
	}
	for i, mount := range robot.AllMounts() {
		mass := servos.Joint
		if i == 0 {
			mass = servos.Base
		}
		rows = append(rows, []string{
			"servo " + string(mount),
			fmt.Sprintf("%.3f", r.ServoDistancesM[i]/torque.MMToM),
			fmt.Sprintf("%.1f", mass),
			fmt.Sprintf("%.4f", r.ServoTorques[i]),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Headers("Part", "Distance (mm)", "Mass (g)", "Torque (Nm)").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			switch col {
			case 0:
				return tableNameStyle
			case 3:
				return tableTorqueStyle
			default:
				return tableCellStyle
			}
		})

	summary := fmt.Sprintf("links %.4f Nm + servos %.4f Nm, full extension %.3f mm",
		r.LinkTorqueNm(), r.ServoTorqueNm(), r.TotalLengthMM)

	return t.Render() + "\n" + dimStyle.Render(summary)
}
