package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gwillem/armtorque/pkg/torque"
)

const (
	percentStep  = 5
	distanceStep = 10 // mm
)

type TuneCommand struct {
	Rating *float64 `short:"r" long:"rating" description:"Servo torque rating in kg·cm (default: base servo rating from config)"`
}

func (c *TuneCommand) Execute(args []string) error {
	cfg, err := loadArm()
	if err != nil {
		return err
	}

	rating := cfg.BaseServo.RatingKgCm
	if c.Rating != nil {
		rating = *c.Rating
	}
	if rating <= 0 {
		return fmt.Errorf("no servo rating: pass --rating or set base_servo.rating_kgcm in %s", opts.Config)
	}

	r := torque.Calc(cfg.TorqueLinks(), cfg.ServoMasses())
	m := newTuneModel(rating, r.TotalLengthMM, cfg.Percent(), r.TotalNm)

	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("run tune: %w", err)
	}
	return nil
}

// tuneModel lets the user move the load and the safety margin around.
type tuneModel struct {
	rating   float64 // kg·cm
	distance float64 // mm
	percent  float64
	armNm    float64 // torque needed by the arm itself
	quitting bool
}

func newTuneModel(rating, distance, percent, armNm float64) tuneModel {
	return tuneModel{
		rating:   rating,
		distance: distance,
		percent:  percent,
		armNm:    armNm,
	}
}

func (m tuneModel) capacity() torque.Capacity {
	return torque.ServoCapacity(m.rating, m.distance, m.percent)
}

func (m tuneModel) Init() tea.Cmd {
	return nil
}

func (m tuneModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "enter":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			m.percent = min(m.percent+percentStep, 100)
		case "down", "j":
			m.percent = max(m.percent-percentStep, percentStep)
		case "right", "l":
			m.distance += distanceStep
		case "left", "h":
			m.distance = max(m.distance-distanceStep, distanceStep)
		}
	}
	return m, nil
}

func (m tuneModel) View() string {
	if m.quitting {
		return ""
	}

	c := m.capacity()

	var sb strings.Builder
	sb.WriteString(headerStyle.Render("Servo capacity"))
	sb.WriteString(fmt.Sprintf(" - %v kg·cm\n\n", m.rating))

	sb.WriteString(fmt.Sprintf("  Usable:   %3.0f%%  %.2f kg·cm ≈ %.3f Nm\n", m.percent, c.UsableKgCm, c.UsableNm))
	sb.WriteString(fmt.Sprintf("  Distance: %.1f cm\n", c.DistanceCM))
	sb.WriteString(fmt.Sprintf("  Max load: %s\n", successStyle.Render(fmt.Sprintf("%.3f kg (%.2f N)", c.MaxMassKg, c.MaxForceN))))

	// The servo has to hold the arm before it can hold anything else
	margin := c.UsableNm - m.armNm
	line := fmt.Sprintf("  Arm needs %.3f Nm, margin %.3f Nm", m.armNm, margin)
	if margin < 0 {
		sb.WriteString(warnStyle.Render(line))
	} else {
		sb.WriteString(dimStyle.Render(line))
	}
	sb.WriteString("\n\n")

	sb.WriteString(dimStyle.Render("↑/↓ percent  ←/→ distance  q quit"))
	sb.WriteString("\n")

	return sb.String()
}
