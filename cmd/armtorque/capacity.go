package main

import (
	"fmt"
	"math"

	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	"github.com/NimbleMarkets/ntcharts/linechart/streamlinechart"
	"github.com/charmbracelet/lipgloss"

	"github.com/gwillem/armtorque/pkg/torque"
)

const (
	chartWidth  = 60
	chartHeight = 15
	chartSet    = "max_mass"
)

var chartStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))

type CapacityCommand struct {
	Rating   *float64 `short:"r" long:"rating" description:"Servo torque rating in kg·cm (default: base servo rating from config)"`
	Distance *float64 `short:"d" long:"distance" description:"Lever arm in mm (default: full extension of the arm)"`
	Percent  *float64 `short:"p" long:"percent" description:"Percent of rated torque to use (default: 100 with --rating, else usable percent from config)"`
	Chart    bool     `long:"chart" description:"Plot max liftable mass against distance"`
}

func (c *CapacityCommand) Execute(args []string) error {
	cfg, err := loadArm()
	if err != nil {
		return err
	}

	// An explicit rating describes a standalone servo, not the configured one
	rating := cfg.BaseServo.RatingKgCm
	percent := cfg.Percent()
	if c.Rating != nil {
		rating = *c.Rating
		percent = torque.DefaultPercent
	}
	if rating == 0 && c.Rating == nil {
		return fmt.Errorf("no servo rating: pass --rating or set base_servo.rating_kgcm in %s", opts.Config)
	}
	if c.Percent != nil {
		percent = *c.Percent
	}
	var distance float64
	if c.Distance != nil {
		distance = *c.Distance
	} else {
		distance = torque.Calc(cfg.TorqueLinks(), cfg.ServoMasses()).TotalLengthMM
	}

	torque.PrintCapacity(stdout, torque.ServoCapacity(rating, distance, percent))

	if c.Chart {
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, subHeaderStyle.Render("Max load (kg) over distance"))
		fmt.Fprintln(stdout, chartStyle.Render(renderCapacityChart(rating, distance, percent, chartWidth, chartHeight)))
		fmt.Fprintln(stdout, dimStyle.Render(fmt.Sprintf("%.1f mm → %.1f mm", distance/4, distance)))
	}

	return nil
}

// capacityCurve samples the max liftable mass from a quarter of distanceMM out
// to distanceMM. Closer in, the curve grows without bound.
func capacityCurve(ratingKgCm, distanceMM, percent float64, samples int) []float64 {
	if samples < 2 {
		samples = 2
	}
	start := distanceMM / 4
	step := (distanceMM - start) / float64(samples-1)

	curve := make([]float64, samples)
	for i := range curve {
		d := start + float64(i)*step
		curve[i] = torque.ServoCapacity(ratingKgCm, d, percent).MaxMassKg
	}
	return curve
}

func renderCapacityChart(ratingKgCm, distanceMM, percent float64, width, height int) string {
	curve := capacityCurve(ratingKgCm, distanceMM, percent, width)
	if !(curve[0] > 0) || math.IsInf(curve[0], 0) {
		return dimStyle.Render("nothing to plot")
	}

	chart := streamlinechart.New(width, height,
		streamlinechart.WithYRange(0, curve[0]),
	)
	chart.SetDataSetStyles(chartSet, runes.ThinLineStyle, successStyle)
	for _, v := range curve {
		chart.PushDataSet(chartSet, v)
	}
	chart.DrawAll()

	return chart.View()
}
