package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gwillem/armtorque/pkg/robot"
	"github.com/gwillem/armtorque/pkg/torque"
)

// captureOutput redirects command output and points --config at an empty
// temp dir, so commands fall back to the reference arm.
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	prevOut, prevConfig := stdout, opts.Config
	stdout = &buf
	opts.Config = filepath.Join(t.TempDir(), robot.DefaultConfigFile)
	t.Cleanup(func() {
		stdout = prevOut
		opts.Config = prevConfig
	})
	return &buf
}

func ptr(v float64) *float64 {
	return &v
}

func TestTorqueCommand_ReferenceArm(t *testing.T) {
	out := captureOutput(t)

	if err := (&TorqueCommand{Quiet: true}).Execute(nil); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	want := "Total torque from links and servos: 0.513 Nm\n" +
		"Using 70% of a 11 kg·cm servo's torque:\n" +
		"→ Usable torque: 7.70 kg·cm ≈ 0.755 Nm\n" +
		"→ Max load at 34.6 cm: 0.222 kg (2.18 N)\n"
	if got := out.String(); got != want {
		t.Errorf("output:\n%s\nwant:\n%s", got, want)
	}
}

func TestTorqueCommand_Breakdown(t *testing.T) {
	out := captureOutput(t)

	if err := (&TorqueCommand{}).Execute(nil); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	for _, want := range []string{
		"ee (end effector)",
		"servo mid_l3",
		"full extension 346.173 mm",
		"Total torque from links and servos: 0.513 Nm\n",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestTorqueCommand_ServoOverride(t *testing.T) {
	out := captureOutput(t)

	// Without servo mass only the links remain: 0.335510595 Nm
	cmd := &TorqueCommand{
		Servos: map[string]float64{"base": 0, "joint": 0},
		Quiet:  true,
	}
	if err := cmd.Execute(nil); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.HasPrefix(out.String(), "Total torque from links and servos: 0.336 Nm\n") {
		t.Errorf("output:\n%s", out.String())
	}

	cmd = &TorqueCommand{Servos: map[string]float64{"wrist": 10}}
	if err := cmd.Execute(nil); err == nil {
		t.Error("unknown servo should fail")
	}
}

func TestTorqueCommand_Strict(t *testing.T) {
	captureOutput(t)

	links := []string{"l2=-100:50"}

	err := (&TorqueCommand{Links: links, Strict: true, Quiet: true}).Execute(nil)
	if err == nil {
		t.Fatal("strict run with a negative link should fail")
	}
	if !errors.Is(err, torque.ErrInvalidInput) {
		t.Errorf("error %v does not wrap torque.ErrInvalidInput", err)
	}

	// Without --strict the value goes straight through the formula
	if err := (&TorqueCommand{Links: links, Quiet: true}).Execute(nil); err != nil {
		t.Errorf("non-strict run failed: %v", err)
	}
}

func TestTorqueCommand_JointServo(t *testing.T) {
	out := captureOutput(t)

	cfg := robot.DefaultConfig()
	cfg.JointServo.RatingKgCm = 2
	if err := cfg.SaveTo(opts.Config); err != nil {
		t.Fatal(err)
	}

	if err := (&TorqueCommand{Quiet: true}).Execute(nil); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	// l4 + ee = 161.182mm, 70% of 2 kg·cm
	for _, want := range []string{
		"Elbow servo",
		"Using 70% of a 2 kg·cm servo's torque:\n",
		"→ Max load at 16.1 cm: 0.087 kg (0.85 N)\n",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestPointCommand(t *testing.T) {
	tests := []struct {
		name     string
		length   *float64
		expected string
	}{
		{"explicit zero", ptr(0), "Torque from 350.00g (3.43N) at 0mm = 0.000 Nm\n"},
		{"explicit length", ptr(1000), "Torque from 350.00g (3.43N) at 1000mm = 3.430 Nm\n"},
		{"full extension", nil, "Torque from 350.00g (3.43N) at 346.173mm = 1.187 Nm\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := captureOutput(t)
			if err := (&PointCommand{Mass: 350, Length: tt.length}).Execute(nil); err != nil {
				t.Fatalf("Execute: %v", err)
			}
			if got := out.String(); got != tt.expected {
				t.Errorf("output = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCapacityCommand(t *testing.T) {
	tests := []struct {
		name     string
		cmd      CapacityCommand
		expected string
	}{
		{
			"explicit zero percent",
			CapacityCommand{Rating: ptr(11), Distance: ptr(100), Percent: ptr(0)},
			"Using 0% of a 11 kg·cm servo's torque:\n" +
				"→ Usable torque: 0.00 kg·cm ≈ 0.000 Nm\n" +
				"→ Max load at 10.0 cm: 0.000 kg (0.00 N)\n",
		},
		{
			"rating without percent uses full torque",
			CapacityCommand{Rating: ptr(11), Distance: ptr(100)},
			"Using 100% of a 11 kg·cm servo's torque:\n" +
				"→ Usable torque: 11.00 kg·cm ≈ 1.078 Nm\n" +
				"→ Max load at 10.0 cm: 1.100 kg (10.78 N)\n",
		},
		{
			"configured servo",
			CapacityCommand{},
			"Using 70% of a 11 kg·cm servo's torque:\n" +
				"→ Usable torque: 7.70 kg·cm ≈ 0.755 Nm\n" +
				"→ Max load at 34.6 cm: 0.222 kg (2.18 N)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := captureOutput(t)
			if err := tt.cmd.Execute(nil); err != nil {
				t.Fatalf("Execute: %v", err)
			}
			if got := out.String(); got != tt.expected {
				t.Errorf("output:\n%s\nwant:\n%s", got, tt.expected)
			}
		})
	}
}

func TestCapacityCommand_ChartAtZeroDistance(t *testing.T) {
	out := captureOutput(t)

	cmd := &CapacityCommand{Rating: ptr(11), Distance: ptr(0), Chart: true}
	if err := cmd.Execute(nil); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out.String(), "nothing to plot") {
		t.Errorf("output:\n%s", out.String())
	}
}

func TestValidateNumber(t *testing.T) {
	for _, s := range []string{"0", "12.5", "1e3"} {
		if err := validateNumber(s); err != nil {
			t.Errorf("validateNumber(%q) = %v, want nil", s, err)
		}
	}
	for _, s := range []string{"abc", "-1", "NaN", "Inf", "-Inf", "+Inf"} {
		if err := validateNumber(s); err == nil {
			t.Errorf("validateNumber(%q) should fail", s)
		}
	}
}
