package robot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/gwillem/armtorque/pkg/torque"
)

const DefaultConfigFile = "armtorque.json"

// Config holds the arm description
type Config struct {
	Links         map[LinkName]LinkConfig `json:"links"`
	BaseServo     ServoConfig             `json:"base_servo"`
	JointServo    ServoConfig             `json:"joint_servo"`
	UsablePercent float64                 `json:"usable_percent,omitempty"`
}

// DefaultConfig returns the reference SO-101 build
func DefaultConfig() *Config {
	return &Config{
		Links: map[LinkName]LinkConfig{
			UpperArm:    {LengthMM: 100, MassG: 50},
			Forearm:     {LengthMM: 84.991, MassG: 50},
			Wrist:       {LengthMM: 41.647, MassG: 50},
			EndEffector: {LengthMM: 119.535, MassG: 50},
		},
		BaseServo: ServoConfig{
			MassG:      torque.DefaultBaseServoMassG,
			RatingKgCm: 11,
		},
		JointServo: ServoConfig{
			MassG: torque.DefaultJointServoMassG,
		},
		UsablePercent: 70,
	}
}

// TorqueLinks returns the links in shoulder-to-tip order. Missing links are zero.
func (c *Config) TorqueLinks() [torque.NumLinks]torque.Link {
	var links [torque.NumLinks]torque.Link
	for i, name := range AllLinks() {
		lc := c.Links[name]
		links[i] = torque.Link{LengthMM: lc.LengthMM, MassG: lc.MassG}
	}
	return links
}

// ServoMasses returns the servo masses used by torque.Calc
func (c *Config) ServoMasses() torque.ServoMasses {
	return torque.ServoMasses{
		Base:  c.BaseServo.MassG,
		Joint: c.JointServo.MassG,
	}
}

// SetLink replaces the configuration of a single link
func (c *Config) SetLink(name LinkName, lc LinkConfig) {
	if c.Links == nil {
		c.Links = make(map[LinkName]LinkConfig, len(AllLinks()))
	}
	c.Links[name] = lc
}

// LoadConfigFrom loads configuration from a specific file
func LoadConfigFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config JSON: %w", err)
	}
	return &cfg, nil
}

// LoadConfigOrDefault loads configuration from path, or returns DefaultConfig
// when the file does not exist
func LoadConfigOrDefault(path string) (*Config, error) {
	cfg, err := LoadConfigFrom(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// SaveTo saves configuration to a specific file
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ConfigExists returns true if a config file exists at path
func ConfigExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
