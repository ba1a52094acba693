// Package armtorque estimates the static loads on a hobby robot arm such as the SO-101.
//
// It answers the questions you have while picking servos: how much torque does the
// shoulder need to hold the arm out horizontally, what does a payload add, and how
// much can a given servo lift at a given reach.
//
// # Installation
//
//	go install github.com/gwillem/armtorque/cmd/armtorque@latest
//
// # Usage
//
// Describe your arm once (or skip this to use the reference SO-101 build):
//
//	armtorque setup
//
// Then compute the shoulder torque and the servo capacity at full extension:
//
//	armtorque torque
//
// Other helpers:
//
//	armtorque point --mass 350 --length 1000
//	armtorque capacity --rating 11 --percent 70 --chart
//	armtorque tune
//
// # Packages
//
// The module is organized into the following packages:
//
//   - cmd/armtorque: CLI with torque, point, capacity, setup and tune commands
//   - pkg/torque: Torque and servo capacity formulas
//   - pkg/robot: Arm description and configuration
package armtorque
