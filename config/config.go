/*
 * config.go, part of bioshell.
 *
 * Copyright 2023 Dominik Gront
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package config reads Monte Carlo simulation settings from INI files. A
//settings file carries up to five sections; every variable is optional and
//falls back to the defaults of this package:
//
//	[simulation]
//	Temperature = 0.8
//	InnerCycles = 100
//	OuterCycles = 1000
//	Seed        = 42
//	NAtoms      = 64
//	Density     = 0.8
//
//	[adaptive]
//	Enabled    = true
//	TargetRate = 0.4
//	Factor     = 0.95
//
//	[npt]
//	Pressure    = 0.0
//	VolumeRange = 0.05
//
//	[movers]
//	AtomRange     = 0.15
//	AngleRange    = 0.6
//	TerminalRange = 1.0
//
//	[output]
//	Prefix     = run1_
//	Trajectory = tra.pdb
//
//A non-zero Pressure turns the run into an NPT simulation. Temperature is
//in energy units (the Boltzmann constant is absorbed); Pressure follows the
//pV-to-Kelvins convention of the mc package.
package config

import (
	"fmt"

	"gopkg.in/gcfg.v1"
)

//SimulationConfig gathers the settings of the sampling run itself.
type SimulationConfig struct {
	Temperature float64
	InnerCycles int
	OuterCycles int
	Seed        int64
	NAtoms      int
	Density     float64
}

//AdaptiveConfig tunes the step-size controller.
type AdaptiveConfig struct {
	Enabled    bool
	TargetRate float64
	Factor     float64
}

//NptConfig holds the constant-pressure extras; a zero pressure means a
//plain NVT run.
type NptConfig struct {
	Pressure    float64
	VolumeRange float64
}

//MoversConfig carries the initial amplitude of every mover kind.
type MoversConfig struct {
	AtomRange     float64
	AngleRange    float64
	TerminalRange float64
}

//OutputConfig names the simulation outputs. Trajectory and observer files
//get Prefix prepended, so several runs can share a directory.
type OutputConfig struct {
	Prefix     string
	Trajectory string
}

//Config is the full content of a settings file.
type Config struct {
	Simulation SimulationConfig
	Adaptive   AdaptiveConfig
	Npt        NptConfig
	Movers     MoversConfig
	Output     OutputConfig
}

//Default returns the settings used when a variable (or the whole file) is
//absent: a small NVT Lennard-Jones-like run with adaptive movers.
func Default() Config {
	return Config{
		Simulation: SimulationConfig{
			Temperature: 1.0,
			InnerCycles: 100,
			OuterCycles: 100,
			Seed:        42,
			NAtoms:      64,
			Density:     0.4,
		},
		Adaptive: AdaptiveConfig{Enabled: true, TargetRate: 0.4, Factor: 0.95},
		Npt:      NptConfig{Pressure: 0.0, VolumeRange: 0.05},
		Movers:   MoversConfig{AtomRange: 0.5, AngleRange: 0.6, TerminalRange: 1.0},
		Output:   OutputConfig{Prefix: "", Trajectory: "tra.pdb"},
	}
}

//Validate reports the first invalid setting found, or nil when the whole
//configuration is usable.
func (c *Config) Validate() error {
	if c.Simulation.Temperature <= 0 {
		return fmt.Errorf("Temperature must be positive, but is %g", c.Simulation.Temperature)
	}
	if c.Simulation.InnerCycles <= 0 {
		return fmt.Errorf("InnerCycles must be positive, but is %d", c.Simulation.InnerCycles)
	}
	if c.Simulation.OuterCycles <= 0 {
		return fmt.Errorf("OuterCycles must be positive, but is %d", c.Simulation.OuterCycles)
	}
	if c.Simulation.NAtoms <= 0 {
		return fmt.Errorf("NAtoms must be positive, but is %d", c.Simulation.NAtoms)
	}
	if c.Simulation.Density <= 0 || c.Simulation.Density >= 1.0 {
		return fmt.Errorf("Density must be in range (0, 1), but is %g", c.Simulation.Density)
	}
	if c.Adaptive.TargetRate <= 0 || c.Adaptive.TargetRate >= 1.0 {
		return fmt.Errorf("TargetRate must be in range (0, 1), but is %g", c.Adaptive.TargetRate)
	}
	if c.Adaptive.Factor <= 0 || c.Adaptive.Factor >= 1.0 {
		return fmt.Errorf("Factor must be in range (0, 1), but is %g", c.Adaptive.Factor)
	}
	if c.Npt.Pressure < 0 {
		return fmt.Errorf("Pressure can't be negative, but is %g", c.Npt.Pressure)
	}
	if c.Npt.Pressure > 0 && c.Npt.VolumeRange <= 0 {
		return fmt.Errorf("VolumeRange must be positive for an NPT run, but is %g", c.Npt.VolumeRange)
	}
	if c.Movers.AtomRange <= 0 {
		return fmt.Errorf("AtomRange must be positive, but is %g", c.Movers.AtomRange)
	}
	if c.Movers.AngleRange <= 0 {
		return fmt.Errorf("AngleRange must be positive, but is %g", c.Movers.AngleRange)
	}
	if c.Movers.TerminalRange <= 0 {
		return fmt.Errorf("TerminalRange must be positive, but is %g", c.Movers.TerminalRange)
	}
	if c.Output.Trajectory == "" {
		return fmt.Errorf("Trajectory file name can't be empty")
	}
	return nil
}

//ReadFile loads settings from a named INI file on top of the defaults and
//validates the result.
func ReadFile(fname string) (Config, error) {
	cfg := Default()
	if err := gcfg.ReadFileInto(&cfg, fname); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

//ReadString loads settings from INI text on top of the defaults and
//validates the result.
func ReadString(content string) (Config, error) {
	cfg := Default()
	if err := gcfg.ReadStringInto(&cfg, content); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}
