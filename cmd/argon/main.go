/*
 * main.go, part of bioshell.
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

//Monte Carlo simulation of a Lennard-Jones fluid in a cubic box with
//periodic boundary conditions. By default the run samples the canonical
//(NVT) ensemble; a positive pressure adds volume moves and turns it into an
//isothermal-isobaric (NPT) one. All settings can come from an INI file
//given with -config; flags set explicitly on the command line win over the
//file.
//
//Example:
//
//	argon -n 64 -density 0.8 -t 0.8 -inner 100 -outer 1000
//
//Exit status is 0 on success, 1 on bad input and 2 on an output failure.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/dgront/bioshell/cartesian"
	"github.com/dgront/bioshell/config"
	"github.com/dgront/bioshell/ff"
	"github.com/dgront/bioshell/mc"
	"github.com/dgront/bioshell/mcplot"
)

func main() {
	cfgFile := flag.String("config", "", "INI file with simulation settings")
	nAtoms := flag.Int("n", 0, "number of atoms")
	density := flag.Float64("density", 0.0, "fraction of the box volume occupied by atoms")
	temperature := flag.Float64("t", 0.0, "temperature in energy units")
	inner := flag.Int("inner", 0, "sweeps per round")
	outer := flag.Int("outer", 0, "rounds of the simulation")
	seed := flag.Int64("seed", 0, "random number generator seed")
	pressure := flag.Float64("pressure", 0.0, "pressure; a positive value turns on NPT sampling")
	noAdaptive := flag.Bool("no-adaptive", false, "freeze mover ranges instead of tuning them")
	prefix := flag.String("prefix", "", "prefix prepended to every output file name")
	epsilon := flag.Float64("epsilon", 1.0, "depth of the Lennard-Jones well")
	sigma := flag.Float64("sigma", 1.0, "Lennard-Jones contact distance")
	flag.Parse()

	cfg := config.Default()
	if *cfgFile != "" {
		var err error
		if cfg, err = config.ReadFile(*cfgFile); err != nil {
			log.Printf("can't read settings from %s: %v", *cfgFile, err)
			os.Exit(1)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n":
			cfg.Simulation.NAtoms = *nAtoms
		case "density":
			cfg.Simulation.Density = *density
		case "t":
			cfg.Simulation.Temperature = *temperature
		case "inner":
			cfg.Simulation.InnerCycles = *inner
		case "outer":
			cfg.Simulation.OuterCycles = *outer
		case "seed":
			cfg.Simulation.Seed = *seed
		case "pressure":
			cfg.Npt.Pressure = *pressure
		case "prefix":
			cfg.Output.Prefix = *prefix
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Printf("invalid settings: %v", err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(cfg.Simulation.Seed))
	cutoff := 2.5 * (*sigma)
	buffer := 1.0 * (*sigma)

	coords := cartesian.NewCoordinates(cfg.Simulation.NAtoms)
	coords.SetBoxLen(cartesian.BoxWidth(0.5*(*sigma), cfg.Simulation.NAtoms, cfg.Simulation.Density))
	cartesian.CubicGridAtoms(coords)
	system := cartesian.NewSystem(coords, cartesian.NewNbList(cutoff, buffer, cartesian.ArgonRules{}))

	energy := ff.NewPairwiseNonbondedEvaluator(cutoff,
		ff.NewLennardJonesHomogenic(*epsilon, *sigma, cutoff))

	isothermal := mc.NewIsothermalMC(cfg.Simulation.Temperature, rng)
	var sampler mc.Sampler = isothermal
	if cfg.Adaptive.Enabled && !*noAdaptive {
		adaptive := mc.NewAdaptiveMC(isothermal)
		adaptive.TargetRate = cfg.Adaptive.TargetRate
		adaptive.Factor = cfg.Adaptive.Factor
		sampler = adaptive
	}
	sampler.AddMover(mc.NewSingleAtomMove(cfg.Movers.AtomRange))
	if cfg.Npt.Pressure > 0 {
		volume := mc.NewChangeVolume(cfg.Npt.Pressure, cfg.Simulation.Temperature)
		volume.SetMaxRange(cfg.Npt.VolumeRange)
		sampler.AddMover(volume)
	}

	trajectory, err := mc.NewPdbTrajectory(cfg.Output.Prefix+cfg.Output.Trajectory, false)
	if err != nil {
		log.Printf("can't open the trajectory file: %v", err)
		os.Exit(2)
	}
	observers := mc.NewObserversSet()
	observers.Add(trajectory, 1)
	observers.Add(mcplot.NewEnergyTrace(cfg.Output.Prefix+"energy.png", energy), 1)

	fmt.Printf("# %d atoms in a box of %.3f, T=%.3f\n",
		system.Size(), system.BoxLen(), cfg.Simulation.Temperature)
	mc.RunSimulation(sampler, cfg.Simulation.InnerCycles, cfg.Simulation.OuterCycles,
		system, energy, observers)
	if err := observers.Close(); err != nil {
		log.Printf("can't finalize the output files: %v", err)
		os.Exit(2)
	}
}
