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

//Monte Carlo sampling of a coarse-grained polymer chain: beads connected by
//harmonic springs with a square-well contact potential between non-bonded
//pairs. The starting conformation is a self-avoiding random walk; sampling
//mixes single-bead displacements with crankshaft and terminal rotations.
//
//With -chains N the program runs the pruned-enriched Rosenbluth (PERM)
//growth sampler instead: it grows N chains and reports the average squared
//end-to-end distance estimated from their weights.
//
//Example:
//
//	polymer -n 50 -t 1.0 -inner 100 -outer 500
//	polymer -n 50 -t 1.0 -chains 10000
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

const bondLength = 3.8

func main() {
	cfgFile := flag.String("config", "", "INI file with simulation settings")
	nBeads := flag.Int("n", 0, "number of beads in the chain")
	temperature := flag.Float64("t", 0.0, "temperature in energy units")
	inner := flag.Int("inner", 0, "sweeps per round")
	outer := flag.Int("outer", 0, "rounds of the simulation")
	seed := flag.Int64("seed", 0, "random number generator seed")
	prefix := flag.String("prefix", "", "prefix prepended to every output file name")
	nChains := flag.Int("chains", 0, "run PERM growth of that many chains instead of Metropolis sampling")
	cLow := flag.Float64("clow", 0.1, "PERM pruning threshold scale")
	cHi := flag.Float64("chi", 10.0, "PERM enrichment threshold scale")
	nTrials := flag.Int("trials", 6, "candidate positions per PERM growth step")
	flag.Parse()

	cfg := config.Default()
	cfg.Simulation.NAtoms = 50
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
			cfg.Simulation.NAtoms = *nBeads
		case "t":
			cfg.Simulation.Temperature = *temperature
		case "inner":
			cfg.Simulation.InnerCycles = *inner
		case "outer":
			cfg.Simulation.OuterCycles = *outer
		case "seed":
			cfg.Simulation.Seed = *seed
		case "prefix":
			cfg.Output.Prefix = *prefix
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Printf("invalid settings: %v", err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(cfg.Simulation.Seed))
	n := cfg.Simulation.NAtoms

	// a box that cannot fold the fully extended chain onto itself
	coords := cartesian.NewCoordinates(n)
	coords.SetBoxLen(2.0 * bondLength * float64(n))
	system := cartesian.NewSystem(coords, cartesian.NewNbList(7.0, 4.0, cartesian.PolymerRules{}))

	energy := ff.NewTotalEnergy()
	energy.AddComponent(ff.NewSimpleHarmonic(bondLength, 1.0), 1.0)
	energy.AddComponent(ff.NewPairwiseNonbondedEvaluator(7.0,
		ff.NewSimpleContact(3.0, 4.0, 6.0, 1000.0, -1.0)), 1.0)

	if *nChains > 0 {
		runPerm(system, energy, rng, cfg.Simulation.Temperature, *nChains, *cLow, *cHi, *nTrials)
		return
	}

	builder := mc.NewRandomChain(rng)
	if w := builder.Build(system, energy); w == 0.0 {
		log.Printf("can't grow a self-avoiding chain of %d beads", n)
		os.Exit(1)
	}
	system.SetChains([]cartesian.Span{{Start: 0, End: n}})

	isothermal := mc.NewIsothermalMC(cfg.Simulation.Temperature, rng)
	var sampler mc.Sampler = isothermal
	if cfg.Adaptive.Enabled {
		adaptive := mc.NewAdaptiveMC(isothermal)
		adaptive.TargetRate = cfg.Adaptive.TargetRate
		adaptive.Factor = cfg.Adaptive.Factor
		sampler = adaptive
	}
	sampler.AddMover(mc.NewSingleAtomMove(cfg.Movers.AtomRange))
	sampler.AddMover(mc.NewCrankshaftMove(cfg.Movers.AngleRange))
	sampler.AddMover(mc.NewTerminalMove(cfg.Movers.TerminalRange))

	observers := mc.NewObserversSet()
	for _, open := range []func() (mc.Observer, error){
		func() (mc.Observer, error) { return mc.NewPdbTrajectory(cfg.Output.Prefix+cfg.Output.Trajectory, false) },
		func() (mc.Observer, error) { return mc.NewGyrationSquared(cfg.Output.Prefix+"rg2.dat", false) },
		func() (mc.Observer, error) { return mc.NewREndSquared(cfg.Output.Prefix+"rend2.dat", false) },
	} {
		obs, err := open()
		if err != nil {
			log.Printf("can't open an output file: %v", err)
			os.Exit(2)
		}
		observers.Add(obs, 1)
	}
	observers.Add(mcplot.NewEnergyTrace(cfg.Output.Prefix+"energy.png", energy), 1)

	fmt.Printf("# polymer of %d beads, T=%.3f\n", n, cfg.Simulation.Temperature)
	mc.RunSimulation(sampler, cfg.Simulation.InnerCycles, cfg.Simulation.OuterCycles,
		system, energy, observers)
	if err := observers.Close(); err != nil {
		log.Printf("can't finalize the output files: %v", err)
		os.Exit(2)
	}
}

//runPerm grows chains with the pruned-enriched Rosenbluth sampler and
//prints a weighted estimate of the squared end-to-end distance.
func runPerm(system *cartesian.System, energy ff.Energy, rng *rand.Rand,
	temperature float64, nChains int, cLow, cHi float64, nTrials int) {

	perm := mc.NewPERM(system.Capacity(), cLow, cHi, mc.NewPERMChainStep(temperature, nTrials), rng)
	sumW, sumWR2 := 0.0, 0.0
	nGrown := 0
	for perm.CountChains() < nChains {
		w := perm.Build(system, energy)
		if w == 0.0 {
			continue
		}
		nGrown++
		span := cartesian.Span{Start: 0, End: system.Size()}
		sumW += w
		sumWR2 += w * cartesian.REndSquared(system.Coordinates(), span)
	}
	if sumW == 0.0 {
		log.Printf("all %d chains were pruned or ran into dead ends", nChains)
		os.Exit(1)
	}
	fmt.Printf("# %d chains grown to full length out of %d started\n", nGrown, nChains)
	fmt.Printf("<R_end^2> = %.4f\n", sumWR2/sumW)
}
