/*
 * nonbonded.go, part of bioshell.
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

package ff

import "github.com/dgront/bioshell/cartesian"

//PairwiseNonbonded scores a single pair of atoms from the squared distance
//between them. Kernels are plugged into a PairwiseNonbondedEvaluator, which
//walks the neighbor list and sums kernel values over interacting pairs.
type PairwiseNonbonded interface {
	EnergyForDistanceSquared(d2 float64) float64
	Name() string
}

//PairwiseNonbondedEvaluator sums a two-body kernel over all atom pairs found
//on a system's neighbor list. The list may hold pairs separated by more than
//the interaction cutoff (its buffer makes it so), therefore the evaluator
//checks every squared distance against the cutoff before calling the kernel.
type PairwiseNonbondedEvaluator struct {
	cutoff       float64
	cutoffSquare float64
	kernel       PairwiseNonbonded
}

//NewPairwiseNonbondedEvaluator wraps a two-body kernel to be evaluated within
//a given cutoff distance. The cutoff must not exceed the cutoff of the
//neighbor list the scored system carries, otherwise pairs will be missed.
func NewPairwiseNonbondedEvaluator(cutoff float64, kernel PairwiseNonbonded) *PairwiseNonbondedEvaluator {
	return &PairwiseNonbondedEvaluator{cutoff: cutoff, cutoffSquare: cutoff * cutoff, kernel: kernel}
}

//Cutoff returns the interaction cutoff distance.
func (e *PairwiseNonbondedEvaluator) Cutoff() float64 { return e.cutoff }

//Energy returns the kernel summed over all interacting pairs. Each pair shows
//up on the neighbor list twice so the sum over atoms is halved.
func (e *PairwiseNonbondedEvaluator) Energy(system *cartesian.System) float64 {
	en := 0.0
	for i := 0; i < system.Size(); i++ {
		en += e.EnergyByPos(system, i)
	}
	return en / 2.0
}

//EnergyByPos returns the total interaction energy of atom pos with its
//neighbors.
func (e *PairwiseNonbondedEvaluator) EnergyByPos(system *cartesian.System, pos int) float64 {
	coords := system.Coordinates()
	en := 0.0
	for _, j := range system.NbList().NeighborsOf(pos) {
		d2 := coords.ClosestDistanceSquare(pos, j)
		if d2 < e.cutoffSquare {
			en += e.kernel.EnergyForDistanceSquared(d2)
		}
	}
	return en
}

//Name returns the name of the wrapped kernel.
func (e *PairwiseNonbondedEvaluator) Name() string { return e.kernel.Name() }

//SimpleContact is a square-well contact potential. Pairs closer than the
//repulsion distance score enRep, pairs within the contact shell score
//enContact (typically negative), anything else scores zero.
type SimpleContact struct {
	rRepSquare    float64
	rContactFrom2 float64
	rContactTo2   float64
	enRep         float64
	enContact     float64
}

//NewSimpleContact defines a contact potential: rRep is the repulsion radius,
//the contact shell spans (rContactFrom, rContactTo).
func NewSimpleContact(rRep, rContactFrom, rContactTo, enRep, enContact float64) *SimpleContact {
	return &SimpleContact{
		rRepSquare:    rRep * rRep,
		rContactFrom2: rContactFrom * rContactFrom,
		rContactTo2:   rContactTo * rContactTo,
		enRep:         enRep,
		enContact:     enContact,
	}
}

//EnergyForDistanceSquared returns the contact energy for a squared distance.
func (c *SimpleContact) EnergyForDistanceSquared(d2 float64) float64 {
	if d2 > c.rContactTo2 {
		return 0.0
	}
	if d2 < c.rRepSquare {
		return c.enRep
	}
	if d2 > c.rContactFrom2 {
		return c.enContact
	}
	return 0.0
}

//Name returns the name of this energy kernel.
func (c *SimpleContact) Name() string { return "SimpleContact" }

//LennardJonesHomogenic is the 12-6 Lennard-Jones potential with a single
//(epsilon, sigma) parameter pair for all atoms. The potential is truncated
//at a cutoff and not shifted.
type LennardJonesHomogenic struct {
	epsilon      float64
	sigmaSquare  float64
	cutoffSquare float64
}

//NewLennardJonesHomogenic defines the 12-6 potential: epsilon is the well
//depth, sigma the distance at which the energy crosses zero.
func NewLennardJonesHomogenic(epsilon, sigma, cutoff float64) *LennardJonesHomogenic {
	return &LennardJonesHomogenic{epsilon: epsilon, sigmaSquare: sigma * sigma, cutoffSquare: cutoff * cutoff}
}

//EnergyForDistanceSquared returns the 12-6 energy for a squared distance.
func (lj *LennardJonesHomogenic) EnergyForDistanceSquared(d2 float64) float64 {
	if d2 >= lj.cutoffSquare {
		return 0.0
	}
	r2 := lj.sigmaSquare / d2
	r6 := r2 * r2 * r2
	return 4.0 * lj.epsilon * (r6*r6 - r6)
}

//Name returns the name of this energy kernel.
func (lj *LennardJonesHomogenic) Name() string { return "LennardJonesHomogenic" }
