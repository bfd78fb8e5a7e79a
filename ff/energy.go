/*
 * energy.go, part of bioshell.
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

//Package ff provides energy functions for Cartesian systems: a pairwise
//non-bonded evaluator driven by the system's neighbor list, bonded terms
//for polymer chains and a weighted composite of any of them.
package ff

import "github.com/dgront/bioshell/cartesian"

//Energy scores a conformation of a system.
//
//EnergyByPos(system, i) returns the sum of all interaction terms whose value
//depends on the position of atom i. The calling convention for a Monte Carlo
//move is: evaluate EnergyByPos before the move, displace atom i, evaluate it
//again; for pairwise terms that involve only atom i the difference equals the
//change of the total energy.
type Energy interface {
	Energy(system *cartesian.System) float64
	EnergyByPos(system *cartesian.System, pos int) float64
	Name() string
}

type weightedTerm struct {
	term   Energy
	weight float64
}

//TotalEnergy combines energy terms into a weighted sum.
type TotalEnergy struct {
	components []weightedTerm
}

//NewTotalEnergy creates an energy function with no components; an empty sum
//evaluates to zero.
func NewTotalEnergy() *TotalEnergy {
	return &TotalEnergy{}
}

//AddComponent appends an energy term with its weight.
func (t *TotalEnergy) AddComponent(term Energy, weight float64) {
	t.components = append(t.components, weightedTerm{term: term, weight: weight})
}

//CountComponents returns the number of terms added so far.
func (t *TotalEnergy) CountComponents() int { return len(t.components) }

//Energy returns the weighted sum of all component energies.
func (t *TotalEnergy) Energy(system *cartesian.System) float64 {
	en := 0.0
	for _, c := range t.components {
		en += c.weight * c.term.Energy(system)
	}
	return en
}

//EnergyByPos returns the weighted sum of the component energies of atom pos.
func (t *TotalEnergy) EnergyByPos(system *cartesian.System, pos int) float64 {
	en := 0.0
	for _, c := range t.components {
		en += c.weight * c.term.EnergyByPos(system, pos)
	}
	return en
}

//Name returns the name of this energy function.
func (t *TotalEnergy) Name() string { return "TotalEnergy" }
