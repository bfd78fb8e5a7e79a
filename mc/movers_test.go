/*
 * movers_test.go, part of bioshell.
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

package mc

import (
	"math"
	"math/rand"
	"testing"

	"github.com/dgront/bioshell/cartesian"
	"github.com/dgront/bioshell/vec3"
)

//zeroEnergy scores every conformation as zero so that mover mechanics can be
//tested in isolation: the Metropolis criterion accepts every such move.
type zeroEnergy struct{}

func (zeroEnergy) Energy(*cartesian.System) float64           { return 0.0 }
func (zeroEnergy) EnergyByPos(*cartesian.System, int) float64 { return 0.0 }
func (zeroEnergy) Name() string                               { return "ZeroEnergy" }

//flatEnergy scores every conformation with the same constant.
type flatEnergy struct{ value float64 }

func (f flatEnergy) Energy(*cartesian.System) float64           { return f.value }
func (f flatEnergy) EnergyByPos(*cartesian.System, int) float64 { return f.value }
func (f flatEnergy) Name() string                               { return "FlatEnergy" }

//randomCoil builds a single chain of n beads connected by bonds of the given
//length, coiled randomly around the center of a very large box.
func randomCoil(n int, bondLength float64, rng *rand.Rand) *cartesian.System {
	coords := cartesian.NewCoordinates(n)
	coords.SetBoxLen(1000.0)
	coords.SetSize(n)
	c := coords.BoxLen() / 2.0
	coords.Set(0, c, c, c)
	for i := 1; i < n; i++ {
		v := vec3.RandomPointNearby(rng, coords.Atom(i-1), bondLength)
		coords.CopyFromVec(i, v)
	}
	nbl := cartesian.NewNbList(6.0, 4.0, cartesian.PolymerRules{})
	return cartesian.NewSystem(coords, nbl)
}

func maxCoordDiff(a, b *cartesian.Coordinates, i int) float64 {
	d := math.Abs(a.X(i) - b.X(i))
	if dy := math.Abs(a.Y(i) - b.Y(i)); dy > d {
		d = dy
	}
	if dz := math.Abs(a.Z(i) - b.Z(i)); dz > d {
		d = dz
	}
	return d
}

func assertBondLengths(Te *testing.T, coords *cartesian.Coordinates, bondLength, tolerance float64) {
	Te.Helper()
	for i := 0; i < coords.Size()-1; i++ {
		d := math.Sqrt(coords.ClosestDistanceSquare(i, i+1))
		if math.Abs(d-bondLength) > tolerance {
			Te.Fatalf("bond %d-%d has length %f, expected %f", i, i+1, d, bondLength)
		}
	}
}

func TestSingleAtomMoveDisplacement(Te *testing.T) {
	rng := rand.New(rand.NewSource(42))
	system := randomCoil(20, 3.8, rng)
	crit := NewMetropolisCriterion(1.0, rng)
	mover := NewSingleAtomMove(0.5)
	var en zeroEnergy

	for k := 0; k < 200; k++ {
		before := system.Coordinates().Clone()
		span, moved := mover.Perturb(system, en, crit, rng)
		if !moved {
			Te.Fatal("a zero-energy move was rejected")
		}
		if span.Len() != 1 {
			Te.Fatalf("got a span of %d atoms, expected 1", span.Len())
		}
		for i := 0; i < system.Size(); i++ {
			d := maxCoordDiff(system.Coordinates(), before, i)
			if i == span.Start {
				if d > 0.5 {
					Te.Fatalf("atom %d moved by %f, more than the allowed 0.5", i, d)
				}
			} else if d != 0.0 {
				Te.Fatalf("atom %d moved although it was not selected", i)
			}
		}
	}
	stats := mover.Statistics()
	if stats.NSucc != 200 || stats.NFailed != 0 {
		Te.Errorf("got %d successes and %d failures, expected 200 and 0", stats.NSucc, stats.NFailed)
	}
}

func TestCrankshaftMoveGeometry(Te *testing.T) {
	rng := rand.New(rand.NewSource(42))
	system := randomCoil(12, 3.8, rng)
	crit := NewMetropolisCriterion(1.0, rng)
	mover := NewCrankshaftMove(0.5)
	var en zeroEnergy

	for k := 0; k < 50; k++ {
		before := system.Coordinates().Clone()
		span, moved := mover.Perturb(system, en, crit, rng)
		if !moved {
			Te.Fatal("a zero-energy move was rejected")
		}
		if span.Len() != 5 {
			Te.Fatalf("got a span of %d atoms, expected 5", span.Len())
		}
		if span.Start < 1 || span.End > system.Size()-1 {
			Te.Fatalf("span %d..%d leaves no atoms for the rotation axis", span.Start, span.End)
		}
		//both axis atoms and everything beyond them must stay put
		for i := 0; i < system.Size(); i++ {
			if i >= span.Start && i < span.End {
				continue
			}
			if maxCoordDiff(system.Coordinates(), before, i) != 0.0 {
				Te.Fatalf("atom %d outside the rotated fragment has moved", i)
			}
		}
		assertBondLengths(Te, system.Coordinates(), 3.8, 1e-9)
	}
}

func TestTerminalMoveGeometry(Te *testing.T) {
	rng := rand.New(rand.NewSource(42))
	system := randomCoil(12, 3.8, rng)
	crit := NewMetropolisCriterion(1.0, rng)
	mover := NewTerminalMove(0.5)
	var en zeroEnergy

	nHead := 0
	for k := 0; k < 50; k++ {
		before := system.Coordinates().Clone()
		span, moved := mover.Perturb(system, en, crit, rng)
		if !moved {
			Te.Fatal("a zero-energy move was rejected")
		}
		if span.Len() != 5 {
			Te.Fatalf("got a span of %d atoms, expected 5", span.Len())
		}
		if span.Start != 0 && span.End != system.Size() {
			Te.Fatalf("span %d..%d does not touch either terminus", span.Start, span.End)
		}
		if span.Start == 0 {
			nHead++
		}
		for i := 0; i < system.Size(); i++ {
			if i >= span.Start && i < span.End {
				continue
			}
			if maxCoordDiff(system.Coordinates(), before, i) != 0.0 {
				Te.Fatalf("atom %d outside the rotated terminus has moved", i)
			}
		}
		assertBondLengths(Te, system.Coordinates(), 3.8, 1e-9)
	}
	if nHead == 0 || nHead == 50 {
		Te.Errorf("got %d N-terminal moves out of 50, both ends should be sampled", nHead)
	}
}

func TestChangeVolumeMove(Te *testing.T) {
	rng := rand.New(rand.NewSource(42))
	coords := cartesian.NewCoordinates(27)
	coords.SetBoxLen(10.0)
	cartesian.CubicGridAtoms(coords)
	nbl := cartesian.NewNbList(3.0, 2.0, cartesian.ArgonRules{})
	system := cartesian.NewSystem(coords, nbl)
	crit := NewMetropolisCriterion(1.0, rng)
	mover := NewChangeVolume(0.0, 1.0)
	var en zeroEnergy

	for k := 0; k < 500; k++ {
		before := system.Coordinates().Clone()
		span, moved := mover.Perturb(system, en, crit, rng)
		if moved {
			if span.Len() != system.Size() {
				Te.Fatalf("got a span of %d atoms, expected the whole system", span.Len())
			}
			continue
		}
		//a rejected move must restore both the box and the atoms
		if math.Abs(system.BoxLen()-before.BoxLen()) > 1e-9 {
			Te.Fatalf("box length %f differs from %f after a rejected move", system.BoxLen(), before.BoxLen())
		}
		for i := 0; i < system.Size(); i++ {
			if maxCoordDiff(system.Coordinates(), before, i) > 1e-9 {
				Te.Fatalf("atom %d not restored after a rejected move", i)
			}
		}
	}
	stats := mover.Statistics()
	if stats.NSucc+stats.NFailed != 500 {
		Te.Errorf("got %d attempts recorded, expected 500", stats.NSucc+stats.NFailed)
	}
	//at zero pressure and zero energy every expansion is accepted, so the
	//acceptance rate must stay well above one half
	if stats.SuccessRate() < 0.5 {
		Te.Errorf("got acceptance rate %f, expected above 0.5", stats.SuccessRate())
	}
}

func TestMoversRejectTinySystems(Te *testing.T) {
	rng := rand.New(rand.NewSource(42))
	system := randomCoil(4, 3.8, rng)
	crit := NewMetropolisCriterion(1.0, rng)
	var en zeroEnergy

	for _, mover := range []Mover{NewCrankshaftMove(0.5), NewTerminalMove(0.5)} {
		if _, moved := mover.Perturb(system, en, crit, rng); moved {
			Te.Errorf("%T accepted a move on a 4-atom chain, too short for its fragment", mover)
		}
		if stats := mover.Statistics(); stats.NFailed != 1 {
			Te.Errorf("%T did not count the rejected attempt", mover)
		}
	}
}
