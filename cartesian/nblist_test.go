/*
 * nblist_test.go, part of bioshell.
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

package cartesian

import (
	"math/rand"
	"sort"
	"testing"
)

//fluidOnGrid builds the reference system of the neighbor list tests:
//100 atoms on a cubic grid in a box of side 30, hashed with cutoff 6
//and buffer 4.
func fluidOnGrid() (*Coordinates, *NbList) {
	coords := NewCoordinates(100)
	coords.SetBoxLen(30.0)
	CubicGridAtoms(coords)
	nbl := NewNbList(6.0, 4.0, ArgonRules{})
	nbl.UpdateAll(coords)
	return coords, nbl
}

func sortedNeighbors(nbl *NbList, i int) []int {
	out := append([]int(nil), nbl.NeighborsOf(i)...)
	sort.Ints(out)
	return out
}

func sameInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func assertSymmetric(Te *testing.T, nbl *NbList, size int) {
	Te.Helper()
	for i := 0; i < size; i++ {
		for _, j := range nbl.NeighborsOf(i) {
			found := false
			for _, k := range nbl.NeighborsOf(j) {
				if k == i {
					found = true
					break
				}
			}
			if !found {
				Te.Fatalf("neighbor list is asymmetric: %d lists %d but not the other way around", i, j)
			}
		}
	}
}

//assertComplete checks that every pair within the interaction cutoff sits on
//both lists. This must hold whenever no atom has accumulated more travel
//than half of the buffer since its last rebuild.
func assertComplete(Te *testing.T, coords *Coordinates, nbl *NbList, cutoff float64) {
	Te.Helper()
	cutoff2 := cutoff * cutoff
	for i := 0; i < coords.Size(); i++ {
		for j := i + 1; j < coords.Size(); j++ {
			if coords.ClosestDistanceSquare(i, j) >= cutoff2 {
				continue
			}
			onList := false
			for _, k := range nbl.NeighborsOf(i) {
				if k == j {
					onList = true
					break
				}
			}
			if !onList {
				Te.Fatalf("pair (%d %d) within cutoff is missing from the neighbor list", i, j)
			}
		}
	}
}

func TestNblSkipsSmallMove(Te *testing.T) {
	coords, nbl := fluidOnGrid()
	before := sortedNeighbors(nbl, 0)

	coords.Add(0, 0.1, 0.0, 0.0)
	nbl.Update(coords, 0)

	after := sortedNeighbors(nbl, 0)
	if !sameInts(before, after) {
		Te.Errorf("a move below the buffer threshold rebuilt the list: %v vs %v", before, after)
	}
	if tr := nbl.Travelled(0); !almostEqual(tr.X, 0.1, 1e-12) || tr.Y != 0.0 || tr.Z != 0.0 {
		Te.Errorf("travelled displacement is %v, want (0.1 0 0)", tr)
	}

	//many small moves below the threshold still keep the old list...
	for k := 0; k < 18; k++ {
		coords.Add(0, 0.1, 0.0, 0.0)
		nbl.Update(coords, 0)
	}
	if !sameInts(before, sortedNeighbors(nbl, 0)) {
		Te.Errorf("the list was rebuilt although accumulated travel is below the threshold")
	}
	//...and one more crosses it
	coords.Add(0, 0.11, 0.0, 0.0)
	nbl.Update(coords, 0)
	if tr := nbl.Travelled(0); tr.X != 0.0 || tr.Y != 0.0 || tr.Z != 0.0 {
		Te.Errorf("travelled displacement was not reset by a rebuild: %v", tr)
	}
}

func TestNblRebuildTriggered(Te *testing.T) {
	coords, nbl := fluidOnGrid()
	before := sortedNeighbors(nbl, 0)

	//atom 0 sits at (3 3 3), atom 2 at (15 3 3): 12 apart, off the list
	for _, j := range before {
		if j == 2 {
			Te.Fatalf("atom 2 is on the initial list of atom 0: %v", before)
		}
	}

	coords.Add(0, 2.01, 0.0, 0.0)
	nbl.Update(coords, 0)

	after := sortedNeighbors(nbl, 0)
	if sameInts(before, after) {
		Te.Errorf("a move beyond the buffer threshold did not change the list")
	}
	if tr := nbl.Travelled(0); tr.X != 0.0 || tr.Y != 0.0 || tr.Z != 0.0 {
		Te.Errorf("travelled displacement was not reset by the rebuild: %v", tr)
	}
	//atom 2 is now 9.99 away from atom 0, within cutoff + buffer
	found := false
	for _, j := range after {
		if j == 2 {
			found = true
			break
		}
	}
	if !found {
		Te.Errorf("atom 2 should have entered the list of atom 0: %v", after)
	}
	assertSymmetric(Te, nbl, coords.Size())
}

func TestNblSymmetryAfterMoves(Te *testing.T) {
	rng := rand.New(rand.NewSource(42))
	coords := NewCoordinates(100)
	coords.SetSize(100)
	coords.SetBoxLen(30.0)
	for i := 0; i < 100; i++ {
		coords.Set(i, rng.Float64()*30.0, rng.Float64()*30.0, rng.Float64()*30.0)
	}
	nbl := NewNbList(6.0, 4.0, ArgonRules{})
	nbl.UpdateAll(coords)

	for step := 0; step < 2000; step++ {
		i := rng.Intn(100)
		coords.Add(i, rng.Float64()-0.5, rng.Float64()-0.5, rng.Float64()-0.5)
		nbl.Update(coords, i)
	}
	assertSymmetric(Te, nbl, 100)
	assertComplete(Te, coords, nbl, 6.0)
}

func TestNblCompletenessAfterRebuild(Te *testing.T) {
	coords, nbl := fluidOnGrid()
	assertSymmetric(Te, nbl, coords.Size())
	assertComplete(Te, coords, nbl, 6.0)
}

func TestPolymerRulesExclusions(Te *testing.T) {
	coords := NewCoordinates(5)
	coords.SetSize(5)
	coords.SetBoxLen(100.0)
	for i := 0; i < 5; i++ {
		coords.Set(i, float64(i), 0.0, 0.0)
	}

	rules := PolymerRules{}
	if rules.SkipPair(coords, 2, 3) != true || rules.SkipPair(coords, 2, 1) != true {
		Te.Errorf("bonded neighbors within a chain should be excluded")
	}
	if rules.SkipPair(coords, 2, 2) != true {
		Te.Errorf("an atom can't interact with itself")
	}
	if rules.SkipPair(coords, 0, 4) {
		Te.Errorf("a distant pair of the same chain should interact")
	}

	coords.SetChains([]Span{{0, 3}, {3, 5}})
	if rules.SkipPair(coords, 2, 3) {
		Te.Errorf("adjacent atoms of different chains should interact")
	}

	nbl := NewNbList(6.0, 4.0, rules)
	nbl.UpdateAll(coords)
	for _, j := range nbl.NeighborsOf(2) {
		if j == 1 {
			Te.Errorf("neighbor list hashed a bonded pair")
		}
	}
	assertSymmetric(Te, nbl, 5)
}

func TestNblGrowsWithSystem(Te *testing.T) {
	coords := NewCoordinates(4)
	coords.SetSize(2)
	coords.SetBoxLen(50.0)
	coords.Set(0, 10.0, 10.0, 10.0)
	coords.Set(1, 12.0, 10.0, 10.0)

	nbl := NewNbList(6.0, 4.0, ArgonRules{})
	nbl.UpdateAll(coords)
	if len(nbl.NeighborsOf(0)) != 1 {
		Te.Fatalf("atom 0 has %d neighbors, want 1", len(nbl.NeighborsOf(0)))
	}

	//grow the system by one atom, the way chain builders do
	coords.SetSize(3)
	coords.Set(2, 14.0, 10.0, 10.0)
	nbl.Update(coords, 2)

	got := sortedNeighbors(nbl, 2)
	if !sameInts(got, []int{0, 1}) {
		Te.Errorf("freshly added atom lists %v as neighbors, want [0 1]", got)
	}
	assertSymmetric(Te, nbl, 3)
}

func TestNblCloneIsIndependent(Te *testing.T) {
	coords, nbl := fluidOnGrid()
	cp := nbl.Clone()

	before := sortedNeighbors(cp, 0)
	coords.Add(0, 2.5, 0.0, 0.0)
	nbl.Update(coords, 0)

	if !sameInts(before, sortedNeighbors(cp, 0)) {
		Te.Errorf("updating the original neighbor list leaked into the clone")
	}
	if cp.Cutoff() != nbl.Cutoff() || cp.BufferWidth() != nbl.BufferWidth() {
		Te.Errorf("clone lost the cutoff setup")
	}
}
