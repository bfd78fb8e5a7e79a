/*
 * pdb_atom_test.go, part of bioshell.
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

package pdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomLineRoundTrip(Te *testing.T) {
	line := "ATOM    320  CA  PHE A  43      16.101   9.057  19.587  1.00 18.18           C  "
	a, err := AtomFromPdbLine(line)
	require.NoError(Te, err)
	assert.Equal(Te, 320, a.Serial)
	assert.Equal(Te, "CA", a.Name)
	assert.Equal(Te, byte(' '), a.AltLoc)
	assert.Equal(Te, "PHE", a.ResName)
	assert.Equal(Te, "A", a.ChainID)
	assert.Equal(Te, 43, a.ResSeq)
	assert.InDelta(Te, 16.101, a.Pos.X, 1e-9)
	assert.InDelta(Te, 9.057, a.Pos.Y, 1e-9)
	assert.InDelta(Te, 19.587, a.Pos.Z, 1e-9)
	assert.InDelta(Te, 1.0, a.Occupancy, 1e-9)
	assert.InDelta(Te, 18.18, a.TempFactor, 1e-9)
	assert.Equal(Te, "C", a.Element)
	assert.False(Te, a.IsHetero)
	assert.Equal(Te, line, a.String())
}

func TestAtomLineAltLocAndInsertion(Te *testing.T) {
	line := "ATOM   2831  OE1BGLN A 294C    -27.117  12.343  28.479  1.00  9.58           O  "
	a, err := AtomFromPdbLine(line)
	require.NoError(Te, err)
	assert.Equal(Te, "OE1", a.Name)
	assert.Equal(Te, byte('B'), a.AltLoc)
	assert.Equal(Te, "GLN", a.ResName)
	assert.Equal(Te, 294, a.ResSeq)
	assert.Equal(Te, byte('C'), a.ICode)
	assert.InDelta(Te, -27.117, a.Pos.X, 1e-9)
	assert.Equal(Te, line, a.String())
}

func TestAtomLineNegativeResSeq(Te *testing.T) {
	a, err := AtomFromPdbLine("ATOM     33  CA AARG A  -3      12.353  85.696  94.456  0.50 36.67           C")
	require.NoError(Te, err)
	assert.Equal(Te, -3, a.ResSeq)
	assert.Equal(Te, byte('A'), a.AltLoc)
	assert.Equal(Te, "CA", a.Name)
	assert.Equal(Te, "C", a.Element)

	//the same record truncated right after the temperature factor
	a, err = AtomFromPdbLine("ATOM     33  CA AARG A  -3      12.353  85.696  94.456  0.50 36.67")
	require.NoError(Te, err)
	assert.Equal(Te, "", a.Element)
}

func TestHetatmLine(Te *testing.T) {
	line := "HETATM  118  O   HOH A  19      31.109  13.280   9.173  1.00  8.82           O  "
	a, err := AtomFromPdbLine(line)
	require.NoError(Te, err)
	assert.True(Te, a.IsHetero)
	assert.Equal(Te, "HOH", a.ResName)
	assert.Equal(Te, "O", a.Name)
	assert.Equal(Te, line, a.String())
}

func TestAtomLineErrors(Te *testing.T) {
	_, err := AtomFromPdbLine("ATOM    320  CA  PHE A  43")
	require.Error(Te, err)
	pdbErr, ok := err.(*Error)
	require.True(Te, ok)
	assert.Equal(Te, ErrAtomLineTooShort, pdbErr.Message())

	_, err = AtomFromPdbLine("ATOM    ???  CA  PHE A  43      16.101   9.057  19.587  1.00 18.18           C  ")
	require.Error(Te, err)
	pdbErr, ok = err.(*Error)
	require.True(Te, ok)
	assert.Equal(Te, ErrAtomLineBadNumber, pdbErr.Message())
	assert.Contains(Te, pdbErr.Error(), "???")
}

func TestDefaultAtom(Te *testing.T) {
	a := NewPdbAtom()
	assert.Equal(Te, "CA", a.Name)
	assert.Equal(Te, "ALA", a.ResName)
	assert.Equal(Te, "A", a.ChainID)
	assert.Equal(Te, 1, a.ResSeq)
	assert.InDelta(Te, 0.0, a.Pos.Length(), 1e-12)
	assert.Equal(Te, "ATOM      1  CA  ALA A   1       0.000   0.000   0.000  1.00  0.00           C  ",
		a.String())
}

func TestSameResidueAtoms(Te *testing.T) {
	a1, err := AtomFromPdbLine("ATOM    389  CG2 VAL A  50       7.150   8.278  10.760  1.00 20.57           C")
	require.NoError(Te, err)
	a2, err := AtomFromPdbLine("ATOM    390  N   LEU A  51      10.919   9.836  12.777  1.00 10.30           N")
	require.NoError(Te, err)
	a3, err := AtomFromPdbLine("ATOM    391  CA  LEU A  51      12.088   9.803  13.653  1.00  9.53           C  ")
	require.NoError(Te, err)
	assert.False(Te, SameResidueAtoms(a1, a2))
	assert.True(Te, SameResidueAtoms(a2, a3))
}
