/*
 * residues_test.go, part of bioshell.
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

package chem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandardTypes(Te *testing.T) {
	assert.Equal(Te, 29, len(StandardTypes), "unexpected number of standard residue types")

	nAA := 0
	for _, srt := range StandardTypes {
		if srt.ChemCompoundType() == PeptideLinking {
			nAA++
		}
	}
	assert.Equal(Te, 21, nAA, "20 standard amino acids plus UNK expected")

	assert.Equal(Te, byte('A'), ALA.Code1())
	assert.Equal(Te, "ALA", ALA.Code3())
	assert.Equal(Te, "GAP", GAP.Code3())

	srt, err := StandardResidueTypeFromCode1('W')
	assert.NoError(Te, err)
	assert.Equal(Te, TRP, srt)
	_, err = StandardResidueTypeFromCode1('?')
	assert.Error(Te, err)
}

func TestParseResidueType(Te *testing.T) {
	aln, err := ParseResidueType("ALN A P")
	assert.NoError(Te, err)
	assert.Equal(Te, "ALN", aln.Code3)
	assert.Equal(Te, ALA, aln.ParentType)
	assert.Equal(Te, PeptideLinking, aln.ChemCompoundType)

	_, err = ParseResidueType("ALN A")
	assert.Error(Te, err)
	_, err = ParseResidueType("ALN ? P")
	assert.Error(Te, err)
	_, err = ParseResidueType("ALN A ?")
	assert.Error(Te, err)
}

func TestManagerRegistration(Te *testing.T) {
	mgr := NewResidueTypeManager()
	assert.Equal(Te, 29, mgr.Count())

	_, ok := mgr.ByCode3("ALA")
	assert.True(Te, ok, "standard types must be preloaded")
	_, ok = mgr.ByCode3("ALN")
	assert.False(Te, ok)

	aln, _ := ParseResidueType("ALN A P")
	assert.True(Te, mgr.Register(aln))
	idx, ok := mgr.Index("ALN")
	assert.True(Te, ok)
	assert.Equal(Te, 29, idx)

	//a second registration under the same code must not replace the first
	fake := ResidueType{Code3: "ALN", ParentType: GLY, ChemCompoundType: Other}
	assert.False(Te, mgr.Register(fake))
	got, _ := mgr.ByCode3("ALN")
	assert.Equal(Te, ALA, got.ParentType, "first registration should win")
}

func TestProcessWideManager(Te *testing.T) {
	if Manager().Count() < 29 {
		Te.Error("the process-wide manager lost its standard types")
	}
}
