/*
 * definitions_test.go, part of bioshell.
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

package builder

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dgront/bioshell/cif"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocatorFromString(Te *testing.T) {
	for _, token := range []string{"prev", "Prev", "PREV"} {
		locator, err := LocatorFromString(token)
		assert.NoError(Te, err)
		assert.Equal(Te, Previous, locator)
	}
	locator, err := LocatorFromString("this")
	assert.NoError(Te, err)
	assert.Equal(Te, This, locator)
	locator, err = LocatorFromString("Next")
	assert.NoError(Te, err)
	assert.Equal(Te, Next, locator)

	_, err = LocatorFromString("somewhere")
	require.Error(Te, err)
	locErr, ok := err.(*Error)
	require.True(Te, ok)
	assert.Equal(Te, ErrUnknownLocator, locErr.Message())
	assert.Contains(Te, err.Error(), "somewhere")

	//the numeric value of a locator is the residue offset it denotes
	assert.Equal(Te, -1, int(Previous))
	assert.Equal(Te, 0, int(This))
	assert.Equal(Te, 1, int(Next))
	assert.Equal(Te, "prev", Previous.String())
	assert.Equal(Te, "this", This.String())
	assert.Equal(Te, "next", Next.String())
}

func TestDefinitionFromCifLine(Te *testing.T) {
	line := "'ALA' this ' N  ' this ' CA ' this ' C  ' next ' N  ' N 1.328685 114.0  180.0 psi"
	def, err := DefinitionFromCifLine(line)
	require.NoError(Te, err)
	assert.Equal(Te, "ALA", def.ResName)
	assert.Equal(Te, "N", def.AName)
	assert.Equal(Te, "CA", def.BName)
	assert.Equal(Te, "C", def.CName)
	assert.Equal(Te, "N", def.Name)
	assert.Equal(Te, "N", def.Element)
	assert.Equal(Te, "psi", def.DihedralName)
	assert.Equal(Te, This, def.AResidue)
	assert.Equal(Te, This, def.BResidue)
	assert.Equal(Te, This, def.CResidue)
	assert.Equal(Te, Next, def.DResidue)
	assert.InDelta(Te, 1.328685, def.R, 1e-9)
	assert.InDelta(Te, 114.0*math.Pi/180.0, def.Planar, 1e-9)
	assert.InDelta(Te, math.Pi, def.Dihedral, 1e-9)
}

func TestDefinitionFromStrings(Te *testing.T) {
	line := "'bb ' next ' N  ' this ' CA ' this ' C  ' this ' O  ' O 1.231015 121.0  180.0 -"
	def, err := DefinitionFromStrings(cif.SplitIntoStrings(line, false))
	require.NoError(Te, err)
	//quoted names carry PDB-style padding which is trimmed away
	assert.Equal(Te, "bb", def.ResName)
	assert.Equal(Te, "O", def.Name)
	assert.Equal(Te, "N", def.AName)
	assert.Equal(Te, Next, def.AResidue)
	assert.Equal(Te, This, def.DResidue)
	assert.Equal(Te, "O", def.Element)
	assert.Equal(Te, "-", def.DihedralName)
	assert.InDelta(Te, 1.231015, def.R, 1e-9)
	assert.InDelta(Te, 121.0*math.Pi/180.0, def.Planar, 1e-9)
	assert.InDelta(Te, math.Pi, def.Dihedral, 1e-9)
}

func TestDefinitionErrors(Te *testing.T) {
	ok := "'bb ' prev ' N  ' prev ' CA ' prev ' C  ' this ' N  ' N 1.328685 114.0 180.0 psi"
	_, err := DefinitionFromCifLine(ok)
	require.NoError(Te, err)

	for wrong, message := range map[string]string{
		"'bb ' prev ' N  ' prev ' CA '":                                          ErrDefinitionTooShort,
		"'bb ' prevv ' N ' prev ' CA ' prev ' C ' this ' N ' N 1.3 114.0 180.0 psi": ErrUnknownLocator,
		"'bb ' prev ' N ' prev ' CA ' prev ' C ' this ' N ' N abc 114.0 180.0 psi":  ErrBadBondLength,
		"'bb ' prev ' N ' prev ' CA ' prev ' C ' this ' N ' N 1.3 abc 180.0 psi":    ErrBadPlanarAngle,
		"'bb ' prev ' N ' prev ' CA ' prev ' C ' this ' N ' N 1.3 114.0 abc psi":    ErrBadDihedralAngle,
	} {
		_, err := DefinitionFromCifLine(wrong)
		require.Error(Te, err, wrong)
		defErr, isBuilderError := err.(*Error)
		require.True(Te, isBuilderError)
		assert.Equal(Te, message, defErr.Message())
	}

	_, err = DefinitionFromCifLine("'bb ' prevv ' N ' prev ' CA ' prev ' C ' this ' N ' N 1.3 114.0 180.0 psi")
	assert.Contains(Te, err.Error(), "prevv")
}

func TestDatabaseFromCifBlocks(Te *testing.T) {
	blocks, err := cif.ReadCifBuffer(strings.NewReader(BackboneDefinitionsCif))
	require.NoError(Te, err)
	db := NewInternalCoordinatesDatabase()
	require.NoError(Te, db.LoadFromCifData(blocks))

	assert.Equal(Te, 2, db.CountDefinitions())
	bb, ok := db.Definition("bb_")
	require.True(Te, ok)
	require.Len(Te, bb, 4)
	assert.Equal(Te, "N", bb[0].Name)
	assert.Equal(Te, "CA", bb[1].Name)
	assert.Equal(Te, "C", bb[2].Name)
	assert.Equal(Te, "O", bb[3].Name)
	assert.Equal(Te, Next, bb[3].AResidue)
	assert.Equal(Te, "omega", bb[1].DihedralName)
	assert.InDelta(Te, 1.458001, bb[1].R, 1e-9)

	patch, ok := db.Definition("patch_CTerm")
	require.True(Te, ok)
	require.Len(Te, patch, 2)
	assert.Equal(Te, "OXT", patch[0].Name)
	assert.Equal(Te, "CTerm", patch[0].ResName)

	_, ok = db.Definition("sidechains")
	assert.False(Te, ok)
}

func TestDatabaseMergesBlocksOfTheSameName(Te *testing.T) {
	first := `data_bb_
loop_
_res_name
_atom_a_residue_locator
_atom_a_name
_atom_b_residue_locator
_atom_b_name
_atom_c_residue_locator
_atom_c_name
_atom_d_residue_locator
_atom_d_name
_atom_d_element
_c_d_bond_length
_b_c_d_planar_angle
_a_b_c_d_dihedral_angle
_dihedral_angle_name
'bb ' prev ' N  ' prev ' CA ' prev ' C  ' this ' N  ' N 1.328685 114.0 180.0 psi
`
	second := strings.Replace(first, "' N  ' N 1.328685", "' CB ' C 1.521000", 1)

	db := NewInternalCoordinatesDatabase()
	for _, text := range []string{first, second} {
		blocks, err := cif.ReadCifBuffer(strings.NewReader(text))
		require.NoError(Te, err)
		require.NoError(Te, db.LoadFromCifData(blocks))
	}
	assert.Equal(Te, 1, db.CountDefinitions())
	bb, ok := db.Definition("bb_")
	require.True(Te, ok)
	require.Len(Te, bb, 2)
	assert.Equal(Te, "N", bb[0].Name)
	assert.Equal(Te, "CB", bb[1].Name)
}

func TestDefaultDatabase(Te *testing.T) {
	db, err := DefaultDatabase()
	require.NoError(Te, err)
	assert.Equal(Te, 2, db.CountDefinitions())
	bb, ok := db.Definition("bb_")
	require.True(Te, ok)
	assert.Len(Te, bb, 4)
}

func TestDatabaseFromCifDirectory(Te *testing.T) {
	dir := Te.TempDir()
	require.NoError(Te, os.WriteFile(filepath.Join(dir, "backbone.cif"), []byte(BackboneDefinitionsCif), 0644))
	require.NoError(Te, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a definition file\n"), 0644))
	require.NoError(Te, os.Mkdir(filepath.Join(dir, "subdir"), 0755))

	db, err := DatabaseFromCifDirectory(dir)
	require.NoError(Te, err)
	assert.Equal(Te, 2, db.CountDefinitions())
	patch, ok := db.Definition("patch_CTerm")
	require.True(Te, ok)
	assert.Len(Te, patch, 2)

	_, err = DatabaseFromCifDirectory(filepath.Join(dir, "no-such-place"))
	assert.Error(Te, err)
}
