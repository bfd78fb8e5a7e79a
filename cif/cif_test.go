/*
 * cif_test.go, part of bioshell.
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

package cif

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCifLoop(Te *testing.T) {
	dataLoop := NewCifLoop("_symmetry_equiv_pos_site_id")
	assert.Equal(Te, 1, dataLoop.CountColumns())
	dataLoop.AddColumn("_symmetry_equiv_pos_as_xyz")
	assert.Equal(Te, 2, dataLoop.CountColumns())

	require.NoError(Te, dataLoop.AddDataRow([]string{"1", "x,y,z"}))
	require.NoError(Te, dataLoop.AddDataRow([]string{"2", "x,y,z"}))
	assert.Equal(Te, 2, dataLoop.CountRows())

	assert.True(Te, dataLoop.SetEntry(0, "_symmetry_equiv_pos_as_xyz", "-x,-y,-z"))
	assert.False(Te, dataLoop.SetEntry(0, "_no_such_column", "oops"))

	value, ok := dataLoop.Entry(1, "_symmetry_equiv_pos_as_xyz")
	assert.True(Te, ok)
	assert.Equal(Te, "x,y,z", value)
	_, ok = dataLoop.Entry(1, "_no_such_column")
	assert.False(Te, ok)

	expected := `loop_
_symmetry_equiv_pos_site_id
_symmetry_equiv_pos_as_xyz
1 -x,-y,-z
2 x,y,z

`
	assert.Equal(Te, expected, dataLoop.String())
}

func TestLoopColumnLookup(Te *testing.T) {
	dataLoop := NewCifLoop("_atom_site_label", "_atom_site_x", "_atom_site_y")
	idx, ok := dataLoop.ColumnIndex("_atom_site_x")
	assert.True(Te, ok)
	assert.Equal(Te, 1, idx)
	_, ok = dataLoop.ColumnIndex("_atom_site_z")
	assert.False(Te, ok)

	assert.True(Te, dataLoop.ColumnNameContains("atom_site"))
	assert.True(Te, dataLoop.ColumnNameContains("x"))
	assert.False(Te, dataLoop.ColumnNameContains("vector"))

	indexes, err := dataLoop.ColumnIndexes("_atom_site_y", "_atom_site_label")
	require.NoError(Te, err)
	assert.Equal(Te, []int{2, 0}, indexes)

	_, err = dataLoop.ColumnIndexes("_atom_site_label", "_atom_site_z")
	require.Error(Te, err)
	cifErr, ok := err.(*Error)
	require.True(Te, ok)
	assert.Equal(Te, ErrMissingLoopKey, cifErr.Message())
}

func TestLoopIncompleteRows(Te *testing.T) {
	dataLoop := NewCifLoop("_a", "_b", "_c")

	//a short row stays incomplete until the next call fills it up
	require.NoError(Te, dataLoop.AddDataRow([]string{"1", "2"}))
	assert.Equal(Te, 1, dataLoop.CountRows())
	require.NoError(Te, dataLoop.AddDataRow([]string{"3"}))
	assert.Equal(Te, 1, dataLoop.CountRows())
	assert.Equal(Te, []string{"1", "2", "3"}, dataLoop.Rows()[0])

	require.NoError(Te, dataLoop.AddDataRow([]string{"4", "5"}))
	err := dataLoop.AddDataRow([]string{"6", "7"})
	require.Error(Te, err)
	assert.Equal(Te, ErrRowTooLong, err.(*Error).Message())

	tooWide := NewCifLoop("_a")
	err = tooWide.AddDataRow([]string{"1", "2"})
	require.Error(Te, err)
	assert.Equal(Te, ErrRowTooLong, err.(*Error).Message())
}

func TestAddColumnAfterDataPanics(Te *testing.T) {
	dataLoop := NewCifLoop("_a")
	require.NoError(Te, dataLoop.AddDataRow([]string{"1"}))
	assert.Panics(Te, func() { dataLoop.AddColumn("_b") })
}

func TestCifDataItems(Te *testing.T) {
	block := NewCifData("atomic_mass")
	assert.Equal(Te, "atomic_mass", block.Name())
	block.AddItem("C", "12.011")
	block.AddItem("O", "15.999")
	assert.Len(Te, block.DataItems(), 2)

	value, ok := block.Item("C")
	assert.True(Te, ok)
	assert.Equal(Te, "12.011", value)
	_, ok = block.Item("N")
	assert.False(Te, ok)

	//the item map is live; writing to it equals AddItem
	block.DataItems()["N"] = "14.007"
	value, ok = block.Item("N")
	assert.True(Te, ok)
	assert.Equal(Te, "14.007", value)
}

func TestCifDataString(Te *testing.T) {
	block := NewCifData("ALA")
	block.AddItem("_chem_comp.id", "ALA")
	block.AddItem("_chem_comp.name", "ALANINE")
	block.AddItem("_chem_comp.type", "'L-PEPTIDE LINKING'")
	block.AddItem("_chem_comp.pdbx_type", "ATOMP")

	expected := `data_ALA
_chem_comp.id        ALA
_chem_comp.name      ALANINE
_chem_comp.pdbx_type ATOMP
_chem_comp.type      'L-PEPTIDE LINKING'

`
	assert.Equal(Te, expected, block.String())
}

func TestFirstLoop(Te *testing.T) {
	block := NewCifData("two_tables")
	atoms := NewCifLoop("_atom_id", "_atom_x")
	bonds := NewCifLoop("_bond_id", "_bond_order")
	block.AddLoop(atoms)
	block.AddLoop(bonds)

	assert.Len(Te, block.LoopBlocks(), 2)
	assert.Same(Te, atoms, block.FirstLoop("_atom"))
	assert.Same(Te, bonds, block.FirstLoop("order"))
	assert.Nil(Te, block.FirstLoop("_angle"))
}

func TestEntryHasValue(Te *testing.T) {
	assert.True(Te, EntryHasValue("1.6"))
	assert.True(Te, EntryHasValue("A string"))
	assert.False(Te, EntryHasValue("."))
	assert.False(Te, EntryHasValue("?"))
}
