/*
 * pdb_io.go, part of bioshell.
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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dgront/bioshell/files"
	"github.com/dgront/bioshell/vec3"
)

//chainsOrder maps a chain index to its PDB chain identifier.
const chainsOrder = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

//WritePdb writes one model of a system to a writer in the PDB format.
//
//All atoms are written as poly-alanine chains and named " CA "; chains are
//labelled by subsequent capital letters, followed by digits if necessary,
//so a system may comprise no more than 36 chains. Residues are numbered
//from zero within each chain.
func WritePdb(w io.Writer, system *Coordinates, iModel int) error {
	if _, err := fmt.Fprintf(w, "MODEL %5d\n", iModel); err != nil {
		return err
	}
	iRes := 0
	prevChain := byte(' ')
	for i := 0; i < system.Size(); i++ {
		id := int(system.ChainId(i))
		if id >= len(chainsOrder) {
			return fmt.Errorf("cartesian: can't write PDB: chain index %d exceeds the %d available chain identifiers",
				id, len(chainsOrder))
		}
		chainId := chainsOrder[id]
		if chainId != prevChain {
			prevChain = chainId
			iRes = 0
		}
		_, err := fmt.Fprintf(w, "ATOM  %5d  CA  ALA %c%4d    %8.3f%8.3f%8.3f  1.00 99.88           C\n",
			i, chainId, iRes, system.X(i), system.Y(i), system.Z(i))
		if err != nil {
			return err
		}
		iRes++
	}
	_, err := io.WriteString(w, "ENDMDL\n")
	return err
}

//CoordinatesToPdb writes a given system to a PDB file as one MODEL block.
//
//When ifAppend is true the model goes after the current content of the file,
//which is how trajectory observers accumulate frames; otherwise the file is
//overwritten. The filename extension may request compression, see
//files.OutWriter.
func CoordinatesToPdb(system *Coordinates, iModel int, outFname string, ifAppend bool) error {
	w, err := files.OutWriter(outFname, ifAppend)
	if err != nil {
		return err
	}
	if err := WritePdb(w, system, iModel); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

//vecFromAtomLine fills a vector from an ATOM line in the PDB format.
func vecFromAtomLine(atomLine string) (vec3.Vec3, error) {
	var v vec3.Vec3
	if len(atomLine) < 54 {
		return v, fmt.Errorf("cartesian: ATOM line too short: %q", atomLine)
	}
	id := strings.IndexByte(chainsOrder, atomLine[21])
	if id < 0 {
		return v, fmt.Errorf("cartesian: unexpected chain identifier %q in line %q", atomLine[21], atomLine)
	}
	v.ChainId = uint16(id)
	var err error
	if v.X, err = strconv.ParseFloat(strings.TrimSpace(atomLine[30:38]), 64); err != nil {
		return v, fmt.Errorf("cartesian: can't parse the x coordinate from line %q", atomLine)
	}
	if v.Y, err = strconv.ParseFloat(strings.TrimSpace(atomLine[38:46]), 64); err != nil {
		return v, fmt.Errorf("cartesian: can't parse the y coordinate from line %q", atomLine)
	}
	if v.Z, err = strconv.ParseFloat(strings.TrimSpace(atomLine[46:54]), 64); err != nil {
		return v, fmt.Errorf("cartesian: can't parse the z coordinate from line %q", atomLine)
	}
	return v, nil
}

//PdbToCoordinates reads the content of a PDB file into a Coordinates object.
//
//The function supports only single-model files, i.e. it can't be used to
//load a trajectory with multiple conformations. The box length stays at its
//permissive default since PDB files carry no box. Compressed files are
//recognized by extension, see files.OpenReader.
func PdbToCoordinates(inputFname string) (*Coordinates, error) {
	r, err := files.OpenReader(inputFname)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var buff []vec3.Vec3
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "ATOM  ") {
			continue
		}
		v, err := vecFromAtomLine(line)
		if err != nil {
			return nil, err
		}
		buff = append(buff, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	coords := NewCoordinates(len(buff))
	coords.SetSize(len(buff))
	for i := range buff {
		coords.Set(i, buff[i].X, buff[i].Y, buff[i].Z)
		coords.Atom(i).ChainId = buff[i].ChainId
	}
	return coords, nil
}
