/*
 * deposit.go, part of bioshell.
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
	"bufio"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/dgront/bioshell/chem"
	"github.com/dgront/bioshell/files"
)

//residueID identifies a residue within a chain.
type residueID struct {
	resSeq int
	iCode  byte
}

//Structure is an ordered list of atoms grouped into chains and residues.
type Structure struct {
	ID    string
	Atoms []*PdbAtom
	//terAtoms marks the residue closing each chain, as given by TER records
	terAtoms map[string]residueID
}

//NewStructure creates an empty structure of a given ID.
func NewStructure(id string) *Structure {
	return &Structure{ID: id, terAtoms: map[string]residueID{}}
}

//CountAtoms returns the number of atoms of this structure.
func (s *Structure) CountAtoms() int { return len(s.Atoms) }

//ChainIDs returns the identifiers of all chains, in the order of their
//first appearance in the atom list.
func (s *Structure) ChainIDs() []string {
	seen := map[string]bool{}
	var ids []string
	for _, a := range s.Atoms {
		if !seen[a.ChainID] {
			seen[a.ChainID] = true
			ids = append(ids, a.ChainID)
		}
	}
	return ids
}

//ChainAtoms returns all atoms of a requested chain.
func (s *Structure) ChainAtoms(chainID string) []*PdbAtom {
	var atoms []*PdbAtom
	for _, a := range s.Atoms {
		if a.ChainID == chainID {
			atoms = append(atoms, a)
		}
	}
	return atoms
}

//Sequence returns the one-letter amino acid sequence of a chain, one
//character per residue found in the atom list. Residue names missing
//from the residue-type registry become 'X'. When a TER record closed
//the chain, residues past it, such as attached ligands or waters, are
//excluded.
func (s *Structure) Sequence(chainID string) string {
	terRes, hasTer := s.terAtoms[chainID]
	var sb strings.Builder
	var prev residueID
	first := true
	for _, a := range s.Atoms {
		if a.ChainID != chainID {
			continue
		}
		res := residueID{a.ResSeq, a.ICode}
		if !first && res == prev {
			continue
		}
		first = false
		prev = res
		if rt, ok := chem.Manager().ByCode3(a.ResName); ok {
			sb.WriteByte(rt.ParentType.Code1())
		} else {
			sb.WriteByte('X')
		}
		if hasTer && res == terRes {
			break
		}
	}
	return sb.String()
}

//Deposit combines a structure with the annotations of its source file:
//the deposit identifier, classification and title from the header
//records, and per-chain sequences from SEQRES records.
type Deposit struct {
	IDCode         string
	Classification string
	Title          string
	Structure      *Structure
	sequences      map[string]string
}

//Sequence returns the sequence of a chain. SEQRES records take
//precedence since they describe the full entity; chains without them
//fall back to the sequence derived from the atom list. The second value
//is false when the deposit knows nothing about the chain.
func (d *Deposit) Sequence(chainID string) (string, bool) {
	if seq, ok := d.sequences[chainID]; ok {
		return seq, true
	}
	if seq := d.Structure.Sequence(chainID); seq != "" {
		return seq, true
	}
	return "", false
}

//Entities returns the sorted identifiers of all chains the deposit has
//sequence information for, either from SEQRES records or from atoms.
func (d *Deposit) Entities() []string {
	seen := map[string]bool{}
	for chainID := range d.sequences {
		seen[chainID] = true
	}
	for _, chainID := range d.Structure.ChainIDs() {
		seen[chainID] = true
	}
	ids := make([]string, 0, len(seen))
	for chainID := range seen {
		ids = append(ids, chainID)
	}
	sort.Strings(ids)
	return ids
}

//ReadPdbBuffer reads PDB-formatted content from a reader.
//
//Atoms are taken from the first model only; subsequent MODEL blocks of
//a trajectory are skipped. HEADER, TITLE, TER and SEQRES records are
//parsed; all the other record types are ignored.
func ReadPdbBuffer(r io.Reader) (*Deposit, error) {
	deposit := &Deposit{Structure: NewStructure(""), sequences: map[string]string{}}
	var seqres []string
	modelID := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < 6 {
			continue
		}
		switch strings.TrimSpace(line[0:6]) {
		case "ATOM", "HETATM":
			if modelID > 0 {
				continue
			}
			a, err := AtomFromPdbLine(line)
			if err != nil {
				return nil, err
			}
			deposit.Structure.Atoms = append(deposit.Structure.Atoms, a)
		case "ENDMDL":
			modelID++
		case "TER":
			recordTer(deposit.Structure, line)
		case "SEQRES":
			seqres = append(seqres, line)
		case "HEADER":
			if len(line) >= 50 {
				deposit.Classification = strings.TrimSpace(line[10:50])
			}
			if len(line) >= 66 {
				deposit.IDCode = strings.TrimSpace(line[62:66])
			}
		case "TITLE":
			text := strings.TrimSpace(line[10:])
			if deposit.Title == "" {
				deposit.Title = text
			} else {
				deposit.Title = deposit.Title + " " + text
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	deposit.sequences = parseSeqresRecords(seqres)
	return deposit, nil
}

//LoadPdb reads a Deposit from a PDB file, possibly compressed; see
//files.OpenReader for the recognized extensions.
func LoadPdb(inputFname string) (*Deposit, error) {
	reader, err := files.OpenReader(inputFname)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	deposit, err := ReadPdbBuffer(reader)
	if err != nil {
		if pdbErr, ok := err.(*Error); ok {
			pdbErr.Decorate(inputFname)
		}
		return nil, err
	}
	return deposit, nil
}

//IsPdbFile returns true if a given file looks like PDB-formatted data,
//i.e. its first non-empty line starts with one of the record types a
//deposit opens with.
func IsPdbFile(filePath string) (bool, error) {
	reader, err := files.OpenReader(filePath)
	if err != nil {
		return false, err
	}
	defer reader.Close()

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		for _, prefix := range []string{"HEADER", "ATOM", "HETATM", "REMARK"} {
			if strings.HasPrefix(line, prefix) {
				return true, nil
			}
		}
		return false, nil
	}
	return false, scanner.Err()
}

//recordTer marks the chain terminated by a TER record. A truncated or
//malformed record terminates at the most recent atom instead.
func recordTer(s *Structure, line string) {
	if len(line) >= 26 {
		chainID := line[21:22]
		if resSeq, err := strconv.Atoi(strings.TrimSpace(line[22:26])); err == nil {
			iCode := byte(' ')
			if len(line) > 26 {
				iCode = line[26]
			}
			s.terAtoms[chainID] = residueID{resSeq, iCode}
			return
		}
	}
	if len(s.Atoms) > 0 {
		last := s.Atoms[len(s.Atoms)-1]
		s.terAtoms[last.ChainID] = residueID{last.ResSeq, last.ICode}
	}
}

//parseSeqresRecords assembles per-chain sequences from SEQRES lines.
//The chain identifier is the third white-space separated field; residue
//names follow the residue count. Records too short to hold a residue
//name are skipped.
func parseSeqresRecords(records []string) map[string]string {
	buffers := map[string][]byte{}
	var chains []string
	for _, record := range records {
		parts := strings.Fields(record)
		if len(parts) < 5 {
			continue
		}
		chainID := parts[2]
		if _, ok := buffers[chainID]; !ok {
			chains = append(chains, chainID)
		}
		for _, resName := range parts[4:] {
			if rt, ok := chem.Manager().ByCode3(resName); ok {
				buffers[chainID] = append(buffers[chainID], rt.ParentType.Code1())
			} else {
				buffers[chainID] = append(buffers[chainID], 'X')
			}
		}
	}
	sequences := make(map[string]string, len(chains))
	for _, chainID := range chains {
		sequences[chainID] = string(buffers[chainID])
	}
	return sequences
}
