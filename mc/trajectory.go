/*
 * trajectory.go, part of bioshell.
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
	"bufio"
	"io"

	"github.com/dgront/bioshell/cartesian"
	"github.com/dgront/bioshell/files"
)

//PdbTrajectory records every observed conformation as a MODEL frame of a
//PDB file. The file is opened once, written through a buffer and finalized
//by Close(); a name ending in .gz or .zst yields a compressed trajectory.
type PdbTrajectory struct {
	fname  string
	out    io.WriteCloser
	buf    *bufio.Writer
	iModel int
}

//NewPdbTrajectory opens a trajectory file. When ifAppend is true new frames
//are added at the end of an existing file, otherwise the file is wiped off.
func NewPdbTrajectory(fname string, ifAppend bool) (*PdbTrajectory, error) {
	out, err := files.OutWriter(fname, ifAppend)
	if err != nil {
		return nil, err
	}
	return &PdbTrajectory{fname: fname, out: out, buf: bufio.NewWriter(out)}, nil
}

//Observe appends the current conformation as the next MODEL frame. A write
//problem surfaces at the next Flush() or Close() call.
func (p *PdbTrajectory) Observe(system *cartesian.System) {
	_ = cartesian.WritePdb(p.buf, system.Coordinates(), p.iModel)
	p.iModel++
}

//Flush pushes buffered frames towards the file.
func (p *PdbTrajectory) Flush() error { return p.buf.Flush() }

//Close flushes the buffer and closes the file.
func (p *PdbTrajectory) Close() error {
	if err := p.buf.Flush(); err != nil {
		p.out.Close()
		return err
	}
	return p.out.Close()
}

//Name identifies the observer within an ObserversSet.
func (p *PdbTrajectory) Name() string { return "PdbTrajectory" }
