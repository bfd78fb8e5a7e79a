/*
 * files.go, part of bioshell.
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

//Package files opens readers and writers for simulation outputs, choosing a
//compression scheme from the filename extension. Observers and trajectory
//writers can therefore produce .zst, .gz, .flate or .lzw files just by being
//given such a name; any other extension means a plain buffered file.
package files

import (
	"bufio"
	"compress/flate"
	"compress/gzip"
	"compress/lzw"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

const lzwLitWidth int = 8

//stackedWriter closes the compressor first so its tail block reaches the file.
type stackedWriter struct {
	h io.WriteCloser
	f *os.File
}

func (s *stackedWriter) Write(p []byte) (int, error) { return s.h.Write(p) }

func (s *stackedWriter) Close() error {
	err := s.h.Close()
	if err2 := s.f.Close(); err == nil {
		err = err2
	}
	return err
}

//plainWriter is a buffered file that flushes on Close.
type plainWriter struct {
	w *bufio.Writer
	f *os.File
}

func (p *plainWriter) Write(b []byte) (int, error) { return p.w.Write(b) }

func (p *plainWriter) Close() error {
	err := p.w.Flush()
	if err2 := p.f.Close(); err == nil {
		err = err2
	}
	return err
}

//OutWriter opens a named file for buffered writing. When ifAppend is false
//any previous content of the file is wiped out; otherwise new bytes go after
//the existing ones. The stream is compressed according to the filename
//extension: .zst or .zstd, .gz, .flate and .lzw select the respective codec,
//anything else gives a plain file. Close the returned writer to flush it.
func OutWriter(name string, ifAppend bool) (io.WriteCloser, error) {
	flags := os.O_CREATE | os.O_WRONLY
	if ifAppend {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(name, flags, 0644)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".zst", ".zstd":
		h, err := zstd.NewWriter(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &stackedWriter{h: h, f: f}, nil
	case ".gz":
		return &stackedWriter{h: gzip.NewWriter(f), f: f}, nil
	case ".flate":
		h, err := flate.NewWriter(f, flate.DefaultCompression)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &stackedWriter{h: h, f: f}, nil
	case ".lzw":
		return &stackedWriter{h: lzw.NewWriter(f, lzw.MSB, lzwLitWidth), f: f}, nil
	default:
		return &plainWriter{w: bufio.NewWriter(f), f: f}, nil
	}
}

//zstdql adapts *zstd.Decoder, whose Close returns nothing, to io.ReadCloser.
type zstdql struct {
	closeql func()
	*zstd.Decoder
}

func (z zstdql) Close() error {
	z.closeql()
	return nil
}

//stackedReader closes the decompressor and then the underlying file.
type stackedReader struct {
	h io.ReadCloser
	f *os.File
}

func (s *stackedReader) Read(p []byte) (int, error) { return s.h.Read(p) }

func (s *stackedReader) Close() error {
	err := s.h.Close()
	if err2 := s.f.Close(); err == nil {
		err = err2
	}
	return err
}

//OpenReader opens a named file for reading, undoing the compression implied
//by the filename extension; see OutWriter for the recognized set.
func OpenReader(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".zst", ".zstd":
		r, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &stackedReader{h: zstdql{r.Close, r}, f: f}, nil
	case ".gz":
		r, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &stackedReader{h: r, f: f}, nil
	case ".flate":
		return &stackedReader{h: flate.NewReader(f), f: f}, nil
	case ".lzw":
		return &stackedReader{h: lzw.NewReader(f, lzw.MSB, lzwLitWidth), f: f}, nil
	default:
		return f, nil
	}
}
