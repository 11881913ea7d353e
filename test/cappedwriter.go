// This file is part of Gopher64.
//
// Gopher64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher64.  If not, see <https://www.gnu.org/licenses/>.

package test

import (
	"fmt"
)

// CappedWriter keeps only the first bytes written to it, up to a fixed size.
// Useful for checking the start of a long trace without keeping all of it. For
// the end of the trace use RingWriter.
type CappedWriter struct {
	buffer []byte
	size   int
}

// NewCappedWriter is the preferred method of initialisation for the
// CappedWriter type.
func NewCappedWriter(size int) (*CappedWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid size for CappedWriter (%d)", size)
	}
	return &CappedWriter{
		size:   size,
		buffer: make([]byte, 0, size),
	}, nil
}

func (c *CappedWriter) String() string {
	return string(c.buffer)
}

// Reset discards everything written so far. The cap is unchanged.
func (c *CappedWriter) Reset() {
	c.buffer = c.buffer[:0]
}

// Write implements io.Writer. Bytes beyond the cap are dropped and the number
// returned is the number of bytes kept.
func (c *CappedWriter) Write(p []byte) (n int, err error) {
	n = min(len(p), c.size-len(c.buffer))
	c.buffer = append(c.buffer, p[:n]...)
	return n, nil
}
