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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/gopher64/hardware/vicii"
)

// the number of bytes recorded for each line, not including the bytes for
// each cycle
const lineHeader = 3 + 40 + 40 + 40 + 1 + vicii.NumSprites*3 + vicii.NumRegisters

// the number of bytes recorded for each cycle
const cycleDepth = 3

// Video is an implementation of the vicii.Renderer interface. It generates a
// SHA-1 value of the VIC-II output every frame. it does not display the image
// anywhere.
//
// Note that the use of SHA-1 is fine for this application because this is not
// a cryptographic task.
type Video struct {
	digest [sha1.Size]byte

	// the first sha1.Size bytes are the previous digest. the rest is the
	// frame data, one record per line
	data []byte

	height        int
	cyclesPerLine int
	lineLen       int

	// number of frames digested since the last reset
	Frames int
}

// NewVideo is the preferred method of initialisation for the Video type. The
// configuration should be the resolved configuration of the VIC-II being
// digested.
func NewVideo(cfg vicii.Config) *Video {
	dig := &Video{
		height:        cfg.ScreenHeight,
		cyclesPerLine: cfg.CyclesPerLine,
	}
	dig.lineLen = lineHeader + dig.cyclesPerLine*cycleDepth
	dig.data = make([]byte, len(dig.digest)+dig.lineLen*dig.height)
	return dig
}

// Hash implements digest.Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *Video) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	for i := range dig.data {
		dig.data[i] = 0
	}
	dig.Frames = 0
}

func (dig *Video) line(line int) []byte {
	if line < 0 || line >= dig.height {
		return nil
	}
	i := len(dig.digest) + line*dig.lineLen
	return dig.data[i : i+dig.lineLen]
}

// DrawCycle implements the vicii.Renderer interface.
func (dig *Video) DrawCycle(state *vicii.CycleState) {
	l := dig.line(state.Line)
	if l == nil || state.Cycle < 0 || state.Cycle >= dig.cyclesPerLine {
		return
	}

	var flags uint8
	if state.MainBorder {
		flags |= 0x01
	}
	if state.VBorder {
		flags |= 0x02
	}
	if state.Idle {
		flags |= 0x04
	}

	i := lineHeader + state.Cycle*cycleDepth
	l[i] = state.Data
	l[i+1] = flags
	l[i+2] = state.SpriteDisplay
}

// EndLine implements the vicii.Renderer interface.
func (dig *Video) EndLine(state *vicii.LineState) {
	l := dig.line(state.Line)
	if l == nil {
		return
	}

	l[0] = uint8(state.Line)
	l[1] = uint8(state.Line >> 8)
	l[2] = 0
	if state.BadLine {
		l[2] = 1
	}

	i := 3
	i += copy(l[i:], state.Matrix[:])
	i += copy(l[i:], state.Color[:])
	i += copy(l[i:], state.Graphics[:])
	l[i] = state.SpriteDisplay
	i++
	for s := range state.Sprites {
		i += copy(l[i:], state.Sprites[s][:])
	}
	copy(l[i:], state.Registers[:])

	if state.Line == dig.height-1 {
		dig.newFrame()
	}
}

func (dig *Video) newFrame() {
	// chain fingerprints by copying the value of the last fingerprint
	// to the head of the frame data
	copy(dig.data, dig.digest[:])
	dig.digest = sha1.Sum(dig.data)
	dig.Frames++
}
