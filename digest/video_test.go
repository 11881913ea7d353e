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

package digest_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher64/digest"
	"github.com/jetsetilly/gopher64/hardware/vicii"
	"github.com/jetsetilly/gopher64/test"
)

var cfg = vicii.Config{
	CyclesPerLine: 63,
	ScreenHeight:  312,
}

// frame sends a full frame to the renderer. the value is stored in the
// graphics data of every line.
func frame(dig *digest.Video, value uint8) {
	for l := range cfg.ScreenHeight {
		for c := range cfg.CyclesPerLine {
			dig.DrawCycle(&vicii.CycleState{Line: l, Cycle: c, Data: value})
		}
		line := vicii.LineState{Line: l}
		line.Graphics[0] = value
		dig.EndLine(&line)
	}
}

func TestVideo(t *testing.T) {
	zero := strings.Repeat("0", 40)

	dig := digest.NewVideo(cfg)
	test.ExpectEquality(t, dig.Hash(), zero)

	frame(dig, 0x01)
	test.ExpectEquality(t, dig.Frames, 1)
	first := dig.Hash()
	test.ExpectInequality(t, first, zero)

	// the same frame again produces a different hash because the digests are
	// chained
	frame(dig, 0x01)
	test.ExpectEquality(t, dig.Frames, 2)
	test.ExpectInequality(t, dig.Hash(), first)

	dig.ResetDigest()
	test.ExpectEquality(t, dig.Hash(), zero)
	test.ExpectEquality(t, dig.Frames, 0)
	frame(dig, 0x01)
	test.ExpectEquality(t, dig.Hash(), first)
}

func TestVideoDifference(t *testing.T) {
	a := digest.NewVideo(cfg)
	b := digest.NewVideo(cfg)

	frame(a, 0x01)
	frame(b, 0x01)
	test.ExpectEquality(t, a.Hash(), b.Hash())

	frame(a, 0x01)
	frame(b, 0x02)
	test.ExpectInequality(t, a.Hash(), b.Hash())

	// a single cycle of difference is enough
	c := digest.NewVideo(cfg)
	d := digest.NewVideo(cfg)
	d.DrawCycle(&vicii.CycleState{Line: 100, Cycle: 62, MainBorder: true})
	frame(c, 0x01)
	frame(d, 0x01)
	test.ExpectEquality(t, c.Hash(), d.Hash())

	d.DrawCycle(&vicii.CycleState{Line: 100, Cycle: 62, MainBorder: true})
	frame(c, 0x01)
	for l := range cfg.ScreenHeight {
		if l == 100 {
			// the border flag is recorded for the last cycle of line 100
			for cy := range cfg.CyclesPerLine - 1 {
				d.DrawCycle(&vicii.CycleState{Line: l, Cycle: cy, Data: 0x01})
			}
		} else {
			for cy := range cfg.CyclesPerLine {
				d.DrawCycle(&vicii.CycleState{Line: l, Cycle: cy, Data: 0x01})
			}
		}
		line := vicii.LineState{Line: l}
		line.Graphics[0] = 0x01
		d.EndLine(&line)
	}
	test.ExpectInequality(t, c.Hash(), d.Hash())
}

func TestVideoOutOfRange(t *testing.T) {
	dig := digest.NewVideo(cfg)
	dig.DrawCycle(&vicii.CycleState{Line: -1})
	dig.DrawCycle(&vicii.CycleState{Line: 312})
	dig.DrawCycle(&vicii.CycleState{Line: 0, Cycle: 63})
	dig.EndLine(&vicii.LineState{Line: 400})
	test.ExpectEquality(t, dig.Frames, 0)
}
