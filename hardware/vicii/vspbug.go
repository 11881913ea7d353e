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

package vicii

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher64/logger"
	"github.com/jetsetilly/gopher64/random"
)

// RandomSource is the source of random numbers for the VSP bug. If the source
// is an instance of random.Random then the outcome of a bus crash depends only
// on the seed and the cycle on which the crash happens.
type RandomSource interface {
	// Intn returns a number in the range [0, n)
	Intn(n int) int
}

// probabilities used to decide whether memory is corrupted. a line and
// channel probability are summed with a random zero or one and compared with
// the threshold
const (
	vspProbMax    = 4
	vspProbMin    = 0
	vspProbThresh = 3

	// the number of warnings before warnings are suppressed
	vspWarnings = 100

	// a page is corrupted if a random number in the range [0, 1000] is above
	// this value. this leaves about 98.5% of pages untouched
	vspPageChance = 985
)

// vspBug models the memory corruption that can happen when a bad line is
// started in the middle of a line that was previously in the idle state. The
// DRAM refresh is interrupted and bits in the last row of every character in
// a page can flip. Which bits are susceptible differs from machine to
// machine. Each machine has a set of safe channels (the difference between
// the old and new vertical scroll) and weaker lines.
type vspBug struct {
	rnd RandomSource

	ysmoothOld uint8
	lines      [8]int
	channels   [8]int
	warn       int
}

// SetVSPRandom sets the random source used by the VSP bug. The characteristics
// of the machine are redrawn using the new source.
func (vic *VICII) SetVSPRandom(rnd RandomSource) {
	vic.vsp.rnd = rnd
	vic.vsp.init(vic)
}

func (vsp *vspBug) enabled(vic *VICII) bool {
	if v, ok := vic.env.Prefs.Live.VSPBug.Load().(bool); ok {
		return v
	}
	return false
}

// init draws a new set of machine characteristics.
func (vsp *vspBug) init(vic *VICII) {
	vsp.ysmoothOld = vic.YSmooth
	vsp.warn = vspWarnings

	for i := range vsp.lines {
		vsp.lines[i] = vspProbMax / 2
		vsp.channels[i] = vspProbMax / 2
	}

	if vsp.rnd == nil {
		return
	}

	safe := vsp.rnd.Intn(0x100)

	s := strings.Builder{}
	for i := range vsp.channels {
		if safe&(1<<i) != 0 {
			vsp.channels[i] = vspProbMin
			s.WriteString(fmt.Sprintf("%d", i))
		}
	}

	weak := vsp.rnd.Intn(0x100)
	for i := range vsp.lines {
		if weak&(1<<i) != 0 {
			vsp.lines[i] >>= 1
		}
	}

	state := "disabled"
	if vsp.enabled(vic) {
		state = "enabled"
	}
	logger.Logf(vic.env, "vsp bug", "safe channels are: %s. emulation of memory corruption is %s", s.String(), state)
}

// handle is called on a cycle where the bus might crash.
func (vsp *vspBug) handle(vic *VICII) {
	enabled := vsp.enabled(vic)

	channel := (vic.YSmooth ^ vsp.ysmoothOld) & 0x07
	line := vic.RasterLine & 0x07

	if vsp.warn > 0 {
		var star string
		if vsp.lines[line]+vsp.channels[channel]+1 > vspProbThresh {
			star = " *"
		}
		logger.Logf(vic.env, "vsp bug", "line: %d/%3d cycle: %2d channel: %d%s",
			line, vic.RasterLine, vic.desc.Cycle(), channel, star)
		vsp.warn--
		if vsp.warn == 0 {
			logger.Log(vic.env, "vsp bug", "further warnings suppressed")
		}
	}

	if !enabled || vsp.rnd == nil || vic.dram == nil {
		return
	}

	rnd := vsp.rnd
	if r, ok := rnd.(*random.Random); ok {
		rnd = r.Rewound()
	}

	if vsp.lines[line]+vsp.channels[channel]+rnd.Intn(2) <= vspProbThresh {
		return
	}

	for page := 0x00; page < 0xff; page++ {
		if rnd.Intn(1001) <= vspPageChance {
			continue
		}

		// every address in the page ending in 7 or f is affected
		var seen0, seen1 uint8
		for row := 0x07; row <= 0xff; row += 0x08 {
			v, _ := vic.dram.Peek(uint16(page<<8 | row))
			seen0 |= ^v
			seen1 |= v
		}

		fragile := seen0 & seen1
		result := fragile & uint8(rnd.Intn(0x100))

		for row := 0x07; row <= 0xff; row += 0x08 {
			a := uint16(page<<8 | row)
			v, _ := vic.dram.Peek(a)
			_ = vic.dram.Poke(a, v&^fragile|result)
		}
	}
}
