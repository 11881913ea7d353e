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

package cpu_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher64/curated"
	"github.com/jetsetilly/gopher64/hardware/cpu"
	"github.com/jetsetilly/gopher64/test"
)

func TestParseScript(t *testing.T) {
	script := `
# set up raster interrupt
10 w $d012 0x40
10 W 53274 1   # $d01a
  
200 r $d019
0x100 pen 1
300 pen 0
`
	events, err := cpu.ParseScript(strings.NewReader(script))
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(events), 5)

	test.ExpectEquality(t, events[0].Line, 3)
	test.ExpectEquality(t, events[0].Cycle, uint64(10))
	test.ExpectEquality(t, events[0].Access, cpu.Write)
	test.ExpectEquality(t, events[0].Address, uint16(0xd012))
	test.ExpectEquality(t, events[0].Value, uint8(0x40))

	test.ExpectEquality(t, events[1].Address, uint16(0xd01a))
	test.ExpectEquality(t, events[1].Value, uint8(0x01))

	test.ExpectEquality(t, events[2].Line, 6)
	test.ExpectEquality(t, events[2].Access, cpu.Read)
	test.ExpectEquality(t, events[2].Address, uint16(0xd019))

	test.ExpectEquality(t, events[3].Cycle, uint64(256))
	test.ExpectEquality(t, events[3].Access, cpu.Pen)
	test.ExpectEquality(t, events[3].Value, uint8(1))
	test.ExpectEquality(t, events[4].Value, uint8(0))

	test.ExpectEquality(t, events[0].String(), "10 w $d012 $40")
	test.ExpectEquality(t, events[2].String(), "200 r $d019")
}

func TestParseScriptErrors(t *testing.T) {
	for _, script := range []string{
		"10",
		"10 x $d000",
		"10 w $d000",
		"10 w $d000 1 2",
		"10 r",
		"10 r $10000",
		"10 w $d000 $100",
		"ten r $d000",
		"10 pen 2",
		"20 r $d000\n10 r $d000",
	} {
		_, err := cpu.ParseScript(strings.NewReader(script))
		if test.ExpectFailure(t, err, script) {
			test.ExpectSuccess(t, curated.Is(err, cpu.ScriptError), script)
		}
	}

	_, err := cpu.ParseScript(strings.NewReader("1 r 0\n2 r 0\n\n4 x 0"))
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(err.Error(), "cpu: script line 4: "))
}
