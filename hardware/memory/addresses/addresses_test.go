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

package addresses_test

import (
	"testing"

	"github.com/jetsetilly/gopher64/hardware/memory/addresses"
	"github.com/jetsetilly/gopher64/test"
)

func TestSymbols(t *testing.T) {
	test.ExpectEquality(t, len(addresses.VICII), addresses.VICIIMirror)
	test.ExpectEquality(t, addresses.VICII[addresses.CR1], "CR1")
	test.ExpectEquality(t, addresses.VICII[addresses.M7C], "M7C")
	test.ExpectEquality(t, addresses.VICII[addresses.NumVICIIRegisters], "")
	test.ExpectEquality(t, addresses.REU[addresses.ADDRCTRL], "ADDRCTRL")
	test.ExpectEquality(t, addresses.REU[addresses.NumREURegisters], "")
}

func TestDataMasks(t *testing.T) {
	test.ExpectEquality(t, addresses.DataMasks[addresses.EC], uint8(0x0f))
	test.ExpectEquality(t, addresses.DataMasks[addresses.M7C], uint8(0x0f))
	test.ExpectEquality(t, addresses.DataMasks[addresses.NumVICIIRegisters], uint8(0x00))
	test.ExpectEquality(t, addresses.DataMasks[addresses.VICIIMirror-1], uint8(0x00))
}
