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

package ansi_test

import (
	"testing"

	"github.com/jetsetilly/gopher64/curated"
	"github.com/jetsetilly/gopher64/debugger/easyterm/ansi"
	"github.com/jetsetilly/gopher64/test"
)

func TestColorBuild(t *testing.T) {
	s, err := ansi.ColorBuild("red", "", "", false, false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[31m")

	s, err = ansi.ColorBuild("yellow", "blue", "bold", true, false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[93;44;1m")

	s, err = ansi.ColorBuild("", "", "", false, false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, ansi.NormalPen)

	_, err = ansi.ColorBuild("mauve", "", "", false, false)
	test.ExpectEquality(t, curated.Is(err, ansi.UnknownColor), true)

	_, err = ansi.ColorBuild("", "", "blink", false, false)
	test.ExpectEquality(t, curated.Is(err, ansi.UnknownColor), true)
}

func TestPens(t *testing.T) {
	test.ExpectEquality(t, ansi.Pens["red"], "\033[91m")
	test.ExpectEquality(t, ansi.Pens["inverse"], "\033[7m")
	_, ok := ansi.Pens["normal"]
	test.ExpectEquality(t, ok, false)
}
