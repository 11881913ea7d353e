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

package easyterm_test

import (
	"os"
	"testing"

	"github.com/jetsetilly/gopher64/curated"
	"github.com/jetsetilly/gopher64/debugger/easyterm"
	"github.com/jetsetilly/gopher64/test"
)

func TestNotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "easyterm")
	test.DemandSuccess(t, err)
	defer f.Close()

	test.ExpectEquality(t, easyterm.IsTerminal(f), false)

	var pt easyterm.Terminal
	err = pt.Initialise(f, f)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, easyterm.NotATerminal), true)

	err = pt.Initialise(nil, f)
	test.ExpectFailure(t, err)
}
