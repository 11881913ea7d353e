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

package assert_test

import (
	"testing"

	"github.com/jetsetilly/gopher64/assert"
	"github.com/jetsetilly/gopher64/test"
)

func TestGoRoutineID(t *testing.T) {
	a := assert.GetGoRoutineID()
	test.ExpectInequality(t, a, uint64(0))
	test.ExpectEquality(t, assert.GetGoRoutineID(), a)

	ch := make(chan uint64)
	go func() {
		ch <- assert.GetGoRoutineID()
	}()
	test.ExpectInequality(t, <-ch, a)
}

func TestCheck(t *testing.T) {
	// a true condition never panics
	assert.Check(true, "always true")

	defer func() {
		r := recover()
		test.ExpectEquality(t, r != nil, assert.Enabled)
	}()
	assert.Check(false, "condition %d", 1)
}

func TestOwner(t *testing.T) {
	var o assert.Owner
	o.Claim()
	o.Claim()
	o.Release()

	done := make(chan bool)
	go func() {
		defer func() {
			done <- recover() == nil
		}()
		o.Claim()
	}()
	test.ExpectSuccess(t, <-done)
}
