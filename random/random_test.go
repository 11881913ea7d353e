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

package random_test

import (
	"testing"

	"github.com/jetsetilly/gopher64/random"
	"github.com/jetsetilly/gopher64/test"
)

type clock struct {
	now uint64
}

func (c *clock) Now() uint64 {
	return c.now
}

func TestRewindable(t *testing.T) {
	clk := &clock{now: 1000}
	a := random.NewRandom(clk)
	b := random.NewRandom(clk)
	a.ZeroSeed = true
	b.ZeroSeed = true
	a.Reseed(0)
	b.Reseed(0)

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Rewindable(i), b.Rewindable(i))
	}

	// the same time always gives the same number
	v := a.Rewindable(1 << 30)
	_ = a.Intn(100)
	test.ExpectEquality(t, a.Rewindable(1<<30), v)
}

func TestStream(t *testing.T) {
	a := random.NewRandom(nil)
	b := random.NewRandom(nil)
	a.Reseed(12345)
	b.Reseed(12345)

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Intn(i), b.Intn(i))
	}

	// reseeding restarts the stream
	a.Reseed(12345)
	first := a.Intn(1 << 30)
	a.Reseed(12345)
	test.ExpectEquality(t, a.Intn(1<<30), first)
	test.ExpectEquality(t, a.Seed(), uint64(12345))
}

func TestRewound(t *testing.T) {
	clk := &clock{now: 500}
	a := random.NewRandom(clk)
	a.Reseed(99)

	first := a.Rewound()
	want := make([]int, 10)
	for i := range want {
		want[i] = first.Intn(1 << 30)
	}
	test.ExpectEquality(t, want[0], a.Rewindable(1<<30))

	// using the main stream does not change the rewound stream
	for range 50 {
		_ = a.Intn(100)
	}
	second := a.Rewound()
	for i := range want {
		test.ExpectEquality(t, second.Intn(1<<30), want[i])
	}

	// a different time gives a different stream
	clk.now++
	third := a.Rewound()
	same := true
	for i := range want {
		if third.Intn(1<<30) != want[i] {
			same = false
		}
	}
	test.ExpectFailure(t, same)
	test.ExpectEquality(t, third.Seed(), uint64(99))
}
