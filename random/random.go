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

package random

import (
	"math/rand/v2"
	"time"
)

// the base seed for all random numbers that are not explicitly seeded
var baseSeed uint64

func init() {
	baseSeed = uint64(time.Now().UnixNano())
}

// Clock is the source of emulation time used by the Rewindable() function.
type Clock interface {
	Now() uint64
}

// Random is a random number generator that is seeded explicitly or from the
// time of program startup.
type Random struct {
	clk Clock
	rng *rand.Rand

	seed uint64

	// use zero seed rather than the random base seed. only useful for
	// normalised instances where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type. The
// clock argument can be nil, in which case Rewindable() is keyed on zero.
func NewRandom(clk Clock) *Random {
	rnd := &Random{clk: clk}
	rnd.Reseed(0)
	return rnd
}

// Reseed restarts the random stream. A seed of zero means that the base seed,
// taken from the time of program startup, is used. Or zero if ZeroSeed is set.
func (rnd *Random) Reseed(seed int64) {
	switch {
	case seed != 0:
		rnd.seed = uint64(seed)
	case rnd.ZeroSeed:
		rnd.seed = 0
	default:
		rnd.seed = baseSeed
	}
	rnd.rng = rand.New(rand.NewPCG(rnd.seed, rnd.seed^0x9e3779b97f4a7c15))
}

// Seed returns the seed value that was used for the most recent Reseed().
func (rnd *Random) Seed() uint64 {
	return rnd.seed
}

// Intn returns the next number in the random stream in the range [0, n).
func (rnd *Random) Intn(n int) int {
	return rnd.rng.IntN(n)
}

// Rewindable returns a number in the range [0, n) that depends only on the
// seed and the current emulation time.
func (rnd *Random) Rewindable(n int) int {
	return rnd.Rewound().Intn(n)
}

// Rewound returns a new Random instance with a stream that depends only on the
// seed and the current emulation time. Numbers taken from the stream are
// unaffected by how much of the original stream has been used.
func (rnd *Random) Rewound() *Random {
	var now uint64
	if rnd.clk != nil {
		now = rnd.clk.Now()
	}
	return &Random{
		clk:      rnd.clk,
		rng:      rand.New(rand.NewPCG(rnd.seed, now)),
		seed:     rnd.seed,
		ZeroSeed: rnd.ZeroSeed,
	}
}
