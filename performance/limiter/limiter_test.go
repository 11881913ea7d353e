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

package limiter_test

import (
	"context"
	"testing"
	"time"

	"github.com/jetsetilly/gopher64/curated"
	"github.com/jetsetilly/gopher64/performance/limiter"
	"github.com/jetsetilly/gopher64/test"
)

func TestInvalidLimit(t *testing.T) {
	_, err := limiter.NewFPSLimiter(context.Background(), 0)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, limiter.InvalidLimit), true)
}

func TestWait(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	lim, err := limiter.NewFPSLimiter(ctx, 100)
	test.ExpectSuccess(t, err)

	// the first tick is immediate. the next five are 10ms apart
	start := time.Now()
	for range 6 {
		lim.Wait()
	}
	test.ExpectEquality(t, time.Since(start) >= 40*time.Millisecond, true)
}

func TestSetLimit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	lim, err := limiter.NewFPSLimiter(ctx, 1000)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, lim.SetLimit(-1))
	test.ExpectSuccess(t, lim.SetLimit(50))
}
