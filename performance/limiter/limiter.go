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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate. It is used to hold the emulation to the frame rate of the VIC-II model
// when running in real time.
//
// A new FpsLimiter can be created with (error handling removed for clarity):
//
//	fps, _ := limiter.NewFPSLimiter(ctx, 50.125)
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		fps.Wait()
//		c64.StepFrame()
//	}
//
// The ticker goroutine ends when the context is cancelled.
package limiter

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/gopher64/curated"
)

// InvalidLimit is returned when the requested rate is not positive.
const InvalidLimit = "limiter: invalid frame rate (%f)"

// FpsLimiter will trigger every frames per second
type FpsLimiter struct {
	// duration of one frame in nanoseconds. accessed atomically so that
	// SetLimit() can be called while the ticker is running
	secondsPerFrame atomic.Int64

	tick chan bool
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type
func NewFPSLimiter(ctx context.Context, framesPerSecond float64) (*FpsLimiter, error) {
	lim := &FpsLimiter{}
	if err := lim.SetLimit(framesPerSecond); err != nil {
		return nil, err
	}

	lim.tick = make(chan bool)

	// run ticker concurrently
	go func() {
		t := time.Now()
		var drift time.Duration
		for {
			select {
			case lim.tick <- true:
			case <-ctx.Done():
				return
			}

			spf := time.Duration(lim.secondsPerFrame.Load())

			// correct for the time lost on the previous frame. a large
			// drift (the emulation can not keep up) is forgotten
			adjusted := spf - drift
			if adjusted < 0 {
				adjusted = 0
			}

			select {
			case <-time.After(adjusted):
			case <-ctx.Done():
				return
			}

			nt := time.Now()
			drift = nt.Sub(t) - spf
			if drift > spf {
				drift = 0
			}
			t = nt
		}
	}()

	return lim, nil
}

// SetLimit changes the limit at which the FpsLimiter waits
func (lim *FpsLimiter) SetLimit(framesPerSecond float64) error {
	if framesPerSecond <= 0 {
		return curated.Errorf(InvalidLimit, framesPerSecond)
	}
	lim.secondsPerFrame.Store(int64(float64(time.Second) / framesPerSecond))
	return nil
}

// Wait will block until trigger
func (lim *FpsLimiter) Wait() {
	<-lim.tick
}

// HasWaited will return true if time has already elapsed and false it it is
// still yet to happen
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		// default case means that the channel receiving case doesn't block
		return false
	}
}
