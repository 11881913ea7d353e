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

// Package test bundles helper functions that remove common boilerplate from
// tests written for the standard go test harness.
//
// The Expect*() functions report a failed expectation with t.Errorf() and
// allow the test to continue. The Demand*() functions report with t.Fatalf()
// and should be used when subsequent tests depend on the result.
//
// The success/failure functions interpret the value according to its type: a
// bool is successful if it is true and an error is successful if it is nil.
// The nil value is considered a success because that is how errors work.
//
// All functions take an optional list of tags which are prefixed to the
// failure message. This is useful when a test is run in a loop.
//
//	for i, c := range cases {
//		test.ExpectEquality(t, f(c.in), c.out, i)
//	}
//
// The RingWriter and CappedWriter types implement io.Writer and are useful
// for capturing output.
package test
