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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which takes a formatting pattern and placeholder values
// just like the Errorf() function in the fmt package.
//
// The pattern is retained and can be tested for with the Is() function. The
// Has() function checks whether the pattern occurs anywhere in the chain of
// wrapped curated errors.
//
//	const UnknownModel = "vicii: unknown chip model (%s)"
//
//	e := curated.Errorf(UnknownModel, "6510")
//	f := curated.Errorf("configure: %v", e)
//
//	curated.Is(e, UnknownModel)  // true
//	curated.Is(f, UnknownModel)  // false
//	curated.Has(f, UnknownModel) // true
//
// The Error() function normalises the message by removing duplicate adjacent
// parts of the chain. This means that code does not need to worry about
// whether the caller has already added the same context:
//
//	vicii: vicii: unknown chip model (6510)
//
// is reported as
//
//	vicii: unknown chip model (6510)
package curated
