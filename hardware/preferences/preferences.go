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

package preferences

import (
	"sync/atomic"

	"github.com/jetsetilly/gopher64/prefs"
)

// default values for preferences.
const (
	DefaultModel   = "6569"
	DefaultVSPBug  = false
	DefaultREUSize = 0
)

// LivePreferences are the preference values in a form suitable for reading
// from the emulation goroutine.
type LivePreferences struct {
	VSPBug   atomic.Value // bool
	RandSeed atomic.Value // int
}

// Preferences defines and collates all the preference values used by the
// emulated hardware.
type Preferences struct {
	collection *prefs.Collection

	// Live values should be preferred in performance critical code
	Live LivePreferences

	// emulate the memory corruption of the VSP bug
	VSPBug prefs.Bool

	// seed for the random number generator used by the hardware. a value of
	// zero means the seed is taken from the time of startup
	RandSeed prefs.Int

	// the chip model of the VIC-II
	Model prefs.String

	// size of the REU in kilobytes. zero indicates no REU is attached
	REUSize prefs.Int
}

func (p *Preferences) String() string {
	return p.collection.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Values on the prefs command line stack are applied.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{
		collection: prefs.NewCollection(),
	}

	p.VSPBug.SetHookPost(func(v prefs.Value) error {
		p.Live.VSPBug.Store(v.(bool))
		return nil
	})
	p.RandSeed.SetHookPost(func(v prefs.Value) error {
		p.Live.RandSeed.Store(v.(int))
		return nil
	})

	for k, v := range map[string]prefs.Pref{
		"vicii.vspbug":  &p.VSPBug,
		"vicii.model":   &p.Model,
		"hardware.seed": &p.RandSeed,
		"reu.size":      &p.REUSize,
	} {
		if err := p.collection.Add(k, v); err != nil {
			return nil, err
		}
	}

	if err := p.SetDefaults(); err != nil {
		return nil, err
	}

	if err := p.collection.ApplyCommandLine(); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to the default values.
func (p *Preferences) SetDefaults() error {
	if err := p.VSPBug.Set(DefaultVSPBug); err != nil {
		return err
	}
	if err := p.RandSeed.Set(0); err != nil {
		return err
	}
	if err := p.Model.Set(DefaultModel); err != nil {
		return err
	}
	return p.REUSize.Set(DefaultREUSize)
}
