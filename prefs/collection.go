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

package prefs

import (
	"fmt"
	"sort"
	"strings"
)

// Collection is a named set of preference values.
type Collection struct {
	entries map[string]Pref
}

// NewCollection is the preferred method of initialisation for the Collection
// type.
func NewCollection() *Collection {
	return &Collection{
		entries: make(map[string]Pref),
	}
}

// Add a preference value to the collection. The key should be unique.
func (c *Collection) Add(key string, p Pref) error {
	if _, ok := c.entries[key]; ok {
		return fmt.Errorf("prefs: key (%s) already exists", key)
	}
	c.entries[key] = p
	return nil
}

// Lookup returns the preference value for the key.
func (c *Collection) Lookup(key string) (Pref, bool) {
	p, ok := c.entries[key]
	return p, ok
}

// Reset all preference values in the collection.
func (c *Collection) Reset() error {
	for _, k := range c.keys() {
		if err := c.entries[k].Reset(); err != nil {
			return fmt.Errorf("prefs: %s: %w", k, err)
		}
	}
	return nil
}

// ApplyCommandLine sets every preference in the collection that has a value
// in the current group of the command line stack.
func (c *Collection) ApplyCommandLine() error {
	for _, k := range c.keys() {
		if ok, v := GetCommandLinePref(k); ok {
			if err := c.entries[k].Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}
	return nil
}

// String returns the collection as a list of key/value pairs, one per line.
func (c *Collection) String() string {
	s := strings.Builder{}
	for _, k := range c.keys() {
		s.WriteString(fmt.Sprintf("%s :: %s\n", k, c.entries[k]))
	}
	return s.String()
}

func (c *Collection) keys() []string {
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
