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

package prefs_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher64/prefs"
	"github.com/jetsetilly/gopher64/test"
)

func TestBool(t *testing.T) {
	var b prefs.Bool
	test.ExpectEquality(t, b.Get().(bool), false)
	test.ExpectSuccess(t, b.Set(true))
	test.ExpectEquality(t, b.Get().(bool), true)
	test.ExpectSuccess(t, b.Set("FALSE"))
	test.ExpectEquality(t, b.String(), "false")
	test.ExpectFailure(t, b.Set(10))
}

func TestInt(t *testing.T) {
	var i prefs.Int
	test.ExpectEquality(t, i.Get().(int), 0)
	test.ExpectSuccess(t, i.Set("42"))
	test.ExpectEquality(t, i.Get().(int), 42)
	test.ExpectFailure(t, i.Set("forty two"))
	test.ExpectEquality(t, i.Get().(int), 42)
	test.ExpectSuccess(t, i.Reset())
	test.ExpectEquality(t, i.String(), "0")
}

func TestString(t *testing.T) {
	var s prefs.String
	s.SetMaxLen(4)
	test.ExpectSuccess(t, s.Set("6569R3"))
	test.ExpectEquality(t, s.String(), "6569")
}

func TestHooks(t *testing.T) {
	var i prefs.Int
	var post int

	i.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return errors.New("negative")
		}
		return nil
	})
	i.SetHookPost(func(v prefs.Value) error {
		post = v.(int)
		return nil
	})

	test.ExpectSuccess(t, i.Set(10))
	test.ExpectEquality(t, post, 10)

	// the pre hook rejects the value and the post hook is not called
	test.ExpectFailure(t, i.Set(-1))
	test.ExpectEquality(t, i.Get().(int), 10)
	test.ExpectEquality(t, post, 10)
}

func TestCommandLineStack(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	prefs.PushCommandLineStack("foo::bar; baz::qux")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1)

	ok, v := prefs.GetCommandLinePref("foo")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "bar")

	// value is consumed when it is returned
	ok, _ = prefs.GetCommandLinePref("foo")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestCollection(t *testing.T) {
	var vsp prefs.Bool
	var seed prefs.Int

	c := prefs.NewCollection()
	test.DemandSuccess(t, c.Add("vicii.vspbug", &vsp))
	test.DemandSuccess(t, c.Add("vicii.seed", &seed))
	test.ExpectFailure(t, c.Add("vicii.seed", &seed))

	prefs.PushCommandLineStack("vicii.seed::99; unused::1")
	test.ExpectSuccess(t, c.ApplyCommandLine())
	test.ExpectEquality(t, seed.Get().(int), 99)
	test.ExpectEquality(t, vsp.Get().(bool), false)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unused::1")

	test.ExpectEquality(t, c.String(), "vicii.seed :: 99\nvicii.vspbug :: false\n")

	p, ok := c.Lookup("vicii.vspbug")
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, p.Set(true))
	test.ExpectEquality(t, vsp.Get().(bool), true)

	test.ExpectSuccess(t, c.Reset())
	test.ExpectEquality(t, vsp.Get().(bool), false)
}
