// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package errors

import (
	"fmt"
	"strings"
)

// Values holds the format arguments for an Errorf call. A nested error is a
// legal value, which is how a trap chain gets built up one call frame at a
// time as a cpu, rom or host-level fault unwinds.
type Values []interface{}

// trap is this package's error type: one of the message templates in
// messages.go, plus the Values to format it with. A decode failure that
// unwinds through cpu.Tick, Processor.Init and main all calling
// Errorf("cpu error: %v", err) shouldn't print "cpu error:" three times;
// trap.Error() collapses that down to one.
type trap struct {
	template string
	args     Values
}

// Errorf raises a new trap against one of the message templates in
// messages.go.
func Errorf(template string, args ...interface{}) error {
	return trap{
		template: template,
		args:     args,
	}
}

// Error renders the trap's formatted message, collapsing a leading part that
// duplicates the one immediately beneath it - the usual case when an inner
// call already stamped the same template on its way out.
//
// Implements the go language error interface.
func (t trap) Error() string {
	s := fmt.Errorf(t.template, t.args...).Error()

	parts := strings.SplitN(s, ": ", 3)
	if len(parts) > 1 && parts[0] == parts[1] {
		return strings.Join(parts[1:], ": ")
	}

	return strings.Join(parts, ": ")
}

// Head returns the template an error was raised against, without its
// formatted arguments. Useful for switching on the kind of fault (cpu, rom,
// prefs, ...) rather than string-matching the rendered message.
//
// If err did not come from Errorf, its Error() string is returned instead.
func Head(err error) string {
	if t, ok := err.(trap); ok {
		return t.template
	}
	return err.Error()
}

// IsAny reports whether err was raised by this package's Errorf.
func IsAny(err error) bool {
	if err == nil {
		return false
	}

	_, ok := err.(trap)
	return ok
}

// Is reports whether err was raised against the given template.
func Is(err error, template string) bool {
	if err == nil {
		return false
	}

	if t, ok := err.(trap); ok {
		return t.template == template
	}
	return false
}

// Has reports whether template appears anywhere in err's chain: either at
// its head, or nested inside one of its formatted arguments.
func Has(err error, template string) bool {
	if err == nil {
		return false
	}

	if !IsAny(err) {
		return false
	}

	if Is(err, template) {
		return true
	}

	for _, v := range err.(trap).args {
		if nested, ok := v.(trap); ok {
			if Has(nested, template) {
				return true
			}
		}
	}

	return false
}
