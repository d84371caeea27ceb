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

// Package alu implements the ACT's dual-base (BCD or binary) arithmetic
// primitives (spec.md §4.2). Every primitive iterates the nibbles named by
// a registers.Field, reads the carry flag on entry and writes it on exit; a
// nil register argument is treated as a zero vector, which is what lets
// Inc be expressed as Add(r, r, nil, true).
package alu

import "github.com/actfamily/act56/hardware/cpu/registers"

// Copy implements `dst[i] ← src[i]` over field; a nil src copies zero,
// which is how "0 -> a[f]"-style clears are expressed.
func Copy(dst, src *registers.Register, field registers.Field) {
	for i := field.First; i <= field.Last; i++ {
		dst.SetNibble(i, nibbleOf(src, i))
	}
}

// Exch implements `swap a[i] and b[i]`; carry is unaffected.
func Exch(a, b *registers.Register, field registers.Field) {
	for i := field.First; i <= field.Last; i++ {
		av, bv := a.Nibble(i), b.Nibble(i)
		a.SetNibble(i, bv)
		b.SetNibble(i, av)
	}
}

func nibbleOf(r *registers.Register, i int) uint8 {
	if r == nil {
		return 0
	}
	return r.Nibble(i)
}

// Add implements `t ← s[i] + a[i] + carry`, base-reducing into carry, and
// storing into dst when dst is non-nil (a nil dst allows compare-style use).
func Add(dst, s, a *registers.Register, field registers.Field, base int, carry bool) (carryOut bool) {
	for i := field.First; i <= field.Last; i++ {
		t := int(nibbleOf(s, i)) + int(nibbleOf(a, i))
		if carry {
			t++
		}
		if t >= base {
			t -= base
			carry = true
		} else {
			carry = false
		}
		if dst != nil {
			dst.SetNibble(i, uint8(t))
		}
	}
	return carry
}

// Sub implements `t ← (s[i] - a[i]) - carry`, base-reducing into carry.
func Sub(dst, s, a *registers.Register, field registers.Field, base int, carry bool) (carryOut bool) {
	for i := field.First; i <= field.Last; i++ {
		t := int(nibbleOf(s, i)) - int(nibbleOf(a, i))
		if carry {
			t--
		}
		if t < 0 {
			t += base
			carry = true
		} else {
			carry = false
		}
		if dst != nil {
			dst.SetNibble(i, uint8(t))
		}
	}
	return carry
}

// Inc implements `inc(r)`: carry ← 1, then Add(r, r, nil).
func Inc(r *registers.Register, field registers.Field, base int) (carryOut bool) {
	return Add(r, r, nil, field, base, true)
}

// Eq implements `eq(src, ref)`: carry ← 0 ("true"); on the first unequal
// nibble carry ← 1 and the scan stops.
func Eq(src, ref *registers.Register, field registers.Field) (carry bool) {
	for i := field.First; i <= field.Last; i++ {
		if nibbleOf(src, i) != nibbleOf(ref, i) {
			return true
		}
	}
	return false
}

// Ne implements `ne(src, ref)`: carry ← 1; on the first unequal nibble
// carry ← 0 and the scan stops.
func Ne(src, ref *registers.Register, field registers.Field) (carry bool) {
	for i := field.First; i <= field.Last; i++ {
		if nibbleOf(src, i) != nibbleOf(ref, i) {
			return false
		}
	}
	return true
}

// Shl implements `shl(r)`: r[i] ← r[i-1], descending from last to first+1;
// r[first] ← 0. Returns the (carry, prevCarry) pair the caller must store,
// since shl clears both.
func Shl(r *registers.Register, field registers.Field) (carry, prevCarry bool) {
	for i := field.Last; i > field.First; i-- {
		r.SetNibble(i, r.Nibble(i-1))
	}
	r.SetNibble(field.First, 0)
	return false, false
}

// Shr implements `shr(r)`: r[i] ← r[i+1], ascending from first to last-1;
// r[last] ← 0; clears carry.
func Shr(r *registers.Register, field registers.Field) (carry bool) {
	for i := field.First; i < field.Last; i++ {
		r.SetNibble(i, r.Nibble(i+1))
	}
	r.SetNibble(field.Last, 0)
	return false
}
