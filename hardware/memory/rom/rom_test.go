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

package rom_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/actfamily/act56/hardware/memory/rom"
	"github.com/actfamily/act56/test"
)

func TestNewRejectsBadLength(t *testing.T) {
	_, err := rom.New(make([]uint16, 10))
	test.ExpectFailure(t, err)
}

func TestNewRejectsWideWord(t *testing.T) {
	words := make([]uint16, rom.WordsPerBank)
	words[0] = 0x7ff
	_, err := rom.New(words)
	test.ExpectFailure(t, err)
}

func TestNewSingleBank(t *testing.T) {
	words := make([]uint16, rom.WordsPerBank)
	words[0] = 0014
	img, err := rom.New(words)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, img.Banks(), 1)

	w, err := img.At(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, uint16(0014))
}

func TestAtOutOfRange(t *testing.T) {
	img, err := rom.New(make([]uint16, rom.WordsPerBank))
	test.ExpectSuccess(t, err)

	_, err = img.At(rom.WordsPerBank)
	test.ExpectFailure(t, err)
	_, err = img.At(-1)
	test.ExpectFailure(t, err)
}

func TestLoadOctalListing(t *testing.T) {
	listing := "# bank 0\n0014\n0100 0101\n"
	img, err := rom.LoadOctal(strings.NewReader(listing))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, img.Banks(), 1)

	w0, _ := img.At(0)
	w1, _ := img.At(1)
	w2, _ := img.At(2)
	test.ExpectEquality(t, w0, uint16(0014))
	test.ExpectEquality(t, w1, uint16(0100))
	test.ExpectEquality(t, w2, uint16(0101))
}

func TestLoadOctalRejectsOutOfRangeWord(t *testing.T) {
	_, err := rom.LoadOctal(strings.NewReader("7777\n"))
	test.ExpectFailure(t, err)
}

func TestLoadBinary(t *testing.T) {
	data := make([]byte, rom.WordsPerBank*2)
	data[0] = 0x14 // word 0 = 0x0014 little-endian
	img, err := rom.LoadBinary(bytes.NewReader(data))
	test.ExpectSuccess(t, err)

	w, err := img.At(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, uint16(0x14))
}

func TestLoadAutodetectsOctal(t *testing.T) {
	img, err := rom.Load(strings.NewReader("0014\n0015\n"))
	test.ExpectSuccess(t, err)
	w, _ := img.At(0)
	test.ExpectEquality(t, w, uint16(0014))
}
