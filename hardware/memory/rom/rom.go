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

// Package rom loads and holds the processor's program store: an immutable
// sequence of BANKS*256 10-bit words (spec.md §3 "ROM image"). The
// processor borrows a read-only reference to an Image for its entire
// lifetime; Image itself never mutates after construction.
package rom

import (
	"bufio"
	"encoding/binary"
	"io"
	"strconv"
	"strings"

	"github.com/actfamily/act56/errors"
)

// WordsPerBank is the number of 10-bit words in one ROM bank (spec.md §3,
// §4.5 "Bank").
const WordsPerBank = 256

// WordMask covers the 10 significant bits of a ROM word.
const WordMask = 0x3ff

// Image is an immutable, bank-addressed ROM image.
type Image struct {
	words []uint16
}

// New validates words (length must be a non-zero multiple of WordsPerBank;
// every word must fit in 10 bits) and wraps it as an Image. The slice is
// retained, not copied, so callers must not mutate it afterwards.
func New(words []uint16) (*Image, error) {
	if len(words) == 0 || len(words)%WordsPerBank != 0 {
		return nil, errors.Errorf(errors.RomImageSize, len(words), WordsPerBank)
	}
	for _, w := range words {
		if w > WordMask {
			return nil, errors.Errorf(errors.RomImageWord, w)
		}
	}
	return &Image{words: words}, nil
}

// Banks returns the number of 256-word banks in the image.
func (img *Image) Banks() int {
	return len(img.words) / WordsPerBank
}

// Len returns the total number of words in the image.
func (img *Image) Len() int {
	return len(img.words)
}

// At returns the word at the full bank/offset address pc (bank<<8|offset).
func (img *Image) At(pc int) (uint16, error) {
	if pc < 0 || pc >= len(img.words) {
		return 0, errors.Errorf(errors.RomOutOfRange, pc)
	}
	return img.words[pc], nil
}

// Load reads a ROM image from r, auto-detecting format from its first 64
// bytes: if they hold only octal digits, spaces and tabs up to the first
// newline or '#' (or up to the end of those bytes), the stream is treated as
// an octal listing (see LoadOctal); otherwise it is treated as a raw
// little-endian binary blob (see LoadBinary).
func Load(r io.Reader) (*Image, error) {
	br := bufio.NewReader(r)

	peek, err := br.Peek(64)
	if err != nil && err != io.EOF {
		return nil, errors.Errorf(errors.RomImageCannotOpen, err)
	}

	if looksLikeOctalListing(peek) {
		return LoadOctal(br)
	}
	return LoadBinary(br)
}

func looksLikeOctalListing(peek []byte) bool {
	for _, b := range peek {
		switch {
		case b == '\n' || b == '\r':
			return true
		case b == ' ' || b == '\t':
			continue
		case b == '#':
			return true
		case b >= '0' && b <= '7':
			continue
		default:
			return false
		}
	}
	return true
}

// LoadBinary reads a raw little-endian 16-bit-per-word ROM image.
func LoadBinary(r io.Reader) (*Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Errorf(errors.RomImageCannotOpen, err)
	}
	if len(data)%2 != 0 {
		return nil, errors.Errorf(errors.RomImageSize, len(data)/2, WordsPerBank)
	}

	words := make([]uint16, len(data)/2)
	for i := range words {
		words[i] = binary.LittleEndian.Uint16(data[i*2:]) & WordMask
	}

	return New(words)
}

// LoadOctal reads a ROM image expressed as a text listing of octal words,
// one or more per line, separated by whitespace. Lines that are blank or
// begin with '#' (after leading whitespace) are ignored, matching the
// convention used by the original x11-calc sources for ROM listings.
func LoadOctal(r io.Reader) (*Image, error) {
	var words []uint16

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		for _, field := range strings.Fields(line) {
			field = strings.TrimPrefix(field, "0o")
			n, err := strconv.ParseUint(field, 8, 32)
			if err != nil {
				return nil, errors.Errorf(errors.RomImageCannotOpen, err)
			}
			if n > WordMask {
				return nil, errors.Errorf(errors.RomImageWord, n)
			}
			words = append(words, uint16(n))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Errorf(errors.RomImageCannotOpen, err)
	}

	// pad to a whole number of banks: listings in spec.md §8 are often
	// partial (a handful of instructions at bank 0), not full images.
	if rem := len(words) % WordsPerBank; rem != 0 {
		words = append(words, make([]uint16, WordsPerBank-rem)...)
	}

	return New(words)
}
