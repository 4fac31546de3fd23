// Package words implements the word-level codec and cursor for SPIR-V
// streams. SPIR-V serializes as a flat sequence of 32-bit words; this
// package converts between bytes and words and provides a position-tracking
// reader over a word slice.
package words

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrMisaligned is returned when a byte buffer is not a whole number of words.
var ErrMisaligned = errors.New("words: byte length not a multiple of 4")

// WordSize is the size of one stream word in bytes.
const WordSize = 4

// FromBytes converts a little-endian byte buffer into words.
func FromBytes(data []byte) ([]uint32, error) {
	if len(data)%WordSize != 0 {
		return nil, ErrMisaligned
	}
	ws := make([]uint32, len(data)/WordSize)
	for i := range ws {
		ws[i] = binary.LittleEndian.Uint32(data[i*WordSize:])
	}
	return ws, nil
}

// ToBytes converts words into a little-endian byte buffer.
func ToBytes(ws []uint32) []byte {
	buf := make([]byte, len(ws)*WordSize)
	for i, w := range ws {
		binary.LittleEndian.PutUint32(buf[i*WordSize:], w)
	}
	return buf
}

// PackString packs a string into words, 4 bytes per word little-endian,
// zero-padding the final word so the string is NUL-terminated. A string of
// length L always occupies (L+1+3)/4 words.
func PackString(s string) []uint32 {
	ws := make([]uint32, 0, (len(s)+WordSize)/WordSize)
	var cur uint32
	var shift uint
	for i := 0; i < len(s); i++ {
		cur |= uint32(s[i]) << shift
		shift += 8
		if shift == 32 {
			ws = append(ws, cur)
			cur, shift = 0, 0
		}
	}
	// The terminator: either the zero bytes of the partially filled word,
	// or a full zero word when the string ends exactly on a boundary.
	ws = append(ws, cur)
	return ws
}

// UnpackString reads a NUL-terminated packed string from ws and returns it
// together with the number of words it occupies. When no NUL appears the
// whole slice is consumed and ok is false.
func UnpackString(ws []uint32) (s string, n int, ok bool) {
	buf := make([]byte, 0, len(ws)*WordSize)
	for i, w := range ws {
		for shift := uint(0); shift < 32; shift += 8 {
			b := byte(w >> shift)
			if b == 0 {
				return string(buf), i + 1, true
			}
			buf = append(buf, b)
		}
	}
	return string(buf), len(ws), false
}

// Reader is a position-tracking cursor over a word slice.
type Reader struct {
	ws  []uint32
	pos int
}

// NewReader creates a Reader positioned at the given word offset.
func NewReader(ws []uint32, pos int) *Reader {
	return &Reader{ws: ws, pos: pos}
}

// Position returns the current word offset.
func (r *Reader) Position() int {
	return r.pos
}

// Remaining returns the number of unread words.
func (r *Reader) Remaining() int {
	return len(r.ws) - r.pos
}

// ReadWord reads one word and advances the position.
func (r *Reader) ReadWord() (uint32, error) {
	if r.pos >= len(r.ws) {
		return 0, io.EOF
	}
	w := r.ws[r.pos]
	r.pos++
	return w, nil
}

// ReadWords returns a view of the next n words and advances past them.
func (r *Reader) ReadWords(n int) ([]uint32, error) {
	if n < 0 || r.pos+n > len(r.ws) {
		return nil, r.wrapError(io.ErrUnexpectedEOF)
	}
	ws := r.ws[r.pos : r.pos+n]
	r.pos += n
	return ws, nil
}

// Skip advances the position by n words.
func (r *Reader) Skip(n int) error {
	if n < 0 || r.pos+n > len(r.ws) {
		return r.wrapError(io.ErrUnexpectedEOF)
	}
	r.pos += n
	return nil
}

func (r *Reader) wrapError(err error) error {
	return fmt.Errorf("at word %d: %w", r.pos, err)
}
