package spv

import (
	"math"

	spverrors "github.com/shadertools/spvpatch/errors"
	"github.com/shadertools/spvpatch/spv/internal/words"
)

// maxInstructionWords is the largest word count the 16-bit length field of
// an instruction header can carry.
const maxInstructionWords = math.MaxUint16

// Builder assembles one variable-length instruction: opcode plus staged
// operand words. Operands accumulate through the Push methods; InsertAt
// commits the instruction into a stream and clears the staging buffer, on
// failure as well as success. A Builder whose staging buffer is non-empty
// when discarded indicates a logic error in the caller; Pending exposes
// that state for defensive checks.
//
// The zero Builder is not useful; start with NewBuilder or Begin.
type Builder struct {
	op       Opcode
	operands []uint32
	err      error
}

// NewBuilder starts a descriptor for the given opcode.
func NewBuilder(op Opcode) *Builder {
	return &Builder{op: op, operands: make([]uint32, 0, 8)}
}

// Begin resets the builder for a fresh instruction. The previous staging
// buffer must already be empty.
func (b *Builder) Begin(op Opcode) *Builder {
	b.op = op
	b.operands = b.operands[:0]
	b.err = nil
	return b
}

// PushWord appends one operand word.
func (b *Builder) PushWord(v uint32) *Builder {
	b.operands = append(b.operands, v)
	return b
}

// PushValue appends an integral operand after checking it fits one word.
// Oversized values poison the builder; the error surfaces at InsertAt.
func (b *Builder) PushValue(v uint64) *Builder {
	if v > math.MaxUint32 {
		if b.err == nil {
			b.err = spverrors.OperandTooWide(v)
		}
		return b
	}
	return b.PushWord(uint32(v))
}

// PushString appends a string operand packed 4 bytes per word little-endian,
// zero-padded so the string is NUL-terminated within the packed words. A
// string of length L occupies ceil((L+1)/4) words.
func (b *Builder) PushString(s string) *Builder {
	b.operands = append(b.operands, words.PackString(s)...)
	return b
}

// Len returns the pending instruction's total word count, header included.
func (b *Builder) Len() int {
	return len(b.operands) + 1
}

// Pending reports whether the builder holds staged operands that were never
// committed. Discarding a pending builder is a programming error.
func (b *Builder) Pending() bool {
	return len(b.operands) > 0 || b.err != nil
}

// InsertAt commits the staged instruction into stream at the given word
// offset, returning a new slice with all words at or after offset shifted
// later. The header word packs the opcode into the low 16 bits and the
// total word count into the high 16 bits. The staging buffer is cleared
// whether or not the insertion succeeds.
func (b *Builder) InsertAt(stream []uint32, offset int) ([]uint32, error) {
	op, operands, err := b.op, b.operands, b.err
	b.operands = b.operands[:0]
	b.err = nil

	if err != nil {
		return nil, err
	}
	count := len(operands) + 1
	if count > maxInstructionWords {
		return nil, spverrors.InstructionTooLong(count)
	}
	if offset < 0 || offset > len(stream) {
		return nil, spverrors.InvalidOffset(offset, len(stream))
	}

	out := make([]uint32, 0, len(stream)+count)
	out = append(out, stream[:offset]...)
	out = append(out, uint32(count)<<16|uint32(op))
	out = append(out, operands...)
	out = append(out, stream[offset:]...)
	return out, nil
}

// PackString packs a string operand into words without a builder. Exposed
// for tests and for callers sizing instructions ahead of time.
func PackString(s string) []uint32 {
	return words.PackString(s)
}

// UnpackString reads a NUL-terminated packed string and the number of words
// it occupies. ok is false when no terminator is present.
func UnpackString(ws []uint32) (s string, n int, ok bool) {
	return words.UnpackString(ws)
}
