package spv

import (
	spverrors "github.com/shadertools/spvpatch/errors"
)

// ValidateBody checks that a raw instruction stream partitions exactly into
// instructions: every header word carries a non-zero count, every span stays
// in bounds, and the final instruction ends precisely at the stream end.
func ValidateBody(ws []uint32) error {
	off := 0
	for off < len(ws) {
		count := int(ws[off] >> 16)
		if count == 0 {
			return spverrors.InvalidData(spverrors.PhaseParse, off, "zero instruction word count")
		}
		if off+count > len(ws) {
			return spverrors.New(spverrors.PhaseParse, spverrors.KindInvalidData).
				Offset(off).
				Detail("instruction of %d words overruns stream of %d", count, len(ws)).
				Build()
		}
		off += count
	}
	return nil
}

// ValidateWords checks a full module stream: header magic plus body
// partitioning. Run after patching when the caller asks for verification.
func ValidateWords(ws []uint32) error {
	if len(ws) < HeaderWords {
		return spverrors.InvalidData(spverrors.PhaseParse, 0, "truncated header")
	}
	if ws[0] != Magic {
		return spverrors.InvalidMagic(ws[0])
	}
	return ValidateBody(ws[HeaderWords:])
}
