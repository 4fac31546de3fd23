package patch

import (
	"go.uber.org/zap"

	spverrors "github.com/shadertools/spvpatch/errors"
	"github.com/shadertools/spvpatch/spv"
)

// PatchAddressingModel rewrites the addressing-model operand of the
// OpMemoryModel instruction at memModelOffset in place. A stream already
// declaring PhysicalStorageBuffer64 is left untouched; Logical is rewritten;
// any other value is a fatal inconsistency, since downstream assumptions
// (pointer width, required extensions) depend on starting from Logical.
func PatchAddressingModel(stream []uint32, memModelOffset int) error {
	opIdx := memModelOffset + 1
	if memModelOffset < 0 || opIdx >= len(stream) {
		return spverrors.InvalidData(spverrors.PhasePatch, memModelOffset,
			"memory model declaration out of stream bounds")
	}

	switch spv.AddressingModel(stream[opIdx]) {
	case spv.AddressingPhysicalStorageBuffer64:
		Logger().Debug("addressing model already PhysicalStorageBuffer64",
			zap.Int("offset", opIdx))
		return nil
	case spv.AddressingLogical:
		stream[opIdx] = uint32(spv.AddressingPhysicalStorageBuffer64)
		Logger().Debug("addressing model rewritten",
			zap.Int("offset", opIdx),
			zap.Stringer("from", spv.AddressingLogical),
			zap.Stringer("to", spv.AddressingPhysicalStorageBuffer64))
		return nil
	default:
		return spverrors.UnexpectedAddressingModel(opIdx, stream[opIdx])
	}
}
