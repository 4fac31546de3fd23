package patch

import (
	"go.uber.org/zap"

	spverrors "github.com/shadertools/spvpatch/errors"
	"github.com/shadertools/spvpatch/spv"
)

// Options selects the source coordinate the pipeline resolves after the
// structural edits.
type Options struct {
	FileIndex int
	Line      uint32
}

// Result is the outcome of a successful patch operation: the mutated word
// stream and the resolved source location (diagnostic, never mutating).
type Result struct {
	Words    []uint32
	Location *Location
}

// Apply runs the patch pipeline over a clone of the module's word stream:
// addressing-model rewrite, extension and capability insertion, then
// source-location resolution. Any failure aborts the whole operation; the
// module itself is never mutated, so there is nothing to roll back.
func Apply(m *spv.Module, opts Options) (*Result, error) {
	log := Logger()

	secs := m.Sections
	if secs.MemoryModel < 0 {
		return nil, spverrors.InvalidData(spverrors.PhasePatch, 0,
			"module has no memory model declaration")
	}

	stream := m.CloneWords()

	if err := PatchAddressingModel(stream, secs.MemoryModel); err != nil {
		return nil, err
	}

	// Insertions do not deduplicate: duplicate declarations are legal in
	// the container format, and the reference behavior inserts blindly.
	if m.HasExtension(spv.ExtPhysicalStorageBuffer) {
		log.Debug("extension already declared, inserting duplicate",
			zap.String("name", spv.ExtPhysicalStorageBuffer))
	}
	if m.HasCapability(spv.CapabilityPhysicalStorageBufferAddresses) {
		log.Debug("capability already declared, inserting duplicate",
			zap.Stringer("capability", spv.CapabilityPhysicalStorageBufferAddresses))
	}

	var cur Cursor
	stream, err := InjectExtension(stream, &cur, secs.Extensions, spv.ExtPhysicalStorageBuffer)
	if err != nil {
		return nil, err
	}
	stream, err = InjectCapability(stream, &cur, secs.Capabilities,
		spv.CapabilityPhysicalStorageBufferAddresses)
	if err != nil {
		return nil, err
	}

	loc, err := Locate(m, opts.FileIndex, opts.Line)
	if err != nil {
		return nil, err
	}
	log.Info("patched",
		zap.Int("words", len(stream)),
		zap.String("function", loc.FunctionName),
		zap.Int("locals", len(loc.Locals)))

	return &Result{Words: stream, Location: loc}, nil
}
