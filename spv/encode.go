package spv

import (
	"github.com/shadertools/spvpatch/spv/internal/words"
)

// Encode serializes the module's word stream back to little-endian bytes.
// The stream is written verbatim; no re-validation pass.
func (m *Module) Encode() []byte {
	return words.ToBytes(m.words)
}

// EncodeWords serializes an arbitrary word stream to little-endian bytes.
// Used by the patch pipeline, which hands off a mutated copy rather than
// the module's own stream.
func EncodeWords(ws []uint32) []byte {
	return words.ToBytes(ws)
}
