package patch_test

import (
	"testing"

	"github.com/shadertools/spvpatch/patch"
	"github.com/shadertools/spvpatch/spv"
)

func TestCursorResolve(t *testing.T) {
	var c patch.Cursor

	if got := c.Resolve(10); got != 10 {
		t.Errorf("fresh cursor Resolve(10) = %d, want 10", got)
	}

	c.Record(8, 9)
	tests := []struct {
		orig, want int
	}{
		{4, 4},   // before the insertion, unshifted
		{8, 17},  // at the insertion point, shifted past it
		{20, 29}, // after it
	}
	for _, tt := range tests {
		if got := c.Resolve(tt.orig); got != tt.want {
			t.Errorf("Resolve(%d) = %d, want %d", tt.orig, got, tt.want)
		}
	}

	c.Record(4, 2)
	if got := c.Resolve(20); got != 31 {
		t.Errorf("Resolve(20) after two insertions = %d, want 31", got)
	}
}

// testStream is a raw stream laid out so the addressing operand sits at
// word 2, the capability section starts at word 4 and the extension
// section's insertion point is the stream end at word 8.
func testStream() []uint32 {
	var ws []uint32
	ws = append(ws, instr(spv.OpNop)...)
	ws = append(ws, instr(spv.OpMemoryModel,
		uint32(spv.AddressingLogical), uint32(spv.MemoryModelGLSL450))...)
	ws = append(ws, instr(spv.OpCapability, uint32(spv.CapabilityShader))...)
	ws = append(ws, instr(spv.OpCapability, uint32(spv.CapabilityInt64))...)
	return ws
}

func TestInjectSequence(t *testing.T) {
	const capsAnchor, extsAnchor = 4, 8

	run := func(t *testing.T, extFirst bool) []uint32 {
		stream := testStream()
		if err := patch.PatchAddressingModel(stream, 1); err != nil {
			t.Fatalf("PatchAddressingModel: %v", err)
		}

		var c patch.Cursor
		var err error
		if extFirst {
			stream, err = patch.InjectExtension(stream, &c, extsAnchor, spv.ExtPhysicalStorageBuffer)
			if err == nil {
				stream, err = patch.InjectCapability(stream, &c, capsAnchor,
					spv.CapabilityPhysicalStorageBufferAddresses)
			}
		} else {
			stream, err = patch.InjectCapability(stream, &c, capsAnchor,
				spv.CapabilityPhysicalStorageBufferAddresses)
			if err == nil {
				stream, err = patch.InjectExtension(stream, &c, extsAnchor, spv.ExtPhysicalStorageBuffer)
			}
		}
		if err != nil {
			t.Fatalf("injection: %v", err)
		}
		return stream
	}

	check := func(t *testing.T, out []uint32) {
		capLen := 2
		extLen := 1 + len(spv.PackString(spv.ExtPhysicalStorageBuffer))

		if want := 8 + capLen + extLen; len(out) != want {
			t.Fatalf("stream length = %d, want %d", len(out), want)
		}
		if out[2] != uint32(spv.AddressingPhysicalStorageBuffer64) {
			t.Errorf("word 2 = %d, want %d", out[2], spv.AddressingPhysicalStorageBuffer64)
		}

		if want := uint32(capLen)<<16 | uint32(spv.OpCapability); out[capsAnchor] != want {
			t.Errorf("word %d = 0x%08X, want capability header 0x%08X", capsAnchor, out[capsAnchor], want)
		}
		if out[capsAnchor+1] != uint32(spv.CapabilityPhysicalStorageBufferAddresses) {
			t.Errorf("capability operand = %d, want %d",
				out[capsAnchor+1], spv.CapabilityPhysicalStorageBufferAddresses)
		}

		// The extension lands at its anchor shifted by the capability width.
		extAt := extsAnchor + capLen
		if want := uint32(extLen)<<16 | uint32(spv.OpExtension); out[extAt] != want {
			t.Errorf("word %d = 0x%08X, want extension header 0x%08X", extAt, out[extAt], want)
		}
		name, _, ok := spv.UnpackString(out[extAt+1:])
		if !ok || name != spv.ExtPhysicalStorageBuffer {
			t.Errorf("extension name = %q, want %q", name, spv.ExtPhysicalStorageBuffer)
		}

		if err := spv.ValidateBody(out); err != nil {
			t.Errorf("stream no longer partitions into instructions: %v", err)
		}
	}

	t.Run("extension then capability", func(t *testing.T) {
		check(t, run(t, true))
	})

	// The cursor makes the result independent of insertion order.
	t.Run("capability then extension", func(t *testing.T) {
		check(t, run(t, false))
	})
}
