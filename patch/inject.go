package patch

import (
	"go.uber.org/zap"

	"github.com/shadertools/spvpatch/spv"
)

// Cursor adjusts section anchors for insertions already applied to a
// stream. Anchors are word offsets in the original numbering; each applied
// insertion is recorded, and Resolve adds the widths of all insertions
// landing at or before an anchor. Without this adjustment a second insert
// at a previously captured offset lands inside the wrong instruction.
type Cursor struct {
	inserted []span
}

type span struct {
	at int // original offset the insertion targeted
	n  int // words inserted
}

// Resolve maps an anchor from the original numbering to the current stream.
func (c *Cursor) Resolve(orig int) int {
	off := orig
	for _, s := range c.inserted {
		if s.at <= orig {
			off += s.n
		}
	}
	return off
}

// Record notes an insertion of n words at the given original offset.
func (c *Cursor) Record(orig, n int) {
	c.inserted = append(c.inserted, span{at: orig, n: n})
}

// InjectExtension inserts an OpExtension instruction carrying name at the
// extension-section anchor, adjusted through the cursor.
func InjectExtension(stream []uint32, c *Cursor, anchor int, name string) ([]uint32, error) {
	b := spv.NewBuilder(spv.OpExtension).PushString(name)
	n := b.Len()
	off := c.Resolve(anchor)

	out, err := b.InsertAt(stream, off)
	if err != nil {
		return nil, err
	}
	c.Record(anchor, n)

	Logger().Debug("extension inserted",
		zap.String("name", name),
		zap.Int("offset", off),
		zap.Int("words", n))
	return out, nil
}

// InjectCapability inserts an OpCapability instruction carrying cap at the
// capability-section anchor, adjusted through the cursor.
func InjectCapability(stream []uint32, c *Cursor, anchor int, cap spv.Capability) ([]uint32, error) {
	b := spv.NewBuilder(spv.OpCapability).PushWord(uint32(cap))
	n := b.Len()
	off := c.Resolve(anchor)

	out, err := b.InsertAt(stream, off)
	if err != nil {
		return nil, err
	}
	c.Record(anchor, n)

	Logger().Debug("capability inserted",
		zap.Stringer("capability", cap),
		zap.Int("offset", off),
		zap.Int("words", n))
	return out, nil
}
