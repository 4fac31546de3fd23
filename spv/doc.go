// Package spv provides SPIR-V binary container parsing, encoding, and
// instruction-level editing.
//
// SPIR-V serializes as a flat stream of 32-bit little-endian words: a
// five-word header followed by instructions. Each instruction starts with a
// header word whose low 16 bits are the opcode and whose high 16 bits are
// the instruction's total word count, header word included. The stream is
// self-describing: walking word counts partitions it exactly into
// instructions, and any edit must preserve that partition.
//
// # Parsing
//
// Parse a SPIR-V module from binary:
//
//	data, _ := os.ReadFile("shader.spv")
//	module, err := spv.Decode(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// A parsed module exposes the facts the patcher needs: section start
// offsets (module.Sections), the OpName table (module.Name), debug source
// files with their OpLine markers (module.SourceAt), and function records
// with their function-scoped variables (module.FunctionByID).
//
// # Editing
//
// Builder assembles one instruction and splices it into a word stream:
//
//	b := spv.NewBuilder(spv.OpExtension).PushString("SPV_KHR_physical_storage_buffer")
//	patched, err := b.InsertAt(module.CloneWords(), module.Sections.Extensions)
//
// Every insertion shifts all later word offsets; callers holding several
// anchors must adjust them for earlier insertions (see package patch).
//
// # Validation
//
// ValidateWords checks that a stream still partitions exactly into
// instructions after an edit:
//
//	if err := spv.ValidateWords(patched); err != nil {
//	    log.Fatal(err)
//	}
package spv
