package spv

import (
	spverrors "github.com/shadertools/spvpatch/errors"
	"github.com/shadertools/spvpatch/spv/internal/words"
)

// Decode parses a SPIR-V binary into a Module. The binary must be a whole
// number of 32-bit words, little-endian, starting with the SPIR-V magic.
// Decoding walks every instruction once, so a malformed word count or an
// instruction overrunning the stream is reported with its word offset.
func Decode(data []byte) (*Module, error) {
	if len(data)%words.WordSize != 0 {
		return nil, spverrors.Misaligned(len(data))
	}
	ws, err := words.FromBytes(data)
	if err != nil {
		return nil, spverrors.Misaligned(len(data))
	}
	return DecodeWords(ws)
}

// DecodeWords parses an already word-converted SPIR-V stream.
func DecodeWords(ws []uint32) (*Module, error) {
	if len(ws) < HeaderWords {
		return nil, spverrors.InvalidData(spverrors.PhaseParse, 0, "truncated header")
	}
	if ws[0] != Magic {
		return nil, spverrors.InvalidMagic(ws[0])
	}

	m := &Module{
		words:       ws,
		names:       make(map[uint32]string),
		funcIndex:   make(map[uint32]int),
		sourceIndex: make(map[uint32]int),
		Header: Header{
			Version:   ws[1],
			Generator: ws[2],
			Bound:     ws[3],
			Schema:    ws[4],
		},
		Sections: SectionOffsets{
			Capabilities:   -1,
			Extensions:     -1,
			ExtInstImports: -1,
			MemoryModel:    -1,
			EntryPoints:    -1,
			DebugNames:     -1,
			Annotations:    -1,
			Types:          -1,
			Functions:      -1,
		},
	}

	// Offset just past the leading capability run: the insertion point for
	// the extension section when the module declares none.
	capsEnd := HeaderWords
	leading := true

	var current *Function

	r := words.NewReader(ws, HeaderWords)
	for r.Remaining() > 0 {
		off := r.Position()
		header, err := r.ReadWord()
		if err != nil {
			return nil, spverrors.InvalidData(spverrors.PhaseParse, off, "truncated instruction header")
		}
		op := Opcode(header & 0xFFFF)
		count := int(header >> 16)

		if count == 0 {
			return nil, spverrors.InvalidData(spverrors.PhaseParse, off, "zero instruction word count")
		}
		operands, err := r.ReadWords(count - 1)
		if err != nil {
			return nil, spverrors.New(spverrors.PhaseParse, spverrors.KindInvalidData).
				Offset(off).
				Detail("instruction of %d words overruns stream of %d", count, len(ws)).
				Build()
		}

		if leading && op == OpCapability {
			capsEnd = off + count
		} else {
			leading = false
		}

		switch op {
		case OpCapability:
			firstAt(&m.Sections.Capabilities, off)
			if len(operands) >= 1 {
				m.capabilities = append(m.capabilities, Capability(operands[0]))
			}

		case OpExtension:
			firstAt(&m.Sections.Extensions, off)
			if name, _, ok := words.UnpackString(operands); ok {
				m.extensions = append(m.extensions, name)
			}

		case OpExtInstImport:
			firstAt(&m.Sections.ExtInstImports, off)

		case OpMemoryModel:
			if len(operands) < 2 {
				return nil, spverrors.InvalidData(spverrors.PhaseParse, off, "OpMemoryModel missing operands")
			}
			firstAt(&m.Sections.MemoryModel, off)

		case OpEntryPoint:
			firstAt(&m.Sections.EntryPoints, off)

		case OpString:
			if len(operands) >= 2 {
				name, _, _ := words.UnpackString(operands[1:])
				m.sourceIndex[operands[0]] = len(m.sources)
				m.sources = append(m.sources, Source{File: operands[0], Name: name})
			}

		case OpName:
			firstAt(&m.Sections.DebugNames, off)
			if len(operands) >= 2 {
				if name, _, ok := words.UnpackString(operands[1:]); ok {
					m.names[operands[0]] = name
				}
			}

		case OpMemberName:
			firstAt(&m.Sections.DebugNames, off)

		case OpDecorate, OpMemberDecorate:
			firstAt(&m.Sections.Annotations, off)

		case OpTypeVoid, OpTypeBool, OpTypeInt, OpTypeFloat, OpTypeVector,
			OpTypeMatrix, OpTypeImage, OpTypeSampler, OpTypeSampledImage,
			OpTypeArray, OpTypeRuntimeArray, OpTypeStruct, OpTypePointer,
			OpTypeFunction, OpConstantTrue, OpConstantFalse, OpConstant,
			OpConstantComposite, OpConstantNull:
			firstAt(&m.Sections.Types, off)

		case OpFunction:
			firstAt(&m.Sections.Functions, off)
			if len(operands) < 4 {
				return nil, spverrors.InvalidData(spverrors.PhaseParse, off, "OpFunction missing operands")
			}
			m.funcIndex[operands[1]] = len(m.functions)
			m.functions = append(m.functions, Function{ID: operands[1]})
			current = &m.functions[len(m.functions)-1]

		case OpFunctionEnd:
			current = nil

		case OpVariable:
			if current != nil {
				if len(operands) >= 3 && StorageClass(operands[2]) == StorageFunction {
					current.Locals = append(current.Locals, operands[1])
				}
			} else {
				firstAt(&m.Sections.Types, off)
			}

		case OpLine:
			if len(operands) >= 3 {
				m.addLineMarker(operands[0], operands[1], operands[2], current)
			}
		}
	}

	if m.Sections.Capabilities < 0 {
		m.Sections.Capabilities = HeaderWords
	}
	if m.Sections.Extensions < 0 {
		m.Sections.Extensions = capsEnd
	}

	return m, nil
}

func (m *Module) addLineMarker(fileID, line, column uint32, current *Function) {
	idx, ok := m.sourceIndex[fileID]
	if !ok {
		// OpLine referencing an OpString that appears later in the stream,
		// or a stripped string table. Track the file anyway.
		idx = len(m.sources)
		m.sourceIndex[fileID] = idx
		m.sources = append(m.sources, Source{File: fileID})
	}
	marker := LineMarker{Line: line, Column: column}
	if current != nil {
		marker.Function = current.ID
	}
	m.sources[idx].Markers = append(m.sources[idx].Markers, marker)
}

// firstAt records the first occurrence of a section.
func firstAt(slot *int, off int) {
	if *slot < 0 {
		*slot = off
	}
}
