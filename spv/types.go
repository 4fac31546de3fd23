package spv

// Header holds the five fixed words at the start of every module.
type Header struct {
	Version   uint32
	Generator uint32
	Bound     uint32
	Schema    uint32
}

// VersionMajor extracts the major version from the packed version word.
func (h Header) VersionMajor() uint8 { return uint8(h.Version >> 16) }

// VersionMinor extracts the minor version from the packed version word.
func (h Header) VersionMinor() uint8 { return uint8(h.Version >> 8) }

// SectionOffsets records the word offset at which each structural section
// begins. Sections appear in a fixed canonical order; an offset for an empty
// section is the position where its first instruction would be inserted.
// Offsets are -1 only for sections that never occur and have no defined
// insertion point (MemoryModel in a malformed module).
type SectionOffsets struct {
	Capabilities   int
	Extensions     int
	ExtInstImports int
	MemoryModel    int
	EntryPoints    int
	DebugNames     int
	Annotations    int
	Types          int
	Functions      int
}

// LineMarker associates a source line with the function whose body encloses
// the annotation. Function is 0 for markers outside any function body.
type LineMarker struct {
	Line     uint32
	Column   uint32
	Function uint32
}

// Source is one debug source file: the OpString ID naming it and its line
// markers in stream order. Markers are non-decreasing by line within a file
// for compiler-emitted modules; the locator relies on that order.
type Source struct {
	File    uint32
	Name    string
	Markers []LineMarker
}

// Function records a function definition and the function-scoped variables
// declared in its body, in declaration order.
type Function struct {
	ID     uint32
	Locals []uint32
}

// Module is the parsed, read-only view of a SPIR-V binary. The word stream
// is owned by the module; patch operations work on a clone and never touch
// the original.
type Module struct {
	words        []uint32
	names        map[uint32]string
	funcIndex    map[uint32]int
	sourceIndex  map[uint32]int // OpString ID -> sources index
	sources      []Source
	functions    []Function
	capabilities []Capability
	extensions   []string

	Header   Header
	Sections SectionOffsets
}

// Words returns the module's word stream. The slice is shared; callers that
// mutate must work on CloneWords.
func (m *Module) Words() []uint32 {
	return m.words
}

// CloneWords returns an independent copy of the word stream.
func (m *Module) CloneWords() []uint32 {
	cp := make([]uint32, len(m.words))
	copy(cp, m.words)
	return cp
}

// Name resolves an ID to its OpName debug name, or "" when unnamed.
func (m *Module) Name(id uint32) string {
	return m.names[id]
}

// Capabilities returns the declared capabilities in stream order.
func (m *Module) Capabilities() []Capability {
	return m.capabilities
}

// Extensions returns the declared extension names in stream order.
func (m *Module) Extensions() []string {
	return m.extensions
}

// HasCapability reports whether the capability is already declared.
func (m *Module) HasCapability(c Capability) bool {
	for _, have := range m.capabilities {
		if have == c {
			return true
		}
	}
	return false
}

// HasExtension reports whether the extension is already declared.
func (m *Module) HasExtension(name string) bool {
	for _, have := range m.extensions {
		if have == name {
			return true
		}
	}
	return false
}

// NumSources returns the number of debug source files.
func (m *Module) NumSources() int {
	return len(m.sources)
}

// SourceAt returns the debug source file at the given index.
func (m *Module) SourceAt(i int) (*Source, bool) {
	if i < 0 || i >= len(m.sources) {
		return nil, false
	}
	return &m.sources[i], true
}

// Functions returns all function records in stream order.
func (m *Module) Functions() []Function {
	return m.functions
}

// FunctionByID returns the function record with the given result ID.
func (m *Module) FunctionByID(id uint32) (*Function, bool) {
	i, ok := m.funcIndex[id]
	if !ok {
		return nil, false
	}
	return &m.functions[i], true
}

// AddressingModel returns the declared addressing model.
func (m *Module) AddressingModel() AddressingModel {
	off := m.Sections.MemoryModel
	if off < 0 || off+1 >= len(m.words) {
		return AddressingLogical
	}
	return AddressingModel(m.words[off+1])
}

// MemoryModel returns the declared memory model.
func (m *Module) MemoryModel() MemoryModel {
	off := m.Sections.MemoryModel
	if off < 0 || off+2 >= len(m.words) {
		return MemoryModelSimple
	}
	return MemoryModel(m.words[off+2])
}
