package patch

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	spverrors "github.com/shadertools/spvpatch/errors"
	"github.com/shadertools/spvpatch/spv"
)

// Local is one function-scoped variable with its resolved display name.
// Unnamed variables render as %N in SPIR-V assembly convention.
type Local struct {
	ID   uint32
	Name string
}

// Location is the result of resolving a (file, line) coordinate against
// the module's debug line table.
type Location struct {
	FileIndex    int
	Line         uint32 // the line that was asked for
	Marker       spv.LineMarker
	Exact        bool // Marker.Line == Line
	FunctionID   uint32
	FunctionName string
	Locals       []Local
}

// Locate finds the first line marker in the given file whose line is not
// less than the target line (lower-bound semantics), then resolves the
// marker's enclosing function and enumerates its declared local variables.
// An inexact hit is returned with Exact=false; callers decide whether a
// nearest-following match is acceptable.
func Locate(m *spv.Module, fileIdx int, line uint32) (*Location, error) {
	src, ok := m.SourceAt(fileIdx)
	if !ok {
		return nil, spverrors.FileIndexOutOfRange(fileIdx, m.NumSources())
	}

	markers := src.Markers
	i := sort.Search(len(markers), func(i int) bool {
		return markers[i].Line >= line
	})
	if i == len(markers) {
		return nil, spverrors.LineNotFound(fileIdx, line)
	}

	marker := markers[i]
	exact := marker.Line == line
	if !exact {
		Logger().Warn("no exact line match",
			zap.Uint32("requested", line),
			zap.Uint32("nearest", marker.Line),
			zap.Int("file", fileIdx))
	}

	if marker.Function == 0 {
		return nil, spverrors.NoEnclosingFunction(marker.Line)
	}
	fn, ok := m.FunctionByID(marker.Function)
	if !ok {
		return nil, spverrors.NoEnclosingFunction(marker.Line)
	}

	loc := &Location{
		FileIndex:    fileIdx,
		Line:         line,
		Marker:       marker,
		Exact:        exact,
		FunctionID:   fn.ID,
		FunctionName: displayName(m, fn.ID),
		Locals:       make([]Local, 0, len(fn.Locals)),
	}
	for _, id := range fn.Locals {
		loc.Locals = append(loc.Locals, Local{ID: id, Name: displayName(m, id)})
	}
	return loc, nil
}

func displayName(m *spv.Module, id uint32) string {
	if name := m.Name(id); name != "" {
		return name
	}
	return fmt.Sprintf("%%%d", id)
}
