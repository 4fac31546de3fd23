package patch_test

import (
	"errors"
	"testing"

	spverrors "github.com/shadertools/spvpatch/errors"
	"github.com/shadertools/spvpatch/patch"
)

func TestLocate(t *testing.T) {
	m := buildModule(t) // file 0 markers: 5, 5, 10, 20

	tests := []struct {
		name     string
		line     uint32
		wantLine uint32
		exact    bool
	}{
		{"exact hit", 20, 20, true},
		{"between markers", 7, 10, false},
		{"before first marker", 0, 5, false},
		{"duplicate lines pick first", 5, 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := patch.Locate(m, 0, tt.line)
			if err != nil {
				t.Fatalf("Locate: %v", err)
			}
			if loc.Marker.Line != tt.wantLine {
				t.Errorf("marker line = %d, want %d", loc.Marker.Line, tt.wantLine)
			}
			if loc.Exact != tt.exact {
				t.Errorf("exact = %v, want %v", loc.Exact, tt.exact)
			}
			if loc.Line != tt.line {
				t.Errorf("requested line = %d, want %d", loc.Line, tt.line)
			}
			if loc.FunctionName != "main" || loc.FunctionID != 4 {
				t.Errorf("function = %q (%%%d), want main (%%4)", loc.FunctionName, loc.FunctionID)
			}
			if len(loc.Locals) != 2 {
				t.Fatalf("locals = %+v, want 2 entries", loc.Locals)
			}
			if loc.Locals[0].Name != "tmp" || loc.Locals[1].Name != "%9" {
				t.Errorf("local names = %q, %q; want tmp, %%9", loc.Locals[0].Name, loc.Locals[1].Name)
			}
		})
	}
}

func TestLocateErrors(t *testing.T) {
	m := buildModule(t)

	tests := []struct {
		name    string
		fileIdx int
		line    uint32
		want    spverrors.Kind
	}{
		{"line past last marker", 0, 25, spverrors.KindNotFound},
		{"marker outside any function", 1, 30, spverrors.KindNoFunction},
		{"file index too large", 2, 1, spverrors.KindOutOfRange},
		{"negative file index", -1, 1, spverrors.KindOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := patch.Locate(m, tt.fileIdx, tt.line)
			if !errors.Is(err, &spverrors.Error{Phase: spverrors.PhaseLocate, Kind: tt.want}) {
				t.Errorf("got %v, want kind %s", err, tt.want)
			}
		})
	}
}
