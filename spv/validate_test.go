package spv_test

import (
	"errors"
	"testing"

	spverrors "github.com/shadertools/spvpatch/errors"
	"github.com/shadertools/spvpatch/spv"
)

func TestValidateBody(t *testing.T) {
	tests := []struct {
		name    string
		ws      []uint32
		wantErr bool
	}{
		{
			name: "empty stream",
			ws:   nil,
		},
		{
			name: "exact partition",
			ws: concat(
				instr(spv.OpCapability, uint32(spv.CapabilityShader)),
				instr(spv.OpMemoryModel, 0, 1),
				instr(spv.OpFunctionEnd),
			),
		},
		{
			name:    "zero count",
			ws:      []uint32{0},
			wantErr: true,
		},
		{
			name:    "last instruction overruns",
			ws:      append(instr(spv.OpFunctionEnd), uint32(3)<<16|uint32(spv.OpNop)),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := spv.ValidateBody(tt.ws)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBody() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateWords(t *testing.T) {
	a, _ := buildFragmentModule()
	if err := spv.ValidateWords(a.ws); err != nil {
		t.Errorf("valid module rejected: %v", err)
	}

	bad := append([]uint32{}, a.ws...)
	bad[0] = 0xDEADBEEF
	err := spv.ValidateWords(bad)
	if !errors.Is(err, &spverrors.Error{Phase: spverrors.PhaseParse, Kind: spverrors.KindInvalidMagic}) {
		t.Errorf("got %v, want invalid_magic", err)
	}

	if err := spv.ValidateWords(a.ws[:3]); err == nil {
		t.Error("truncated header accepted")
	}
}
