package words

import (
	"errors"
	"io"
	"testing"
)

func TestFromBytesRoundTrip(t *testing.T) {
	data := []byte{0x03, 0x02, 0x23, 0x07, 0xef, 0xbe, 0xad, 0xde}
	ws, err := FromBytes(data)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if ws[0] != 0x07230203 || ws[1] != 0xdeadbeef {
		t.Errorf("words = %08x", ws)
	}

	back := ToBytes(ws)
	for i := range data {
		if back[i] != data[i] {
			t.Fatalf("byte %d: got %02x, want %02x", i, back[i], data[i])
		}
	}
}

func TestFromBytesMisaligned(t *testing.T) {
	if _, err := FromBytes(make([]byte, 7)); !errors.Is(err, ErrMisaligned) {
		t.Errorf("got %v, want ErrMisaligned", err)
	}
}

func TestPackString(t *testing.T) {
	tests := []struct {
		s     string
		words int
	}{
		{"", 1},
		{"a", 1},
		{"abc", 1},
		{"abcd", 2}, // boundary: terminator needs a fresh word
		{"abcde", 2},
		{"SPV_KHR_physical_storage_buffer", 8},
	}

	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			ws := PackString(tt.s)
			if len(ws) != tt.words {
				t.Errorf("PackString(%q) = %d words, want %d", tt.s, len(ws), tt.words)
			}
			want := (len(tt.s) + 1 + 3) / 4
			if len(ws) != want {
				t.Errorf("PackString(%q) = %d words, want ceil((L+1)/4) = %d", tt.s, len(ws), want)
			}

			got, n, ok := UnpackString(ws)
			if !ok {
				t.Fatalf("UnpackString(%v): no terminator", ws)
			}
			if got != tt.s || n != len(ws) {
				t.Errorf("UnpackString = %q (%d words), want %q (%d words)", got, n, tt.s, len(ws))
			}
		})
	}
}

func TestUnpackStringMissingTerminator(t *testing.T) {
	// "abcd" without the trailing zero word
	ws := PackString("abcd")[:1]
	s, n, ok := UnpackString(ws)
	if ok {
		t.Fatal("expected ok=false without terminator")
	}
	if s != "abcd" || n != 1 {
		t.Errorf("got %q, %d", s, n)
	}
}

func TestReader(t *testing.T) {
	ws := []uint32{10, 20, 30, 40}
	r := NewReader(ws, 0)

	if err := r.Skip(1); err != nil {
		t.Fatalf("Skip: %v", err)
	}
	if r.Position() != 1 || r.Remaining() != 3 {
		t.Fatalf("pos=%d remaining=%d", r.Position(), r.Remaining())
	}

	w, err := r.ReadWord()
	if err != nil || w != 20 {
		t.Fatalf("ReadWord = %d, %v", w, err)
	}

	span, err := r.ReadWords(2)
	if err != nil || span[0] != 30 || span[1] != 40 {
		t.Fatalf("ReadWords = %v, %v", span, err)
	}

	if _, err := r.ReadWord(); !errors.Is(err, io.EOF) {
		t.Errorf("at end: got %v, want io.EOF", err)
	}
	if _, err := r.ReadWords(1); err == nil {
		t.Error("ReadWords past end: expected error")
	}
}
