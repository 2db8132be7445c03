package simdwidth

import "testing"

func TestDetectWidthIsSupportedAndStable(t *testing.T) {
	w := DetectWidth()
	switch w {
	case 16, 32, 64:
	default:
		t.Fatalf("DetectWidth() = %d, want one of 16/32/64", w)
	}
	if DetectWidth() != w {
		t.Fatalf("DetectWidth() is not stable across calls")
	}
}

func TestBroadcastWord(t *testing.T) {
	got := BroadcastWord(0x42)
	want := uint64(0x4242424242424242)
	if got != want {
		t.Fatalf("BroadcastWord(0x42) = %#x, want %#x", got, want)
	}
}

func TestLoadWordsRoundTrip(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	words := LoadWords(data, 2)
	if len(words) != 2 {
		t.Fatalf("len(words) = %d, want 2", len(words))
	}
	if words[0] != 0x0807060504030201 {
		t.Fatalf("words[0] = %#x, want %#x", words[0], 0x0807060504030201)
	}
	if words[1] != 0x100f0e0d0c0b0a09 {
		t.Fatalf("words[1] = %#x, want %#x", words[1], 0x100f0e0d0c0b0a09)
	}
}

func TestEqBroadcastBitmask(t *testing.T) {
	data := []byte{0xAA, 0x01, 0xAA, 0x02, 0xAA, 0x03, 0xAA, 0x04}
	words := LoadWords(data, 1)
	mask := EqBroadcastBitmask(words, 0xAA)
	want := uint64(0b01010101)
	if mask != want {
		t.Fatalf("mask = %#b, want %#b", mask, want)
	}
}

func TestEqBitmaskAllLanesEqual(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	words := LoadWords(data, 1)
	mask := EqBitmask(words, words)
	if mask != 0xFF {
		t.Fatalf("mask = %#b, want 0xFF", mask)
	}
}

func TestEqBitmaskNoLanesEqual(t *testing.T) {
	a := LoadWords([]byte{1, 2, 3, 4, 5, 6, 7, 8}, 1)
	b := LoadWords([]byte{9, 9, 9, 9, 9, 9, 9, 9}, 1)
	mask := EqBitmask(a, b)
	if mask != 0 {
		t.Fatalf("mask = %#b, want 0", mask)
	}
}

func TestEqBitmaskMultiWord(t *testing.T) {
	a := LoadWords([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}, 2)
	b := LoadWords([]byte{1, 0, 3, 0, 5, 0, 7, 0, 0, 10, 0, 12, 0, 14, 0, 16}, 2)
	mask := EqBitmask(a, b)
	wantMask := uint64(0)
	wantMask |= 1 << 0  // byte1 eq
	wantMask |= 1 << 2  // byte3 eq
	wantMask |= 1 << 4  // byte5 eq
	wantMask |= 1 << 6  // byte7 eq
	wantMask |= 1 << 9  // byte10 eq
	wantMask |= 1 << 11 // byte12 eq
	wantMask |= 1 << 13 // byte14 eq
	wantMask |= 1 << 15 // byte16 eq
	if mask != wantMask {
		t.Fatalf("mask = %#b, want %#b", mask, wantMask)
	}
}
