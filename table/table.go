package table

import (
	"fmt"

	"github.com/wippyai/morse"
)

const (
	// Size is the number of entries in the table
	Size = 36
	// Letters is the number of leading entries that are letters
	Letters = 26
	// MaxMarks is the length of the longest code
	MaxMarks = 5

	// TreeSize is the number of nodes in a complete binary tree of depth MaxMarks
	TreeSize = 1<<(MaxMarks+1) - 1
	// OffsetBias lifts the most negative offset to zero
	OffsetBias = 1<<(MaxMarks+1) - 2
	// OffsetSize covers offsets in [-OffsetBias, OffsetBias]
	OffsetSize = 2*OffsetBias + 1
)

// Symbols lists the table's symbols in table order.
const Symbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var codes = [Size]string{
	".-", "-...", "-.-.", "-..", ".", "..-.", "--.", "....", "..", ".---", "-.-", ".-..", "--",
	"-.", "---", ".--.", "--.-", ".-.", "...", "-", "..-", "...-", ".--", "-..-", "-.--",
	"--..", "-----", ".----", "..---", "...--", "....-", ".....", "-....", "--...", "---..",
	"----.",
}

// Decode arrays. A zero byte marks a slot with no symbol.
var (
	tree    [TreeSize]byte
	offsets [OffsetSize]byte
)

func init() {
	for i, code := range codes {
		ti, ok := TreeIndex(code)
		if !ok || tree[ti] != 0 {
			panic(fmt.Sprintf("table: code %q for %q has no free tree slot", code, Symbols[i]))
		}
		tree[ti] = Symbols[i]

		oi, ok := OffsetIndex(code)
		if !ok || offsets[oi] != 0 {
			panic(fmt.Sprintf("table: code %q for %q has no free offset slot", code, Symbols[i]))
		}
		offsets[oi] = Symbols[i]
	}
}

// Codes returns a copy of the table in table order.
func Codes() [Size]string {
	return codes
}

// Code returns the code at table index i. It panics if i is out of range.
func Code(i int) string {
	return codes[i]
}

// Lookup returns the symbol and code at table index i.
func Lookup(i int) (byte, string) {
	return Symbols[i], codes[i]
}

// TreeIndex computes the complete-binary-tree slot addressed by code.
// It reports false for the empty string, for codes longer than MaxMarks and
// for any byte other than a dot or a dash.
func TreeIndex(code string) (int, bool) {
	if len(code) == 0 || len(code) > MaxMarks {
		return 0, false
	}

	idx := 0
	for i := 0; i < len(code); i++ {
		switch code[i] {
		case morse.Dot:
			idx = idx*2 + 1
		case morse.Dash:
			idx = idx*2 + 2
		default:
			return 0, false
		}
	}
	return idx, true
}

// OffsetIndex computes the biased signed-offset slot addressed by code.
// Rejection rules match TreeIndex.
func OffsetIndex(code string) (int, bool) {
	if len(code) == 0 || len(code) > MaxMarks {
		return 0, false
	}

	offset := 0
	increment := 1 << MaxMarks
	for i := 0; i < len(code); i++ {
		switch code[i] {
		case morse.Dot:
			offset += increment
		case morse.Dash:
			offset -= increment
		default:
			return 0, false
		}
		increment >>= 1
	}
	return offset + OffsetBias, true
}

// TreeAt returns the symbol stored at tree slot idx, or 0 if the slot is empty
// or out of range.
func TreeAt(idx int) byte {
	if idx < 0 || idx >= TreeSize {
		return 0
	}
	return tree[idx]
}

// OffsetAt returns the symbol stored at offset slot idx, or 0 if the slot is
// empty or out of range.
func OffsetAt(idx int) byte {
	if idx < 0 || idx >= OffsetSize {
		return 0
	}
	return offsets[idx]
}
