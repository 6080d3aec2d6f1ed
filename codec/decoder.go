package codec

import (
	"sync"

	"github.com/wippyai/morse/errors"
	"github.com/wippyai/morse/table"
)

// TreeDecoder looks codes up in the complete-binary-tree array.
// The zero value is ready to use.
type TreeDecoder struct{}

// DecodeCode returns the symbol for code.
func (TreeDecoder) DecodeCode(code string) (byte, error) {
	idx, ok := table.TreeIndex(code)
	if !ok {
		return 0, errors.InvalidCode(code)
	}
	if sym := table.TreeAt(idx); sym != 0 {
		return sym, nil
	}
	return 0, errors.InvalidCode(code)
}

// OffsetDecoder looks codes up in the biased signed-offset array.
// The zero value is ready to use.
type OffsetDecoder struct{}

// DecodeCode returns the symbol for code.
func (OffsetDecoder) DecodeCode(code string) (byte, error) {
	idx, ok := table.OffsetIndex(code)
	if !ok {
		return 0, errors.InvalidCode(code)
	}
	if sym := table.OffsetAt(idx); sym != 0 {
		return sym, nil
	}
	return 0, errors.InvalidCode(code)
}

// MapDecoder looks codes up in a map built from the table.
type MapDecoder struct {
	symbols map[string]byte
}

// NewMapDecoder builds the inverse of the code table.
func NewMapDecoder() *MapDecoder {
	m := make(map[string]byte, table.Size)
	for i := 0; i < table.Size; i++ {
		sym, code := table.Lookup(i)
		m[code] = sym
	}
	return &MapDecoder{symbols: m}
}

var sharedMap = sync.OnceValue(NewMapDecoder)

// SharedMapDecoder returns a process-wide MapDecoder built on first use.
func SharedMapDecoder() *MapDecoder {
	return sharedMap()
}

// DecodeCode returns the symbol for code.
func (d *MapDecoder) DecodeCode(code string) (byte, error) {
	if sym, ok := d.symbols[code]; ok {
		return sym, nil
	}
	return 0, errors.InvalidCode(code)
}

// DecodeCode decodes code with the default tree strategy.
func DecodeCode(code string) (byte, error) {
	return TreeDecoder{}.DecodeCode(code)
}
