package codec

import (
	"github.com/wippyai/morse/errors"
	"github.com/wippyai/morse/table"
)

// Encoder is the table-backed morse.Encoder. The zero value is ready to use.
type Encoder struct{}

// EncodeSymbol returns the code for c.
func (Encoder) EncodeSymbol(c byte) (string, error) {
	return EncodeSymbol(c)
}

// EncodeSymbol returns the code for an ASCII letter or digit.
func EncodeSymbol(c byte) (string, error) {
	switch {
	case c >= 'a' && c <= 'z':
		return table.Code(int(c - 'a')), nil
	case c >= 'A' && c <= 'Z':
		return table.Code(int(c - 'A')), nil
	case c >= '0' && c <= '9':
		return table.Code(int(c-'0') + table.Letters), nil
	}
	return "", errors.Unsupported(c)
}

// Encodable reports whether EncodeSymbol accepts c.
func Encodable(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
