package morse

// Symbol is one transcodable character: an uppercase letter A-Z or a digit 0-9.
type Symbol = byte

// Code is a sequence of 1 to 5 marks, each a dot '.' or a dash '-'.
type Code = string

// Marks
const (
	Dot  byte = '.'
	Dash byte = '-'
)

// WordSeparator delimits words in an encoded message.
const WordSeparator byte = '/'

// Encoder maps a single plaintext byte to its code
type Encoder interface {
	EncodeSymbol(c byte) (Code, error)
}

// Decoder maps a single code back to its symbol
type Decoder interface {
	DecodeCode(code string) (Symbol, error)
}
