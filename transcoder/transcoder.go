package transcoder

import (
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/morse"
	"github.com/wippyai/morse/codec"
	"github.com/wippyai/morse/errors"
)

// Transcoder encodes and decodes whole messages. It holds no mutable state
// and is safe for concurrent use.
type Transcoder struct {
	decoder morse.Decoder
	encoder morse.Encoder
	logger  *zap.Logger
}

// Option configures a Transcoder
type Option func(*Transcoder)

// WithDecoder sets the decode strategy. The default is codec.TreeDecoder.
func WithDecoder(d morse.Decoder) Option {
	return func(t *Transcoder) {
		if d != nil {
			t.decoder = d
		}
	}
}

// WithEncoder sets the symbol encoder. The default is codec.Encoder.
func WithEncoder(e morse.Encoder) Option {
	return func(t *Transcoder) {
		if e != nil {
			t.encoder = e
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *zap.Logger) Option {
	return func(t *Transcoder) {
		t.logger = l
	}
}

// New creates a Transcoder.
func New(opts ...Option) *Transcoder {
	t := &Transcoder{
		decoder: codec.TreeDecoder{},
		encoder: codec.Encoder{},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Transcoder) log() *zap.Logger {
	if t.logger != nil {
		return t.logger
	}
	return Logger()
}

// Filter trims surrounding whitespace and keeps only spaces and ASCII letters
// and digits. Spaces left at either end by dropped bytes are trimmed too, so
// "! a" filters to "a" instead of failing later on a leading space.
func Filter(text string) string {
	out, _ := filter(text)
	return out
}

func filter(text string) (string, int) {
	text = strings.TrimSpace(text)

	bufp := getBuf()
	defer putBuf(bufp)
	buf := *bufp

	dropped := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == ' ' || codec.Encodable(c) {
			buf = append(buf, c)
			continue
		}
		dropped++
	}
	*bufp = buf

	if dropped == 0 {
		return text, 0
	}
	return strings.Trim(string(buf), " "), dropped
}

// EncodeMessage filters text and encodes what remains.
func (t *Transcoder) EncodeMessage(text string) (string, error) {
	msg, dropped := filter(text)
	if dropped > 0 {
		t.log().Debug("dropped unencodable characters",
			zap.Int("count", dropped),
			zap.Int("input_len", len(text)))
	}
	return t.encode(msg)
}

// EncodeStrict trims surrounding whitespace and encodes text without filtering.
// Any byte other than a space, ASCII letter or digit fails the whole message.
func (t *Transcoder) EncodeStrict(text string) (string, error) {
	return t.encode(strings.TrimSpace(text))
}

func (t *Transcoder) encode(msg string) (string, error) {
	bufp := getBuf()
	defer putBuf(bufp)
	buf := *bufp

	for i := 0; i < len(msg); i++ {
		c := msg[i]
		if c == ' ' && i > 0 {
			buf = append(buf, ' ', morse.WordSeparator)
			continue
		}

		code, err := t.encoder.EncodeSymbol(c)
		if err != nil {
			t.log().Debug("encode failed",
				zap.Int("position", i),
				zap.Error(err))
			return "", positioned(errors.PhaseEncode, errors.KindUnsupported, err, i)
		}
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, code...)
	}
	*bufp = buf

	return string(buf), nil
}

// DecodeMessage decodes a slash-separated, space-delimited code message.
func (t *Transcoder) DecodeMessage(text string) (string, error) {
	text = strings.TrimSpace(text)

	bufp := getBuf()
	defer putBuf(bufp)
	buf := *bufp

	pos := 0
	first := true
	for word := range strings.SplitSeq(text, string(morse.WordSeparator)) {
		if !first {
			buf = append(buf, ' ')
		}
		first = false

		for code := range strings.FieldsSeq(word) {
			sym, err := t.decoder.DecodeCode(code)
			if err != nil {
				t.log().Debug("decode failed",
					zap.String("token", code),
					zap.Int("position", pos))
				return "", positioned(errors.PhaseDecode, errors.KindInvalidCode, err, pos)
			}
			buf = append(buf, sym)
			pos++
		}
	}
	*bufp = buf

	return string(buf), nil
}

func positioned(phase errors.Phase, kind errors.Kind, err error, pos int) error {
	if e, ok := errors.As(err); ok {
		return e.At(pos)
	}
	return errors.New(phase, kind).Position(pos).Cause(err).Build()
}

var defaultTranscoder = sync.OnceValue(func() *Transcoder { return New() })

// Default returns the shared Transcoder used by the package-level functions.
func Default() *Transcoder {
	return defaultTranscoder()
}

// EncodeMessage filters text and encodes it with the default Transcoder.
func EncodeMessage(text string) (string, error) {
	return Default().EncodeMessage(text)
}

// EncodeStrict encodes text without filtering using the default Transcoder.
func EncodeStrict(text string) (string, error) {
	return Default().EncodeStrict(text)
}

// DecodeMessage decodes text with the default Transcoder.
func DecodeMessage(text string) (string, error) {
	return Default().DecodeMessage(text)
}
