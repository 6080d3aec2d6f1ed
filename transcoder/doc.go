// Package transcoder encodes and decodes whole messages.
//
// A message is a run of words. On the plaintext side words are separated by
// spaces; on the encoded side codes within a word are separated by spaces and
// words are separated by a slash:
//
//	"Hello World"
//	".... . .-.. .-.. --- / .-- --- .-. .-.. -.."
//
// # Encoding Policies
//
// Two layers are kept apart on purpose:
//
//   - EncodeMessage filters first. Surrounding whitespace is trimmed and every
//     byte that is neither a space nor an ASCII letter or digit is dropped.
//     Punctuation never causes an error.
//   - EncodeStrict skips the filter. The first byte that cannot be encoded
//     aborts the message with an unsupported error carrying its offset.
//
// # Decoding
//
// DecodeMessage trims the input, splits it on '/', splits each word on runs of
// whitespace, and decodes every code with the configured morse.Decoder. The
// first invalid code aborts the message with an invalid code error carrying
// the token and its ordinal among all codes. Decoded letters are uppercase.
//
// # Logging
//
// A Transcoder logs dropped characters and rejected input at debug level to
// the zap logger given by WithLogger, or to the package logger otherwise.
package transcoder
