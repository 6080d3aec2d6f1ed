// Package codec encodes single symbols and decodes single codes.
//
// EncodeSymbol is the strict, per-byte encoder: letters (either case) and
// digits map to their table codes, everything else is rejected with an
// unsupported error. Message-level filtering lives in the transcoder package.
//
// Three decoders satisfy morse.Decoder and agree on every input:
//
//	MapDecoder     hash map from code to symbol
//	TreeDecoder    complete-binary-tree array, table.TreeIndex
//	OffsetDecoder  biased signed-offset array, table.OffsetIndex
//
// Every decoder rejects the empty string, codes longer than five marks and
// any byte other than '.' or '-' with an invalid code error.
package codec
