// Package morse converts plaintext to and from dot/dash signal encoding.
//
// Plaintext is limited to the letters A-Z (case-insensitive), the digits 0-9
// and the space. Each letter or digit maps to a fixed code of one to five marks;
// words are separated by a slash in the encoded form.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	morse/               Root package with the Symbol, Code, Encoder and Decoder types
//	├── table/           The 36-entry code table and the flat arrays derived from it
//	├── codec/           Single-symbol encoding and the decode strategies
//	├── transcoder/      Whole-message encoding and decoding
//	├── config/          HCL configuration for the command line tool
//	├── errors/          Structured error types
//	└── cmd/morse/       Command line tool and interactive mode
//
// # Quick Start
//
//	out, err := transcoder.EncodeMessage("Hello World")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(out) // ".... . .-.. .-.. --- / .-- --- .-. .-.. -.."
//
//	text, err := transcoder.DecodeMessage(out)
//	fmt.Println(text) // "HELLO WORLD"
//
// # Decode Strategies
//
// Three interchangeable decoders are provided by the codec package:
//
//   - map: a hash map from code to symbol, built once
//   - tree: a 63-slot array addressed as a complete binary tree
//     (dot = left child 2i+1, dash = right child 2i+2); the default
//   - offset: a 125-slot array addressed by a signed binary offset
//
// All three accept exactly the 36 table codes and reject everything else.
//
// # Thread Safety
//
// The code table and every decoder are read-only after construction and
// safe for concurrent use. A Transcoder holds no mutable state.
package morse
