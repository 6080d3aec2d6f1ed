// Package table holds the fixed code table and the lookup arrays derived from it.
//
// The table has 36 entries: indices 0-25 are the letters A-Z and indices 26-35
// are the digits 0-9. It is the single source of truth for both directions;
// the decode arrays are filled from it once, at package initialization.
//
// # Tree Addressing
//
// A code is a path in a binary tree where a dot descends left and a dash
// descends right. Stored as a complete binary tree in an array (root 0, left
// child 2i+1, right child 2i+2), every path of up to five marks lands on a
// distinct slot in [0, 62]:
//
//	""      → 0
//	"."     → 1        "-"     → 2
//	".."    → 3        ".-"    → 4       "-."   → 5      "--"  → 6
//	"-----" → 62
//
// # Offset Addressing
//
// The alternative scheme weighs the i-th mark by 32>>i, adding for a dot and
// subtracting for a dash, then adds OffsetBias so the result is non-negative.
// The lowest set weight identifies the length, so this too is a bijection onto
// [0, 124] for paths of up to five marks.
package table
