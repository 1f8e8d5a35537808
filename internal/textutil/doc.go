// Package textutil extracts clean word tokens from raw text.
//
// Tokenization lowercases input with ASCII-only case folding, splits on
// whitespace runs, and cleanses each piece by stripping leading and trailing
// runs of disallowed characters. A piece that consists entirely of disallowed
// characters yields no token. Non-ASCII characters are never case folded, so
// they behave as punctuation and are discarded with the run that contains
// them.
//
// The disallowed-character pattern is compiled once per run via Pattern and
// passed into Cleanse and Tokenize by the caller; the package keeps no
// mutable state of its own.
package textutil
