// Package analyze runs the single-pass bigram scan over one input file.
//
// Run opens the file, walks it line by line, tokenizes each line, and feeds
// the tokens to one accumulator as a continuous stream, so a pair may span a
// line break. All state for a pass lives inside Run; nothing survives between
// invocations.
//
// The three failure kinds mirror the tool's exit behavior: missing arguments,
// unopenable files, and lines that cannot be read or decoded. Tokenizing and
// accumulating never fail.
package analyze
