// Package bigram counts adjacent word pairs in a token stream.
//
// The Accumulator keeps a sliding window of at most two tokens. Each time the
// window fills it emits a "word1 word2" key, bumps its count, and rolls the
// window forward by one token so consecutive pairs overlap. The window is fed
// as one continuous stream: callers decide where token boundaries come from,
// and nothing here knows about lines or files.
//
// With order tracking enabled the accumulator also records the order in which
// distinct keys first appeared, so reports can be dumped chronologically
// instead of in map order.
package bigram
