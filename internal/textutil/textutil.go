package textutil

import (
	"regexp"
	"strings"
)

// disallowedPattern matches a maximal run of characters outside the token
// alphabet. Space is part of the allowed set so the pattern can also be
// applied to text that has not been field-split yet.
const disallowedPattern = `[^a-z0-9 ]+`

// Pattern compiles the disallowed-run pattern. Callers compile it once per
// run and pass it into Cleanse and Tokenize.
func Pattern() *regexp.Regexp {
	return regexp.MustCompile(disallowedPattern)
}

// Cleanse lowercases a whitespace-delimited candidate word and strips runs of
// disallowed characters from its edges. It returns the cleaned token and true,
// or "" and false when the candidate contains no token at all.
//
// The boundary scan works on the first maximal disallowed run:
//   - run found past the start: the token is everything before it, anything
//     after is discarded ("fox's" -> "fox");
//   - run at the start with content after it: the remainder is re-scanned and
//     truncated at the next run, if any ("...fox..." -> "fox");
//   - run covering the whole candidate: no token.
func Cleanse(word string, re *regexp.Regexp) (string, bool) {
	lowered := asciiLower(word)
	if lowered == "" {
		return "", false
	}

	loc := re.FindStringIndex(lowered)
	if loc == nil {
		return lowered, true
	}
	start, end := loc[0], loc[1]

	if start > 0 {
		return lowered[:start], true
	}

	if end < len(lowered) {
		rest := lowered[end:]
		if next := re.FindStringIndex(rest); next != nil {
			return rest[:next[0]], true
		}
		return rest, true
	}

	// The run spans the entire candidate.
	return "", false
}

// Tokenize splits a line on whitespace runs and cleanses each piece,
// preserving left-to-right order. Pieces that cleanse to nothing are dropped.
func Tokenize(line string, re *regexp.Regexp) []string {
	fields := strings.Fields(line)
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if token, ok := Cleanse(field, re); ok {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// asciiLower folds A-Z to a-z and leaves every other byte untouched. Unicode
// case folding is deliberately not used: a non-ASCII uppercase letter must
// stay outside the token alphabet rather than fold into it.
func asciiLower(s string) string {
	hasUpper := false
	for i := 0; i < len(s); i++ {
		if c := s[i]; 'A' <= c && c <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return s
	}
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
