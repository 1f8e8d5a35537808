package bigram

// Entry is one distinct bigram and its count.
type Entry struct {
	Bigram string
	Count  int
}

// Report is the finished histogram for one pass over a token stream.
type Report struct {
	counts  map[string]int
	order   []string
	tokens  int
	tracked bool
}

// Count returns the number of times key was seen, zero if never.
func (r *Report) Count(key string) int {
	return r.counts[key]
}

// Distinct returns the number of distinct bigram keys.
func (r *Report) Distinct() int {
	return len(r.counts)
}

// Tokens returns the total number of tokens fed to the accumulator.
func (r *Report) Tokens() int {
	return r.tokens
}

// Tracked reports whether first-seen order was recorded.
func (r *Report) Tracked() bool {
	return r.tracked
}

// Entries returns the histogram, in first-seen order when tracked and in
// unspecified map order otherwise.
func (r *Report) Entries() []Entry {
	entries := make([]Entry, 0, len(r.counts))
	if r.tracked {
		for _, key := range r.order {
			entries = append(entries, Entry{Bigram: key, Count: r.counts[key]})
		}
		return entries
	}
	for key, count := range r.counts {
		entries = append(entries, Entry{Bigram: key, Count: count})
	}
	return entries
}
