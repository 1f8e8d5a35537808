package bigram

// Options configures accumulator behavior.
type Options struct {
	// TrackOrder records the first-occurrence order of distinct keys so the
	// report can be iterated chronologically.
	TrackOrder bool
}

// Accumulator consumes a stream of clean tokens and maintains the pair
// histogram. The zero value is not usable; construct with New.
type Accumulator struct {
	window   []string
	counts   map[string]int
	order    []string
	tracking bool
	tokens   int
}

// New returns an empty accumulator.
func New(opts Options) *Accumulator {
	return &Accumulator{
		window:   make([]string, 0, 2),
		counts:   make(map[string]int),
		tracking: opts.TrackOrder,
	}
}

// Feed advances the sliding window by one token. When the window reaches two
// tokens it emits their pair key, increments its count, and collapses the
// window to the second token. The pair key is only ever built here, at the
// moment the window holds exactly two tokens.
func (a *Accumulator) Feed(token string) {
	a.tokens++
	a.window = append(a.window, token)
	if len(a.window) < 2 {
		return
	}

	key := a.window[0] + " " + a.window[1]
	if a.tracking {
		if _, seen := a.counts[key]; !seen {
			a.order = append(a.order, key)
		}
	}
	a.counts[key]++

	a.window[0] = a.window[1]
	a.window = a.window[:1]
}

// Report finalizes the accumulator. A leftover single buffered token never
// produced a pair and is discarded. The accumulator must not be fed after
// Report is called.
func (a *Accumulator) Report() *Report {
	return &Report{
		counts:  a.counts,
		order:   a.order,
		tokens:  a.tokens,
		tracked: a.tracking,
	}
}
