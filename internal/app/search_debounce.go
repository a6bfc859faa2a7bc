package app

// SearchDebounce coalesces rapid search edits into one fetch per quiet
// window. Each Schedule invalidates earlier timers by bumping the sequence;
// when a timer fires it calls Resolve with the sequence it was armed with,
// and only the newest one wins. The timer itself lives in a tea.Tick
// command so the ordering logic here stays independently testable.
type SearchDebounce struct {
	seq     int
	pending string
	armed   bool
}

// Schedule records value as the pending search text and returns the
// sequence the caller should arm its timer with.
func (d *SearchDebounce) Schedule(value string) int {
	d.seq++
	d.pending = value
	d.armed = true
	return d.seq
}

// Resolve returns the pending value if seq is still current; stale timers
// report false and must be ignored.
func (d *SearchDebounce) Resolve(seq int) (string, bool) {
	if !d.armed || seq != d.seq {
		return "", false
	}
	d.armed = false
	return d.pending, true
}

// CancelPending drops any armed timer, e.g. when the dashboard unmounts or
// the search input is cleared through another path.
func (d *SearchDebounce) CancelPending() {
	d.seq++
	d.armed = false
	d.pending = ""
}
