package commands

// BatchResult summarizes a batch recomputation run. Per-record failures are
// counted and reported here rather than aborting the run; no partial run is
// ever rolled back as a whole.
type BatchResult struct {
	Updated int
	Skipped int
	Errored int
}
