package ingest

import "fmt"

// LoadResult tracks counts and errors from a snapshot load.
type LoadResult struct {
	Countries         int
	Leagues           int
	Teams             int
	Players           int
	Matches           int
	Attributes        int
	SkippedMatches    int
	SkippedAttributes int
	Errors            []string
}

// AddErrorf records a formatted error message.
func (r *LoadResult) AddErrorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Summary returns a human-readable summary of the load.
func (r *LoadResult) Summary() string {
	return fmt.Sprintf(
		"countries=%d leagues=%d teams=%d players=%d matches=%d attributes=%d skipped_matches=%d skipped_attributes=%d errors=%d",
		r.Countries, r.Leagues, r.Teams, r.Players,
		r.Matches, r.Attributes,
		r.SkippedMatches, r.SkippedAttributes, len(r.Errors),
	)
}
