package ingest

import "time"

// The SQLite snapshot stores dates as text in two layouts.
var sourceDateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseSourceDate converts a source date string into a timestamp. Empty or
// unparseable values yield nil.
func ParseSourceDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range sourceDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
