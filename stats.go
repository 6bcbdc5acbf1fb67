package owned

// Stats is the package wide accounting over every value under management,
// across all handle kinds. Counters are plain integers under the single
// threaded contract.
type Stats struct {
	Live      int64 // values currently under management
	Adopted   int64 // values adopted since process start
	Freed     int64 // values disposed since process start
	Watermark int64 // highest Live observed
}

var stats Stats

func statAdopt() {
	stats.Adopted++
	stats.Live++
	if stats.Live > stats.Watermark {
		stats.Watermark = stats.Live
	}
}

func statFree() {
	stats.Freed++
	stats.Live--
}

// statForget drops a value from the live set without disposing it, for
// ownership relinquished back to the caller.
func statForget() {
	stats.Live--
}

// Snapshot returns a copy of the current accounting.
func Snapshot() Stats {
	return stats
}
