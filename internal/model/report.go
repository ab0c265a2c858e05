package model

// DefaultReportLimit caps the number of ranked entries considered for the
// report. It is effectively unbounded for realistic corpora.
const DefaultReportLimit = 10000

// Entry is one line of the unimplemented-macro report.
type Entry struct {
	// Rank is the 1-based position of the macro among all ranked macros,
	// including the allowlisted ones that are not reported.
	Rank int `json:"rank"`

	MacroStat
}

// Report is the ranked list of macros missing from the allowlist.
//
// Ranks are assigned before allowlisted macros are removed, so the
// sequence of ranks in Entries may contain gaps.
type Report struct {
	// Root is the directory that was scanned.
	Root string `json:"root"`

	// FilesScanned is the number of markdown documents read.
	FilesScanned int `json:"filesScanned"`

	// DistinctMacros is the number of distinct macro keys found.
	DistinctMacros int `json:"distinctMacros"`

	// TotalOccurrences is the number of macro invocations found.
	TotalOccurrences int `json:"totalOccurrences"`

	// Limit is the rank cap applied before filtering.
	Limit int `json:"limit"`

	// Entries holds the unimplemented macros, highest count first.
	Entries []Entry `json:"entries"`
}

// NewReport ranks the table and keeps the entries that are not allowlisted.
// Only the first limit ranked macros are considered; a non-positive limit
// means DefaultReportLimit.
func NewReport(table *FrequencyTable, allow *Allowlist, limit int) *Report {
	if limit <= 0 {
		limit = DefaultReportLimit
	}

	report := &Report{
		DistinctMacros:   table.Len(),
		TotalOccurrences: table.Total(),
		Limit:            limit,
		Entries:          make([]Entry, 0),
	}

	for i, stat := range table.MostCommon(limit) {
		if allow.Contains(stat.Name) {
			continue
		}
		report.Entries = append(report.Entries, Entry{
			Rank:      i + 1,
			MacroStat: stat,
		})
	}

	return report
}

// HasEntries reports whether any unimplemented macro was found.
func (r *Report) HasEntries() bool {
	return len(r.Entries) > 0
}

// UnimplementedOccurrences returns the summed count of all reported entries.
func (r *Report) UnimplementedOccurrences() int {
	total := 0
	for _, e := range r.Entries {
		total += e.Count
	}
	return total
}

// Top returns at most n entries from the head of the report.
func (r *Report) Top(n int) []Entry {
	if n <= 0 || n >= len(r.Entries) {
		return r.Entries
	}
	return r.Entries[:n]
}
