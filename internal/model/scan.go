package model

// Scan carries the state of one run through the scan pipeline.
// Each step fills in the fields the next step consumes.
type Scan struct {
	// Root is the absolute path of the directory being scanned.
	Root string

	// Allowlist holds the macros excluded from the report.
	Allowlist *Allowlist

	// Limit is the rank cap passed to NewReport.
	Limit int

	// Paths are all discovered file paths in walk order.
	Paths []string

	// Documents are the markdown paths in ascending order.
	Documents []string

	// Table accumulates macro counts while documents are read.
	Table *FrequencyTable

	// Report is the final ranked report.
	Report *Report

	// PerformedSteps lists the pipeline steps that completed.
	PerformedSteps []string
}

// NewScan creates a Scan for root with an empty frequency table.
// A nil allowlist is replaced by DefaultAllowlist.
func NewScan(root string, allow *Allowlist, limit int) *Scan {
	if allow == nil {
		allow = DefaultAllowlist()
	}
	return &Scan{
		Root:           root,
		Allowlist:      allow,
		Limit:          limit,
		Paths:          make([]string, 0),
		Documents:      make([]string, 0),
		Table:          NewFrequencyTable(),
		PerformedSteps: make([]string, 0),
	}
}
