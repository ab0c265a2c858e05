package model

import "sort"

// MacroStat holds the accumulated usage of a single macro key.
type MacroStat struct {
	// Name is the lower-cased macro name.
	Name string `json:"name"`

	// Count is the number of occurrences across the whole corpus.
	Count int `json:"count"`

	// Files is the number of distinct documents that used the macro.
	Files int `json:"files"`

	// Example is the first raw invocation seen for this macro.
	Example string `json:"example"`
}

// FrequencyTable counts macro occurrences by lower-cased name.
// Keys remember the order in which they were first encountered, which is
// the tie-break order for MostCommon.
//
// FrequencyTable is not safe for concurrent use.
type FrequencyTable struct {
	order    []string
	stats    map[string]*MacroStat
	lastPath map[string]string
	total    int
}

// NewFrequencyTable creates an empty FrequencyTable.
func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{
		order:    make([]string, 0),
		stats:    make(map[string]*MacroStat),
		lastPath: make(map[string]string),
	}
}

// Add records one occurrence found in the document at path.
func (t *FrequencyTable) Add(path string, occ Occurrence) {
	key := occ.Key()

	stat, ok := t.stats[key]
	if !ok {
		stat = &MacroStat{Name: key, Example: occ.Match}
		t.stats[key] = stat
		t.order = append(t.order, key)
	}
	stat.Count++
	t.total++

	// Files arrive one at a time, so comparing with the previous path is
	// enough to count distinct documents.
	if t.lastPath[key] != path {
		t.lastPath[key] = path
		stat.Files++
	}
}

// AddAll records every occurrence found in the document at path.
func (t *FrequencyTable) AddAll(path string, occs []Occurrence) {
	for _, occ := range occs {
		t.Add(path, occ)
	}
}

// Count returns the number of occurrences recorded for the lower-cased key.
func (t *FrequencyTable) Count(key string) int {
	if stat, ok := t.stats[key]; ok {
		return stat.Count
	}
	return 0
}

// Stat returns a copy of the statistics for key.
func (t *FrequencyTable) Stat(key string) (MacroStat, bool) {
	stat, ok := t.stats[key]
	if !ok {
		return MacroStat{}, false
	}
	return *stat, true
}

// Len returns the number of distinct keys.
func (t *FrequencyTable) Len() int {
	return len(t.order)
}

// Total returns the number of occurrences recorded across all keys.
func (t *FrequencyTable) Total() int {
	return t.total
}

// Keys returns the keys in first-encounter order.
func (t *FrequencyTable) Keys() []string {
	keys := make([]string, len(t.order))
	copy(keys, t.order)
	return keys
}

// MostCommon returns up to n entries ordered by count, highest first.
// Entries with equal counts keep their first-encounter order.
// A non-positive n returns every entry.
func (t *FrequencyTable) MostCommon(n int) []MacroStat {
	result := make([]MacroStat, len(t.order))
	for i, key := range t.order {
		result[i] = *t.stats[key]
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})

	if n > 0 && n < len(result) {
		result = result[:n]
	}
	return result
}
