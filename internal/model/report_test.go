package model

import (
	"testing"
)

// TestNewReport tests ranking and allowlist filtering.
func TestNewReport(t *testing.T) {
	t.Parallel()

	t.Run("two file scenario", func(t *testing.T) {
		t.Parallel()

		table := NewFrequencyTable()
		table.AddAll("/a.md", []Occurrence{occ("CSSXref"), occ("UnknownMacro")})
		table.AddAll("/b.md", []Occurrence{
			{Name: "cssxref", Args: "Color", HasArgs: true, Match: "{{cssxref(Color)}}"},
			{Name: "cssxref", Args: "Color", HasArgs: true, Match: "{{cssxref(Color)}}"},
			occ("unknownmacro"),
		})

		if table.Count("cssxref") != 3 {
			t.Errorf("expected cssxref=3, got %d", table.Count("cssxref"))
		}
		if table.Count("unknownmacro") != 2 {
			t.Errorf("expected unknownmacro=2, got %d", table.Count("unknownmacro"))
		}

		report := NewReport(table, NewAllowlist("cssxref"), 0)

		if len(report.Entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(report.Entries))
		}
		e := report.Entries[0]
		if e.Name != "unknownmacro" || e.Count != 2 {
			t.Errorf("unexpected entry %+v", e)
		}
		if e.Rank != 2 {
			t.Errorf("expected rank 2 after skipped cssxref, got %d", e.Rank)
		}
	})

	t.Run("allowlisted entries consume ranks", func(t *testing.T) {
		t.Parallel()

		table := NewFrequencyTable()
		for _, name := range []string{"a", "a", "a", "b", "b", "c"} {
			table.Add("/doc.md", occ(name))
		}

		report := NewReport(table, NewAllowlist("b"), 0)

		if len(report.Entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(report.Entries))
		}
		if report.Entries[0].Rank != 1 || report.Entries[0].Name != "a" {
			t.Errorf("unexpected first entry %+v", report.Entries[0])
		}
		if report.Entries[1].Rank != 3 || report.Entries[1].Name != "c" {
			t.Errorf("unexpected second entry %+v", report.Entries[1])
		}
	})

	t.Run("no reported key is allowlisted", func(t *testing.T) {
		t.Parallel()

		table := NewFrequencyTable()
		for _, name := range []string{"cssxref", "jsxref", "todo", "domxref", "foo", "htmlelement"} {
			table.Add("/doc.md", occ(name))
		}
		allow := DefaultAllowlist()

		for _, e := range NewReport(table, allow, 0).Entries {
			if allow.Contains(e.Name) {
				t.Errorf("allowlisted macro %q reported", e.Name)
			}
		}
	})

	t.Run("limit truncates before filtering", func(t *testing.T) {
		t.Parallel()

		table := NewFrequencyTable()
		for _, name := range []string{"a", "a", "a", "b", "b", "c"} {
			table.Add("/doc.md", occ(name))
		}

		report := NewReport(table, NewAllowlist("a"), 2)

		if len(report.Entries) != 1 || report.Entries[0].Name != "b" {
			t.Errorf("expected only b within limit, got %+v", report.Entries)
		}
		if report.Limit != 2 {
			t.Errorf("expected limit 2, got %d", report.Limit)
		}
	})

	t.Run("non-positive limit uses default", func(t *testing.T) {
		t.Parallel()

		report := NewReport(NewFrequencyTable(), nil, -5)
		if report.Limit != DefaultReportLimit {
			t.Errorf("expected limit %d, got %d", DefaultReportLimit, report.Limit)
		}
	})

	t.Run("empty table gives empty report", func(t *testing.T) {
		t.Parallel()

		report := NewReport(NewFrequencyTable(), DefaultAllowlist(), 0)
		if report.HasEntries() {
			t.Error("expected no entries")
		}
		if report.Entries == nil {
			t.Error("expected non-nil entries slice for JSON output")
		}
	})

	t.Run("summary totals", func(t *testing.T) {
		t.Parallel()

		table := NewFrequencyTable()
		for _, name := range []string{"x", "x", "y", "cssref"} {
			table.Add("/doc.md", occ(name))
		}

		report := NewReport(table, DefaultAllowlist(), 0)
		if report.DistinctMacros != 3 {
			t.Errorf("expected 3 distinct macros, got %d", report.DistinctMacros)
		}
		if report.TotalOccurrences != 4 {
			t.Errorf("expected 4 occurrences, got %d", report.TotalOccurrences)
		}
		if report.UnimplementedOccurrences() != 3 {
			t.Errorf("expected 3 unimplemented occurrences, got %d", report.UnimplementedOccurrences())
		}
		if len(report.Top(1)) != 1 || report.Top(1)[0].Name != "x" {
			t.Errorf("unexpected top entry: %+v", report.Top(1))
		}
	})
}

// TestAllowlist tests allowlist membership.
func TestAllowlist(t *testing.T) {
	t.Parallel()

	t.Run("membership is case-sensitive", func(t *testing.T) {
		t.Parallel()

		a := NewAllowlist("cssxref")
		if !a.Contains("cssxref") {
			t.Error("expected cssxref to be present")
		}
		if a.Contains("CSSXref") {
			t.Error("expected CSSXref to be absent")
		}
	})

	t.Run("drops duplicates and keeps order", func(t *testing.T) {
		t.Parallel()

		a := NewAllowlist("b", "a", "b")
		a.Add("c", "a")

		names := a.Names()
		want := []string{"b", "a", "c"}
		if len(names) != len(want) {
			t.Fatalf("expected %v, got %v", want, names)
		}
		for i := range want {
			if names[i] != want[i] {
				t.Errorf("name %d: got %q, want %q", i, names[i], want[i])
			}
		}
	})

	t.Run("nil allowlist contains nothing", func(t *testing.T) {
		t.Parallel()

		var a *Allowlist
		if a.Contains("anything") {
			t.Error("expected nil allowlist to contain nothing")
		}
		if a.Len() != 0 {
			t.Error("expected nil allowlist to be empty")
		}
	})

	t.Run("default allowlist holds implemented macros", func(t *testing.T) {
		t.Parallel()

		a := DefaultAllowlist()
		if a.Len() != len(DefaultImplementedMacros) {
			t.Errorf("expected %d names, got %d", len(DefaultImplementedMacros), a.Len())
		}
		for _, name := range DefaultImplementedMacros {
			if Key(name) != name {
				t.Errorf("default allowlist entry %q is not a folded key", name)
			}
		}
	})
}
