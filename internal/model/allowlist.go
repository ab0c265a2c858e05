package model

// DefaultImplementedMacros lists the macros the renderer already supports.
// Entries are lower-case so they compare directly with aggregation keys.
var DefaultImplementedMacros = []string{
	"cssref",
	"jssidebar",
	"jsref",
	"readonlyinline",
	"glossary",
	"jsxref",
	"non-standard_inline",
	"non-standard_header",
	"deprecated_inline",
	"optional_inline",
	"interwiki",
	"bug",
	"availableinworkers",
	"experimental_inline",
	"cssxref",
	"deprecated_header",
	"specifications",
	"compat",
	"livesampleurl",
	"htmlelement",
	"embedlivesample",
	"embedinteractiveexample",
	"csssyntax",
	"cssinfo",
	"xref_cssinitial",
	"xref_cssinherited",
	"xref_csscomputed",
	"domxref",
	"ariarole",
	"htmlattrdef",
	"htmlattrxref",
	"no_tag_omission",
	"svgelement",
	"js_property_attributes",
	"embedghlivesample",
}

// Allowlist is an ordered set of macro names considered implemented.
// Membership is an exact, case-sensitive comparison.
type Allowlist struct {
	names []string
	set   map[string]struct{}
}

// NewAllowlist creates an Allowlist from names. Duplicates are dropped,
// keeping the first position.
func NewAllowlist(names ...string) *Allowlist {
	a := &Allowlist{
		names: make([]string, 0, len(names)),
		set:   make(map[string]struct{}, len(names)),
	}
	a.Add(names...)
	return a
}

// DefaultAllowlist returns an Allowlist holding DefaultImplementedMacros.
func DefaultAllowlist() *Allowlist {
	return NewAllowlist(DefaultImplementedMacros...)
}

// Add appends names that are not already present.
func (a *Allowlist) Add(names ...string) {
	for _, name := range names {
		if _, ok := a.set[name]; ok {
			continue
		}
		a.set[name] = struct{}{}
		a.names = append(a.names, name)
	}
}

// Contains reports whether name is in the allowlist.
// A nil Allowlist contains nothing.
func (a *Allowlist) Contains(name string) bool {
	if a == nil {
		return false
	}
	_, ok := a.set[name]
	return ok
}

// Names returns the names in insertion order.
func (a *Allowlist) Names() []string {
	if a == nil {
		return nil
	}
	names := make([]string, len(a.names))
	copy(names, a.names)
	return names
}

// Len returns the number of names.
func (a *Allowlist) Len() int {
	if a == nil {
		return 0
	}
	return len(a.names)
}
