package domain

// Genre is a value-like classification entity identified solely by its
// trimmed name. A Genre built from an empty or all-whitespace name is the
// invalid sentinel: it compares equal to any other invalid Genre and is
// rejected at the repository gate.
type Genre struct {
	name string
}

// NewGenre creates a Genre with a normalized name.
func NewGenre(name string) *Genre {
	return &Genre{name: NormalizeName(name)}
}

// Name returns the normalized genre name, empty for the invalid sentinel.
func (g *Genre) Name() string { return g.name }

// IsValid reports whether the genre has a usable identity.
func (g *Genre) IsValid() bool { return g.name != "" }

// Equal reports identity equality: same normalized name.
func (g *Genre) Equal(other *Genre) bool {
	return other != nil && g.name == other.name
}

// Less orders genres by name; an invalid genre sorts first.
func (g *Genre) Less(other *Genre) bool {
	if other == nil {
		return false
	}
	if g.name == "" {
		return other.name != ""
	}
	if other.name == "" {
		return false
	}
	return g.name < other.name
}

func (g *Genre) String() string { return "<Genre " + g.name + ">" }
