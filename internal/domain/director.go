package domain

// Director is a value-like entity identified solely by its trimmed full
// name. An empty name is the invalid sentinel; movies default to an invalid
// Director until one is assigned.
type Director struct {
	name string
}

// NewDirector creates a Director with a normalized full name.
func NewDirector(fullName string) *Director {
	return &Director{name: NormalizeName(fullName)}
}

// FullName returns the normalized name, empty for the invalid sentinel.
func (d *Director) FullName() string { return d.name }

// IsValid reports whether the director has a usable identity.
func (d *Director) IsValid() bool { return d.name != "" }

// Equal reports identity equality: same normalized full name.
func (d *Director) Equal(other *Director) bool {
	return other != nil && d.name == other.name
}

// Less orders directors by name; an invalid director sorts first.
func (d *Director) Less(other *Director) bool {
	if other == nil {
		return false
	}
	if d.name == "" {
		return other.name != ""
	}
	if other.name == "" {
		return false
	}
	return d.name < other.name
}

func (d *Director) String() string { return "<Director " + d.name + ">" }
