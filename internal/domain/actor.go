package domain

// Actor is identified by its trimmed full name and additionally carries the
// set of colleagues it has worked with. Colleague links are directional as
// added: linking A to B does not link B to A.
type Actor struct {
	name       string
	colleagues []*Actor
}

// NewActor creates an Actor with a normalized full name.
func NewActor(fullName string) *Actor {
	return &Actor{name: NormalizeName(fullName)}
}

// FullName returns the normalized name, empty for the invalid sentinel.
func (a *Actor) FullName() string { return a.name }

// IsValid reports whether the actor has a usable identity.
func (a *Actor) IsValid() bool { return a.name != "" }

// Equal reports identity equality: same normalized full name. Colleague
// sets do not participate in identity.
func (a *Actor) Equal(other *Actor) bool {
	return other != nil && a.name == other.name
}

// Less orders actors by name; an invalid actor sorts first.
func (a *Actor) Less(other *Actor) bool {
	if other == nil {
		return false
	}
	if a.name == "" {
		return other.name != ""
	}
	if other.name == "" {
		return false
	}
	return a.name < other.name
}

// Colleagues returns the actors this actor has been linked to, in the order
// the links were added.
func (a *Actor) Colleagues() []*Actor {
	out := make([]*Actor, len(a.colleagues))
	copy(out, a.colleagues)
	return out
}

// AddColleague records that this actor worked with colleague. It reports
// whether the link was added: nil, invalid, self, and already-present
// colleagues are no-ops. Only this direction is recorded; callers wanting a
// symmetric relation must add the reverse link themselves.
func (a *Actor) AddColleague(colleague *Actor) bool {
	if colleague == nil || !colleague.IsValid() || a.Equal(colleague) {
		return false
	}
	if a.WorkedWith(colleague) {
		return false
	}
	a.colleagues = append(a.colleagues, colleague)
	return true
}

// WorkedWith reports whether colleague appears in this actor's colleague
// set. The check is directional: a.WorkedWith(b) says nothing about
// b.WorkedWith(a).
func (a *Actor) WorkedWith(colleague *Actor) bool {
	if colleague == nil {
		return false
	}
	for _, c := range a.colleagues {
		if c.Equal(colleague) {
			return true
		}
	}
	return false
}

func (a *Actor) String() string { return "<Actor " + a.name + ">" }
