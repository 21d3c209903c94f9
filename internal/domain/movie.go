package domain

import "math"

// MovieKey is the comparable identity of a Movie: normalized title plus
// release year. The zero value is the invalid-identity sentinel.
type MovieKey struct {
	Title string
	Year  int
}

// Movie is identified by its (title, release year) pair. A missing title or
// a year before 1900 makes the identity invalid. The movie owns ordered,
// duplicate-free actor and genre lists and a director reference; its review
// list holds references to reviews owned by users.
type Movie struct {
	title       string
	releaseYear int

	rank            int
	description     string
	director        *Director
	actors          []*Actor
	genres          []*Genre
	runtimeMinutes  int
	externalRating  *float64
	ratingVotes     *int
	revenueMillions *float64
	metascore       *int
	reviews         []*Review
}

// NewMovie creates a Movie. An empty title or a release year before 1900
// leaves the corresponding identity field at its sentinel value; the movie
// is still constructed and is filtered out at the repository gate.
func NewMovie(title string, releaseYear int) *Movie {
	m := &Movie{
		title:    NormalizeName(title),
		director: NewDirector(""),
	}
	if releaseYear >= 1900 {
		m.releaseYear = releaseYear
	}
	return m
}

// Title returns the normalized title, empty for an invalid identity.
func (m *Movie) Title() string { return m.title }

// ReleaseYear returns the release year, 0 for an invalid identity.
func (m *Movie) ReleaseYear() int { return m.releaseYear }

// IsValid reports whether both identity fields are usable.
func (m *Movie) IsValid() bool { return m.title != "" && m.releaseYear >= 1900 }

// Key returns the movie's comparable identity.
func (m *Movie) Key() MovieKey { return MovieKey{Title: m.title, Year: m.releaseYear} }

// Equal reports identity equality: same title and release year, including
// when both movies are the invalid sentinel.
func (m *Movie) Equal(other *Movie) bool {
	return other != nil && m.title == other.title && m.releaseYear == other.releaseYear
}

// Less orders movies by title, then release year; invalid fields sort first.
func (m *Movie) Less(other *Movie) bool {
	if other == nil {
		return false
	}
	if m.title != other.title {
		if m.title == "" {
			return other.title != ""
		}
		if other.title == "" {
			return false
		}
		return m.title < other.title
	}
	return m.releaseYear < other.releaseYear
}

// Rank returns the stable external rank, 0 if unset.
func (m *Movie) Rank() int { return m.rank }

// SetRank assigns the external rank. Non-positive ranks are ignored.
func (m *Movie) SetRank(rank int) bool {
	if rank <= 0 {
		return false
	}
	m.rank = rank
	return true
}

// Description returns the description, empty if unset.
func (m *Movie) Description() string { return m.description }

// SetDescription assigns a trimmed description. An empty or all-whitespace
// value is ignored, keeping the previous description.
func (m *Movie) SetDescription(description string) bool {
	description = NormalizeName(description)
	if description == "" {
		return false
	}
	m.description = description
	return true
}

// Director returns the movie's director. It is never nil: an unset director
// is the invalid Director sentinel.
func (m *Movie) Director() *Director { return m.director }

// SetDirector assigns the director. A nil director is ignored.
func (m *Movie) SetDirector(director *Director) bool {
	if director == nil {
		return false
	}
	m.director = director
	return true
}

// RuntimeMinutes returns the runtime in minutes, 0 if unset.
func (m *Movie) RuntimeMinutes() int { return m.runtimeMinutes }

// SetRuntimeMinutes assigns the runtime. Unlike the other scalar setters, a
// non-positive value is a loud failure: ErrOutOfRange is returned and the
// previous value kept.
func (m *Movie) SetRuntimeMinutes(minutes int) error {
	if minutes <= 0 {
		return ErrOutOfRange
	}
	m.runtimeMinutes = minutes
	return nil
}

// ExternalRating returns the external rating and whether it has been set.
func (m *Movie) ExternalRating() (float64, bool) {
	if m.externalRating == nil {
		return 0, false
	}
	return *m.externalRating, true
}

// SetExternalRating assigns the external rating, rounded to one decimal.
// Values outside [0, 10] are silently ignored.
func (m *Movie) SetExternalRating(rating float64) bool {
	if rating < 0 || rating > 10 {
		return false
	}
	rounded := math.Round(rating*10) / 10
	m.externalRating = &rounded
	return true
}

// RatingVotes returns the vote count and whether it has been set.
func (m *Movie) RatingVotes() (int, bool) {
	if m.ratingVotes == nil {
		return 0, false
	}
	return *m.ratingVotes, true
}

// SetRatingVotes assigns the vote count. Negative values are silently
// ignored.
func (m *Movie) SetRatingVotes(votes int) bool {
	if votes < 0 {
		return false
	}
	m.ratingVotes = &votes
	return true
}

// RevenueMillions returns the revenue and whether it has been set.
func (m *Movie) RevenueMillions() (float64, bool) {
	if m.revenueMillions == nil {
		return 0, false
	}
	return *m.revenueMillions, true
}

// SetRevenueMillions assigns the revenue, rounded to two decimals. Negative
// values are silently ignored.
func (m *Movie) SetRevenueMillions(revenue float64) bool {
	if revenue < 0 {
		return false
	}
	rounded := math.Round(revenue*100) / 100
	m.revenueMillions = &rounded
	return true
}

// Metascore returns the metascore and whether it has been set.
func (m *Movie) Metascore() (int, bool) {
	if m.metascore == nil {
		return 0, false
	}
	return *m.metascore, true
}

// SetMetascore assigns the metascore. Values outside [0, 100] are silently
// ignored.
func (m *Movie) SetMetascore(score int) bool {
	if score < 0 || score > 100 {
		return false
	}
	m.metascore = &score
	return true
}

// Actors returns the cast in insertion order.
func (m *Movie) Actors() []*Actor {
	out := make([]*Actor, len(m.actors))
	copy(out, m.actors)
	return out
}

// AddActor appends an actor to the cast. Nil, invalid, and already-present
// actors are no-ops.
func (m *Movie) AddActor(actor *Actor) bool {
	if actor == nil || !actor.IsValid() || m.HasActor(actor) {
		return false
	}
	m.actors = append(m.actors, actor)
	return true
}

// RemoveActor removes an actor from the cast; absent actors are a no-op.
func (m *Movie) RemoveActor(actor *Actor) bool {
	if actor == nil {
		return false
	}
	for i, a := range m.actors {
		if a.Equal(actor) {
			m.actors = append(m.actors[:i], m.actors[i+1:]...)
			return true
		}
	}
	return false
}

// HasActor reports whether an actor with the same identity is in the cast.
func (m *Movie) HasActor(actor *Actor) bool {
	if actor == nil {
		return false
	}
	for _, a := range m.actors {
		if a.Equal(actor) {
			return true
		}
	}
	return false
}

// Genres returns the genres in insertion order.
func (m *Movie) Genres() []*Genre {
	out := make([]*Genre, len(m.genres))
	copy(out, m.genres)
	return out
}

// AddGenre appends a genre. Nil, invalid, and already-present genres are
// no-ops.
func (m *Movie) AddGenre(genre *Genre) bool {
	if genre == nil || !genre.IsValid() || m.HasGenre(genre) {
		return false
	}
	m.genres = append(m.genres, genre)
	return true
}

// RemoveGenre removes a genre; absent genres are a no-op.
func (m *Movie) RemoveGenre(genre *Genre) bool {
	if genre == nil {
		return false
	}
	for i, g := range m.genres {
		if g.Equal(genre) {
			m.genres = append(m.genres[:i], m.genres[i+1:]...)
			return true
		}
	}
	return false
}

// HasGenre reports whether a genre with the same identity is attached.
func (m *Movie) HasGenre(genre *Genre) bool {
	if genre == nil {
		return false
	}
	for _, g := range m.genres {
		if g.Equal(genre) {
			return true
		}
	}
	return false
}

// Reviews returns the movie's reviews in insertion order. Reviews are owned
// by their users; the movie only references them.
func (m *Movie) Reviews() []*Review {
	out := make([]*Review, len(m.reviews))
	copy(out, m.reviews)
	return out
}

// AddReview attaches a review. The review must reference exactly this movie,
// carry a rating, and already be claimed by a user; anything else, and
// duplicates, are no-ops. Normally reached through User.AddReview.
func (m *Movie) AddReview(review *Review) bool {
	if review == nil || review.Movie() != m || !review.HasRating() || review.User() == nil {
		return false
	}
	if m.HasReview(review) {
		return false
	}
	m.reviews = append(m.reviews, review)
	return true
}

// RemoveReview detaches a review; absent reviews are a no-op. Call through
// User.RemoveReview to keep both sides consistent.
func (m *Movie) RemoveReview(review *Review) bool {
	for i, r := range m.reviews {
		if r == review {
			m.reviews = append(m.reviews[:i], m.reviews[i+1:]...)
			return true
		}
	}
	return false
}

// HasReview reports whether this exact review object is attached.
func (m *Movie) HasReview(review *Review) bool {
	for _, r := range m.reviews {
		if r == review {
			return true
		}
	}
	return false
}

func (m *Movie) String() string { return "<Movie " + m.title + ">" }
