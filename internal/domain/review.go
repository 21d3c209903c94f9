package domain

import "time"

var nextReviewID = 1

// ResetReviewIDs restarts review id assignment from 1. Used when loading a
// fresh reviews dataset and between isolated test runs; never during normal
// operation.
func ResetReviewIDs() { nextReviewID = 1 }

// Review is a user's opinion of a movie, identified by a process-unique
// sequential id assigned at construction. A review is only complete once a
// user has claimed it and both the user's and the movie's review lists
// contain it; that cross-entity invariant is enforced at the repository
// gate, not here.
type Review struct {
	id        int
	movie     *Movie
	user      *User
	text      string
	rating    int
	timestamp time.Time
}

// NewReview creates a Review for a movie. The movie may be nil; the text is
// trimmed, empty text is left unset; ratings outside [1, 10] are left unset.
// The user reference starts nil until a User claims the review.
func NewReview(movie *Movie, text string, rating int) *Review {
	r := &Review{
		id:        nextReviewID,
		movie:     movie,
		text:      NormalizeName(text),
		timestamp: time.Now(),
	}
	nextReviewID++
	if rating >= 1 && rating <= 10 {
		r.rating = rating
	}
	return r
}

// ID returns the process-unique review id.
func (r *Review) ID() int { return r.id }

// Movie returns the reviewed movie, nil if the review was built without one.
func (r *Review) Movie() *Movie { return r.movie }

// User returns the owning user, nil until the review is claimed.
func (r *Review) User() *User { return r.user }

// SetUser claims the review for a user: first writer wins. Nil and
// invalid-identity users, and already-claimed reviews, are no-ops.
func (r *Review) SetUser(user *User) bool {
	if user == nil || !user.IsValid() || r.user != nil {
		return false
	}
	r.user = user
	return true
}

// Text returns the trimmed review text, empty if unset.
func (r *Review) Text() string { return r.text }

// SetText replaces the review text. Empty or all-whitespace input is
// ignored, keeping the previous text.
func (r *Review) SetText(text string) bool {
	text = NormalizeName(text)
	if text == "" {
		return false
	}
	r.text = text
	return true
}

// Rating returns the rating, 0 if unset.
func (r *Review) Rating() int { return r.rating }

// HasRating reports whether a rating in [1, 10] has been set.
func (r *Review) HasRating() bool { return r.rating != 0 }

// SetRating replaces the rating. Values outside [1, 10] are ignored.
func (r *Review) SetRating(rating int) bool {
	if rating < 1 || rating > 10 {
		return false
	}
	r.rating = rating
	return true
}

// Timestamp returns the creation time.
func (r *Review) Timestamp() time.Time { return r.timestamp }

func (r *Review) String() string {
	title := ""
	if r.movie != nil {
		title = r.movie.Title()
	}
	return "<Review " + title + ">"
}
