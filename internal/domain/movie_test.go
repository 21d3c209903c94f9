package domain

import (
	"errors"
	"testing"
)

func TestMovie_Identity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		title     string
		year      int
		wantTitle string
		wantYear  int
		valid     bool
	}{
		{name: "valid movie", title: "Moana", year: 2016, wantTitle: "Moana", wantYear: 2016, valid: true},
		{name: "title trimmed", title: "  Moana ", year: 2016, wantTitle: "Moana", wantYear: 2016, valid: true},
		{name: "boundary year", title: "Ben-Hur", year: 1900, wantTitle: "Ben-Hur", wantYear: 1900, valid: true},
		{name: "year below range", title: "Moana", year: 1899, wantTitle: "Moana", wantYear: 0, valid: false},
		{name: "zero year", title: "Moana", year: 0, wantTitle: "Moana", wantYear: 0, valid: false},
		{name: "empty title", title: "", year: 2016, wantTitle: "", wantYear: 2016, valid: false},
		{name: "both invalid", title: " ", year: -5, wantTitle: "", wantYear: 0, valid: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := NewMovie(tt.title, tt.year)
			if got := m.Title(); got != tt.wantTitle {
				t.Errorf("Title() = %q, want %q", got, tt.wantTitle)
			}
			if got := m.ReleaseYear(); got != tt.wantYear {
				t.Errorf("ReleaseYear() = %d, want %d", got, tt.wantYear)
			}
			if got := m.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestMovie_Equal(t *testing.T) {
	t.Parallel()

	a := NewMovie("Moana", 2016)
	b := NewMovie(" Moana ", 2016)
	c := NewMovie("Moana", 2017)

	if !a.Equal(b) {
		t.Error("same title and year should be equal")
	}
	if a.Equal(c) {
		t.Error("different year should not be equal")
	}
	if a.Equal(nil) {
		t.Error("nil should never compare equal")
	}
	if !NewMovie("", 0).Equal(NewMovie(" ", 1800)) {
		t.Error("two invalid-identity movies should be equal")
	}
}

func TestMovie_Less(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b *Movie
		want bool
	}{
		{name: "by title", a: NewMovie("Arrival", 2016), b: NewMovie("Moana", 2016), want: true},
		{name: "same title by year", a: NewMovie("Moana", 2015), b: NewMovie("Moana", 2016), want: true},
		{name: "equal identity", a: NewMovie("Moana", 2016), b: NewMovie("Moana", 2016), want: false},
		{name: "invalid title first", a: NewMovie("", 2016), b: NewMovie("Arrival", 2016), want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.a.Less(tt.b); got != tt.want {
				t.Errorf("Less() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMovie_SetRuntimeMinutes(t *testing.T) {
	t.Parallel()

	m := NewMovie("Moana", 2016)
	if err := m.SetRuntimeMinutes(107); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := m.RuntimeMinutes(); got != 107 {
		t.Errorf("RuntimeMinutes() = %d, want 107", got)
	}

	if err := m.SetRuntimeMinutes(0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("SetRuntimeMinutes(0) = %v, want ErrOutOfRange", err)
	}
	if err := m.SetRuntimeMinutes(-3); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("SetRuntimeMinutes(-3) = %v, want ErrOutOfRange", err)
	}
	if got := m.RuntimeMinutes(); got != 107 {
		t.Errorf("failed set should keep previous value, got %d", got)
	}
}

func TestMovie_ScalarSettersIgnoreOutOfRange(t *testing.T) {
	t.Parallel()

	m := NewMovie("Moana", 2016)

	if m.SetRank(0) || m.Rank() != 0 {
		t.Error("non-positive rank should be ignored")
	}
	m.SetRank(14)
	if m.SetRank(-1) {
		t.Error("negative rank should be ignored")
	}
	if got := m.Rank(); got != 14 {
		t.Errorf("Rank() = %d, want 14", got)
	}

	if m.SetExternalRating(10.1) {
		t.Error("rating above 10 should be ignored")
	}
	if m.SetExternalRating(-0.1) {
		t.Error("negative rating should be ignored")
	}
	if _, ok := m.ExternalRating(); ok {
		t.Error("rating should still be absent")
	}
	m.SetExternalRating(7.849)
	if rating, _ := m.ExternalRating(); rating != 7.8 {
		t.Errorf("rating should round to one decimal, got %v", rating)
	}

	if m.SetRatingVotes(-1) {
		t.Error("negative votes should be ignored")
	}
	m.SetRatingVotes(0)
	if votes, ok := m.RatingVotes(); !ok || votes != 0 {
		t.Errorf("zero votes is a valid value, got %d (set=%v)", votes, ok)
	}

	if m.SetRevenueMillions(-4) {
		t.Error("negative revenue should be ignored")
	}
	m.SetRevenueMillions(270.326)
	if revenue, _ := m.RevenueMillions(); revenue != 270.33 {
		t.Errorf("revenue should round to two decimals, got %v", revenue)
	}

	if m.SetMetascore(101) || m.SetMetascore(-1) {
		t.Error("metascore outside [0,100] should be ignored")
	}
	m.SetMetascore(0)
	if score, ok := m.Metascore(); !ok || score != 0 {
		t.Errorf("zero metascore is a valid value, got %d (set=%v)", score, ok)
	}
}

func TestMovie_SetDescription(t *testing.T) {
	t.Parallel()

	m := NewMovie("Moana", 2016)
	m.SetDescription("  An island adventure. ")
	if got := m.Description(); got != "An island adventure." {
		t.Errorf("Description() = %q", got)
	}
	if m.SetDescription("   ") {
		t.Error("blank description should be ignored")
	}
	if got := m.Description(); got != "An island adventure." {
		t.Errorf("blank set should keep previous value, got %q", got)
	}
}

func TestMovie_Director(t *testing.T) {
	t.Parallel()

	m := NewMovie("Moana", 2016)
	if m.Director() == nil {
		t.Fatal("Director() should never be nil")
	}
	if m.Director().IsValid() {
		t.Error("unset director should be the invalid sentinel")
	}
	m.SetDirector(NewDirector("Ron Clements"))
	if m.SetDirector(nil) {
		t.Error("nil director should be ignored")
	}
	if got := m.Director().FullName(); got != "Ron Clements" {
		t.Errorf("Director() = %q, want Ron Clements", got)
	}
}

func TestMovie_CastAndGenres(t *testing.T) {
	t.Parallel()

	m := NewMovie("Moana", 2016)
	cravalho := NewActor("Auli'i Cravalho")

	if !m.AddActor(cravalho) {
		t.Fatal("expected actor to be added")
	}
	if m.AddActor(NewActor("Auli'i Cravalho")) {
		t.Error("an equal actor should count as already cast")
	}
	if m.AddActor(nil) || m.AddActor(NewActor("")) {
		t.Error("nil and invalid actors should be rejected")
	}
	if !m.HasActor(cravalho) {
		t.Error("expected cast membership")
	}
	if !m.RemoveActor(NewActor("Auli'i Cravalho")) {
		t.Error("removal should match by identity")
	}
	if m.RemoveActor(cravalho) {
		t.Error("removing an absent actor should be a no-op")
	}

	adventure := NewGenre("Adventure")
	if !m.AddGenre(adventure) || m.AddGenre(NewGenre("Adventure")) {
		t.Error("genre add should be idempotent by identity")
	}
	if !m.HasGenre(NewGenre("Adventure")) {
		t.Error("expected genre membership")
	}
	if !m.RemoveGenre(adventure) || m.RemoveGenre(adventure) {
		t.Error("second removal should be a no-op")
	}
}

func TestMovie_AddReviewRequiresFullLink(t *testing.T) {
	ResetReviewIDs()
	ResetUserIDs()

	movie := NewMovie("Moana", 2016)
	other := NewMovie("Arrival", 2016)
	user := NewUser("martin", "pw12345")

	unattached := NewReview(other, "wrong movie", 7)
	unattached.SetUser(user)
	if movie.AddReview(unattached) {
		t.Error("a review for another movie should be rejected")
	}

	unrated := NewReview(movie, "no rating", 0)
	unrated.SetUser(user)
	if movie.AddReview(unrated) {
		t.Error("a review without a rating should be rejected")
	}

	ownerless := NewReview(movie, "no user", 7)
	if movie.AddReview(ownerless) {
		t.Error("a review without a user should be rejected")
	}

	review := NewReview(movie, "loved it", 9)
	review.SetUser(user)
	if !movie.AddReview(review) {
		t.Fatal("expected fully linked review to be added")
	}
	if movie.AddReview(review) {
		t.Error("adding the same review twice should be a no-op")
	}
	if !movie.HasReview(review) {
		t.Error("expected review membership")
	}
	if !movie.RemoveReview(review) || movie.RemoveReview(review) {
		t.Error("second removal should be a no-op")
	}
}
