package ingest

import "github.com/cinelog/cinelog-backend/internal/domain"

// ReadReviews reads the review file, resolving each row's movie rank and
// user id against already-loaded datasets. A row whose movie or user does
// not resolve produces an unlinked review, which is dropped.
func ReadReviews(path string, moviesByRank map[int]*domain.Movie, usersByID map[int]*domain.User) ([]*domain.Review, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}

	domain.ResetReviewIDs()
	reviews := make([]*domain.Review, 0, len(rows))

	for _, row := range rows {
		var movie *domain.Movie
		if rank, ok := optInt(row["Movie Rank"]); ok {
			movie = moviesByRank[rank]
		}
		rating, _ := optInt(row["Rating"])
		review := domain.NewReview(movie, row["Review Text"], rating)

		if id, ok := optInt(row["User ID"]); ok {
			if user, ok := usersByID[id]; ok {
				user.AddReview(review)
			}
		}

		if review.Movie() != nil && review.User() != nil {
			reviews = append(reviews, review)
		}
	}
	return reviews, nil
}
