package domain

// RecommendationStrategy recommends a user a set of choices. Implementations
// are interchangeable and selected by the caller.
type RecommendationStrategy interface {
	Recommend(user *User) []string
}
