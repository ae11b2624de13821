package models

// LeaderboardEntry is one ranked member on a guild leaderboard
type LeaderboardEntry struct {
	// Rank is 1-based
	Rank int

	// UserID is the Discord user ID of the member
	UserID string

	// Score is the member's total
	Score int64
}
