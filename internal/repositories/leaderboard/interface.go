package leaderboard

import (
	"context"

	"github.com/KirkDiggler/noobcogs/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/noobcogs/internal/repositories/leaderboard Repository

// Repository defines the interface for per-guild member rankings
type Repository interface {
	// Incr adds By to a member's score and returns the new score
	Incr(ctx context.Context, input *IncrInput) (int64, error)

	// SetScore overwrites a member's score
	SetScore(ctx context.Context, input *SetScoreInput) error

	// Ensure adds a member with score 0 unless already present
	Ensure(ctx context.Context, input *EnsureInput) error

	// Score reads a member's score
	Score(ctx context.Context, input *ScoreInput) (*ScoreOutput, error)

	// Top returns members ranked by score, highest first
	Top(ctx context.Context, input *TopInput) ([]*models.LeaderboardEntry, error)

	// Range returns members whose score is within [Min, Max], highest first
	Range(ctx context.Context, input *RangeInput) ([]*models.LeaderboardEntry, error)

	// Remove drops a member and reports whether they were present
	Remove(ctx context.Context, input *RemoveInput) (bool, error)

	// Clear drops a guild's ranking
	Clear(ctx context.Context, input *ClearInput) error

	// ClearAll drops a ranking in every guild
	ClearAll(ctx context.Context, input *ClearAllInput) error
}
