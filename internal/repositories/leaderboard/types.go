package leaderboard

// Board addresses one guild's ranking
type Board struct {
	// Name identifies the ranking, e.g. cookieclicker or donation:gold
	Name string

	// GuildID is the guild the ranking belongs to
	GuildID string
}

// IncrInput contains parameters for changing a member's score
type IncrInput struct {
	Board  Board
	UserID string
	By     int64
}

// SetScoreInput contains parameters for overwriting a member's score
type SetScoreInput struct {
	Board  Board
	UserID string
	Score  int64
}

// EnsureInput contains parameters for adding a member with a zero score
type EnsureInput struct {
	Board  Board
	UserID string
}

// ScoreInput contains parameters for reading a member's score
type ScoreInput struct {
	Board  Board
	UserID string
}

// ScoreOutput contains a member's score
type ScoreOutput struct {
	Score int64

	// Found is false when the member is not on the board
	Found bool
}

// TopInput contains parameters for reading the ranking
type TopInput struct {
	Board Board

	// Limit caps the entries returned; 0 returns everyone
	Limit int
}

// RangeInput contains parameters for reading members within a score range
type RangeInput struct {
	Board Board
	Min   int64
	Max   int64
}

// RemoveInput contains parameters for dropping a member
type RemoveInput struct {
	Board  Board
	UserID string
}

// ClearInput contains parameters for dropping a guild's ranking
type ClearInput struct {
	Board Board
}

// ClearAllInput contains parameters for dropping a ranking in every guild
type ClearAllInput struct {
	Name string
}
