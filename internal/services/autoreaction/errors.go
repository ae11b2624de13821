package autoreaction

// ReactionError is a custom error type for automatic reaction errors
type ReactionError string

// Error implements the error interface
func (e ReactionError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig       ReactionError = "config cannot be nil"
	ErrNilSettingsRepo ReactionError = "settings repository cannot be nil"
	ErrNilGateway      ReactionError = "gateway cannot be nil"

	ErrEmptyWord     ReactionError = "You need to provide a word to react to."
	ErrInvalidEmoji  ReactionError = "That emoji is not available in this guild."
	ErrDuplicateWord ReactionError = "That word seems to already have an automatic reaction on it."
	ErrWordNotSet    ReactionError = "That word does not have any automatic reactions set."
	ErrNoReactions   ReactionError = "This guild has no automatic reactions."
)
