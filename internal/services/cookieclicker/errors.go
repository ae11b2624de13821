package cookieclicker

// CookieError is a custom error type for cookie clicker errors
type CookieError string

// Error implements the error interface
func (e CookieError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig          CookieError = "config cannot be nil"
	ErrNilSettingsRepo    CookieError = "settings repository cannot be nil"
	ErrNilLeaderboardRepo CookieError = "leaderboard repository cannot be nil"
	ErrNilSessionRepo     CookieError = "session repository cannot be nil"
	ErrNilGateway         CookieError = "gateway cannot be nil"
	ErrNilClock           CookieError = "clock cannot be nil"
	ErrNilUUID            CookieError = "uuid generator cannot be nil"

	ErrNotYourClicker      CookieError = "This is not your cookie clicker."
	ErrSessionEnded        CookieError = "This cookie clicker has ended."
	ErrClickingTooFast     CookieError = "Slow down! You are clicking too fast."
	ErrEmptyLeaderboard    CookieError = "Nobody is in the leaderboard yet..."
	ErrNotInLeaderboard    CookieError = "You are not in the leaderboard."
	ErrInvalidButtonColour CookieError = "That is not a valid button colour. Choose from red, green, blurple or grey."
)
