package timer

// TimerError is a custom error type for timer-related errors.
// Errors other than the Nil* config errors are shown to the user as-is.
type TimerError string

// Error implements the error interface
func (e TimerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig       TimerError = "config cannot be nil"
	ErrNilTimerRepo    TimerError = "timer repository cannot be nil"
	ErrNilSettingsRepo TimerError = "settings repository cannot be nil"
	ErrNilGateway      TimerError = "gateway cannot be nil"
	ErrNilClock        TimerError = "clock cannot be nil"

	ErrInvalidDuration     TimerError = "That doesn't look like a duration. Try something like `1h30m`, `2d` or `in 20 minutes`."
	ErrDurationTooShort    TimerError = "Duration must be greater than **10 Seconds**."
	ErrNoTimers            TimerError = "There are no active timers in this guild."
	ErrTimerNotFound       TimerError = "That does not seem to be a valid timer or timer already ended or cancelled."
	ErrNotTimerHost        TimerError = "Only the host of this timer or a moderator can do that."
	ErrHostOptIn           TimerError = "You are the host of this timer."
	ErrAlreadyNotified     TimerError = "You will already be notified when this timer ends."
	ErrNotificationsOff    TimerError = "Notifications are disabled for timers in this guild."
	ErrInvalidMaxDuration  TimerError = "The max duration time must be greater than 10 seconds or less than 14 days."
	ErrInvalidButtonColour TimerError = "That is not a valid button colour. Pick one of green, grey, blurple or red."
	ErrInvalidButtonState  TimerError = "The button state must be either `started` or `ended`."
)
