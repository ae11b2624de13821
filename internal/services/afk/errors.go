package afk

// AFKError is a custom error type for AFK-related errors
type AFKError string

// Error implements the error interface
func (e AFKError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig       AFKError = "config cannot be nil"
	ErrNilSettingsRepo AFKError = "settings repository cannot be nil"
	ErrNilGateway      AFKError = "gateway cannot be nil"
	ErrNilClock        AFKError = "clock cannot be nil"

	ErrAlreadyAFK         AFKError = "It appears you are already AFK."
	ErrForceOwner         AFKError = "I'm afraid you can not do that to the guild owner."
	ErrForceSelf          AFKError = "Why would you force AFK yourself? Please use `/afk`."
	ErrForceBot           AFKError = "Bots do not have AFK status."
	ErrForceHierarchy     AFKError = "You can not do that to someone higher or equal to your top role."
	ErrDeleteAfterTooLong AFKError = "The maximum seconds of delete after is 120 seconds."
)

// Nickname warnings; the member's status changes regardless
const (
	NickWarningOwner     = "Could not change your nick cause you are the guild owner."
	NickWarningHierarchy = "Could not change your nick due to role hierarchy or I'm missing the manage nicknames permission."
)
