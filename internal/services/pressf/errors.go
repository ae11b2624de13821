package pressf

// PressFError is a custom error type for press F errors
type PressFError string

// Error implements the error interface
func (e PressFError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig       PressFError = "config cannot be nil"
	ErrNilSettingsRepo PressFError = "settings repository cannot be nil"
	ErrNilSessionRepo  PressFError = "session repository cannot be nil"
	ErrNilGateway      PressFError = "gateway cannot be nil"
	ErrNilClock        PressFError = "clock cannot be nil"
	ErrNilUUID         PressFError = "uuid generator cannot be nil"

	ErrAlreadyActive       PressFError = "You are already paying respects on something in this channel, wait for it to finish."
	ErrAlreadyPaid         PressFError = "You have already paid your respects."
	ErrSessionEnded        PressFError = "Paying respects for this has already ended."
	ErrEmptyThing          PressFError = "You need to tell me what to pay respects to."
	ErrInvalidButtonColour PressFError = "That is not a valid button colour. Choose from red, green, blurple or grey."
)
