package donation

// DonationError is a custom error type for donation logger errors
type DonationError string

// Error implements the error interface
func (e DonationError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig          DonationError = "config cannot be nil"
	ErrNilSettingsRepo    DonationError = "settings repository cannot be nil"
	ErrNilBankRepo        DonationError = "bank repository cannot be nil"
	ErrNilLeaderboardRepo DonationError = "leaderboard repository cannot be nil"
	ErrNilSessionRepo     DonationError = "session repository cannot be nil"
	ErrNilGateway         DonationError = "gateway cannot be nil"
	ErrNilClock           DonationError = "clock cannot be nil"

	ErrNotSetup         DonationError = "DonationLogger has not been setup in this guild yet."
	ErrNotManager       DonationError = "You need to be a donationlogger manager or higher to run this command."
	ErrSetupInProgress  DonationError = "Someone is already setting up donationlogger in this guild."
	ErrAlreadySetup     DonationError = "It appears this guild is already set up, you can run this command again when you reset this guild."
	ErrSetupPermission  DonationError = "You need the Manage Server permission to set up donationlogger."
	ErrNoBanks          DonationError = "You need to provide at least one bank."
	ErrNoManagers       DonationError = "You need to provide at least one manager role."
	ErrBankHidden       DonationError = "This bank is hidden."
	ErrAmountTooHigh    DonationError = "The amount you provided is way too high, consider adding something reasonable."
	ErrZeroBalance      DonationError = "This member has 0 donation balance for this bank."
	ErrInvalidAmount    DonationError = "The amount must be greater than 0."
	ErrNegativeAmount   DonationError = "The amount cannot be negative."
	ErrInvalidName      DonationError = "A bank name cannot be empty."
	ErrInvalidThreshold DonationError = "The donation amount for a role must be greater than 0."
	ErrInvalidMulti     DonationError = "The multiplier cannot be negative."
	ErrInvalidMode      DonationError = "Choose one of more, less or all."
	ErrNoRoles          DonationError = "You need to provide at least one role."
	ErrLastBank         DonationError = "You cannot remove the only bank of this guild."
)

// BankNotFoundError is returned for an unknown bank name
type BankNotFoundError struct {
	Name string
}

// Error implements the error interface
func (e *BankNotFoundError) Error() string {
	return "Bank `" + e.Name + "` does not exist."
}

// BankExistsError is returned when adding a bank whose name is taken
type BankExistsError struct {
	Name string
}

// Error implements the error interface
func (e *BankExistsError) Error() string {
	return "Bank `" + e.Name + "` already exists."
}
