package devlogs

// DevLogsError is a custom error type for devlogs errors
type DevLogsError string

// Error implements the error interface
func (e DevLogsError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig       DevLogsError = "config cannot be nil"
	ErrNilSettingsRepo DevLogsError = "settings repository cannot be nil"
	ErrNilDevLogRepo   DevLogsError = "devlog repository cannot be nil"
	ErrNilGateway      DevLogsError = "gateway cannot be nil"
	ErrNilClock        DevLogsError = "clock cannot be nil"
	ErrNilSystemInfo   DevLogsError = "system info cannot be nil"

	ErrAlreadyBypassed DevLogsError = "User is already in the bypass list."
	ErrNotBypassed     DevLogsError = "User is not in the bypass list."
	ErrNoBypass        DevLogsError = "There are no users in the bypass list."
	ErrAlreadyWatched  DevLogsError = "That command is already being logged."
	ErrNotWatched      DevLogsError = "That command is not being logged."
	ErrNoHistory       DevLogsError = "There are no archived dev logs yet."
)
