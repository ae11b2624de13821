package customerror

import "errors"

// CustomErrorError is a custom error type for error reporting errors
type CustomErrorError string

// Error implements the error interface
func (e CustomErrorError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig       CustomErrorError = "config cannot be nil"
	ErrNilSettingsRepo CustomErrorError = "settings repository cannot be nil"
	ErrNilClock        CustomErrorError = "clock cannot be nil"

	ErrNoLastError CustomErrorError = "No command errors have been reported yet."
)

// ErrTest is raised on purpose so owners can preview the error message
var ErrTest = errors.New("This is a test error.")
