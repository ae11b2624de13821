package rolecolour

// RoleColourError is a custom error type for random colour role errors
type RoleColourError string

// Error implements the error interface
func (e RoleColourError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig       RoleColourError = "config cannot be nil"
	ErrNilSettingsRepo RoleColourError = "settings repository cannot be nil"
	ErrNilGateway      RoleColourError = "gateway cannot be nil"
	ErrNilPicker       RoleColourError = "colour picker cannot be nil"

	ErrRoleTooHigh  RoleColourError = "It appears that role is higher than my top role please lower it below my top role."
	ErrRoleNotFound RoleColourError = "That role does not exist in this guild."
)

// Settings warnings
const (
	WarningNoPermission = "I do not have `manage_roles` permission! RandomColourRole will not work."
	WarningRoleTooHigh  = "The set role is higher than my top role! please lower it down below my top role."
	WarningRoleMissing  = "The set role no longer exists. Set a new one."
	WarningDisabled     = "RandomColourRole is disabled in this guild."
)
