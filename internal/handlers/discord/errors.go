package discord

import (
	"errors"

	"github.com/KirkDiggler/noobcogs/internal/services/afk"
	"github.com/KirkDiggler/noobcogs/internal/services/autoreaction"
	"github.com/KirkDiggler/noobcogs/internal/services/cookieclicker"
	"github.com/KirkDiggler/noobcogs/internal/services/customerror"
	"github.com/KirkDiggler/noobcogs/internal/services/devlogs"
	"github.com/KirkDiggler/noobcogs/internal/services/donation"
	"github.com/KirkDiggler/noobcogs/internal/services/pressf"
	"github.com/KirkDiggler/noobcogs/internal/services/rolecolour"
	"github.com/KirkDiggler/noobcogs/internal/services/timer"
)

// HandlerError is a custom error type for handler rejections
type HandlerError string

// Error implements the error interface
func (e HandlerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNotOwner         HandlerError = "Only bot owners can run this command."
	ErrGuildOnly        HandlerError = "This command can only be used in a server."
	ErrMissingPerms     HandlerError = "You need the Manage Server permission to run this command."
	ErrNotYourPrompt    HandlerError = "You are not allowed to use this interaction."
	ErrPromptExpired    HandlerError = "This prompt has expired."
	ErrUnknownCommand   HandlerError = "I do not know that command."
	ErrNotATimer        HandlerError = "That message is not a timer."
	ErrInvalidSnowflake HandlerError = "That does not look like a message ID."
)

// userMessage returns the text of errors meant for the invoker
func userMessage(err error) (string, bool) {
	var (
		handlerErr  HandlerError
		afkErr      afk.AFKError
		reactErr    autoreaction.ReactionError
		cookieErr   cookieclicker.CookieError
		devlogsErr  devlogs.DevLogsError
		donationErr donation.DonationError
		bankMissing *donation.BankNotFoundError
		bankExists  *donation.BankExistsError
		pressfErr   pressf.PressFError
		colourErr   rolecolour.RoleColourError
		timerErr    timer.TimerError
		customErr   customerror.CustomErrorError
	)

	switch {
	case errors.As(err, &handlerErr):
		return handlerErr.Error(), true
	case errors.As(err, &afkErr):
		return afkErr.Error(), true
	case errors.As(err, &reactErr):
		return reactErr.Error(), true
	case errors.As(err, &cookieErr):
		return cookieErr.Error(), true
	case errors.As(err, &devlogsErr):
		return devlogsErr.Error(), true
	case errors.As(err, &donationErr):
		return donationErr.Error(), true
	case errors.As(err, &bankMissing):
		return bankMissing.Error(), true
	case errors.As(err, &bankExists):
		return bankExists.Error(), true
	case errors.As(err, &pressfErr):
		return pressfErr.Error(), true
	case errors.As(err, &colourErr):
		return colourErr.Error(), true
	case errors.As(err, &timerErr):
		return timerErr.Error(), true
	case errors.As(err, &customErr):
		return customErr.Error(), true
	}

	return "", false
}
