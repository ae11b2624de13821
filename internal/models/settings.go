package models

// CookieClickerSettings is the per-guild cookie clicker configuration
type CookieClickerSettings struct {
	Emoji        string
	ButtonColour ButtonColour
}

// PressFSettings is the per-guild press F configuration
type PressFSettings struct {
	Emoji        string
	ButtonColour ButtonColour
}

// RoleColourSettings is the per-guild random colour role configuration
type RoleColourSettings struct {
	RoleID  string
	Enabled bool
}

// AutoReaction reacts with Emoji to messages containing Word
type AutoReaction struct {
	Word  string
	Emoji string
}
