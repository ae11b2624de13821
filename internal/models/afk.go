package models

// AFKStatus is a member's away state within one guild
type AFKStatus struct {
	// AFK is set while the member is away
	AFK bool

	// Sticky keeps the status when the member talks
	Sticky bool

	// ToggleLogs controls whether pings are shown when the member returns
	ToggleLogs bool

	// Reason is the rendered away message shown to members who ping
	Reason string

	// Since is the Unix time the member went away
	Since int64
}

// AFKSettings is the per-guild AFK configuration
type AFKSettings struct {
	// Nick prefixes away members' nicknames with [AFK]
	Nick bool

	// DeleteAfter is how long ping replies stay up, in seconds; 0 keeps them
	DeleteAfter int
}
