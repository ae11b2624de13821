package settings

import "fmt"

// Scope addresses one configuration hash of a cog
type Scope struct {
	// Cog is the owning module
	Cog string

	// GuildID is empty for global scope
	GuildID string

	// UserID is set for member scope
	UserID string
}

// Global returns the cog-wide scope
func Global(cog string) Scope {
	return Scope{Cog: cog}
}

// Guild returns a guild scope
func Guild(cog, guildID string) Scope {
	return Scope{Cog: cog, GuildID: guildID}
}

// Member returns a member scope
func Member(cog, guildID, userID string) Scope {
	return Scope{Cog: cog, GuildID: guildID, UserID: userID}
}

// Key returns the redis key of the scope's hash
func (s Scope) Key() string {
	switch {
	case s.UserID != "":
		return fmt.Sprintf("%s%s:member:%s:%s", keyPrefix, s.Cog, s.GuildID, s.UserID)
	case s.GuildID != "":
		return fmt.Sprintf("%s%s:guild:%s", keyPrefix, s.Cog, s.GuildID)
	default:
		return fmt.Sprintf("%s%s:global", keyPrefix, s.Cog)
	}
}

func (s Scope) valid() bool {
	return s.Cog != "" && (s.UserID == "" || s.GuildID != "")
}

// GetAllInput contains parameters for reading a scope
type GetAllInput struct {
	Scope Scope
}

// SetInput contains parameters for writing fields of a scope
type SetInput struct {
	Scope  Scope
	Fields map[string]string
}

// SetIfAbsentInput contains parameters for writing a field only when it is not set
type SetIfAbsentInput struct {
	Scope Scope
	Field string
	Value string
}

// DeleteFieldsInput contains parameters for removing fields of a scope
type DeleteFieldsInput struct {
	Scope  Scope
	Fields []string
}

// ClearInput contains parameters for dropping a scope with its sets and lists
type ClearInput struct {
	Scope Scope
}

// ClearCogInput contains parameters for dropping every scope of a cog
type ClearCogInput struct {
	Cog string
}

// ListGuildsInput contains parameters for listing configured guilds
type ListGuildsInput struct {
	Cog string
}

// SetMemberInput addresses one member of a set-valued setting
type SetMemberInput struct {
	Scope  Scope
	Set    string
	Member string
}

// GetSetInput addresses a set-valued setting
type GetSetInput struct {
	Scope Scope
	Set   string
}

// AppendInput contains parameters for appending to a list-valued setting
type AppendInput struct {
	Scope Scope
	List  string
	Value string
}

// GetListInput addresses a list-valued setting
type GetListInput struct {
	Scope Scope
	List  string
}
