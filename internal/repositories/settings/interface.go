package settings

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/noobcogs/internal/repositories/settings Repository

// Repository is the scoped key-value configuration store shared by every cog
type Repository interface {
	// GetAll returns every field of a scope; an unset scope yields an empty map
	GetAll(ctx context.Context, input *GetAllInput) (map[string]string, error)

	// Set writes fields of a scope
	Set(ctx context.Context, input *SetInput) error

	// SetIfAbsent writes a field only if it is unset and reports whether it did
	SetIfAbsent(ctx context.Context, input *SetIfAbsentInput) (bool, error)

	// DeleteFields removes fields from a scope and returns how many existed
	DeleteFields(ctx context.Context, input *DeleteFieldsInput) (int64, error)

	// Clear drops a scope including its sets and lists
	Clear(ctx context.Context, input *ClearInput) error

	// ClearCog drops every scope of a cog
	ClearCog(ctx context.Context, input *ClearCogInput) error

	// ListGuilds returns the guilds that have guild-scoped settings for a cog
	ListGuilds(ctx context.Context, input *ListGuildsInput) ([]string, error)

	// AddToSet adds a member to a set-valued setting and reports whether it was new
	AddToSet(ctx context.Context, input *SetMemberInput) (bool, error)

	// RemoveFromSet removes a member from a set-valued setting and reports whether it existed
	RemoveFromSet(ctx context.Context, input *SetMemberInput) (bool, error)

	// GetSet returns the members of a set-valued setting
	GetSet(ctx context.Context, input *GetSetInput) ([]string, error)

	// Append adds a value to the end of a list-valued setting
	Append(ctx context.Context, input *AppendInput) error

	// GetList returns a list-valued setting in insertion order
	GetList(ctx context.Context, input *GetListInput) ([]string, error)

	// DrainList returns a list-valued setting and deletes it
	DrainList(ctx context.Context, input *GetListInput) ([]string, error)
}
