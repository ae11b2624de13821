package session

import (
	"context"

	"github.com/KirkDiggler/noobcogs/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/noobcogs/internal/repositories/session Repository

// Repository stores short-lived view sessions
type Repository interface {
	// Create stores a new session
	Create(ctx context.Context, input *CreateInput) error

	// Get retrieves a session with its count and participants
	Get(ctx context.Context, input *GetInput) (*models.ViewSession, error)

	// SetMessage records the message a session is attached to
	SetMessage(ctx context.Context, input *SetMessageInput) error

	// Incr bumps the session count, refreshes its lifetime and returns the new count
	Incr(ctx context.Context, input *IncrInput) (int64, error)

	// AddParticipant records a participant and reports whether they were new
	AddParticipant(ctx context.Context, input *AddParticipantInput) (bool, error)

	// Delete removes a session
	Delete(ctx context.Context, input *DeleteInput) error

	// Lock takes a named lock for a session; only the first caller gets true
	Lock(ctx context.Context, input *LockInput) (bool, error)

	// Unlock releases a named lock
	Unlock(ctx context.Context, input *UnlockInput) error
}
