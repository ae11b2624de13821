package uuid

import (
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/noobcogs/internal/common/uuid UUID

// UUID generates identifiers for interaction-scoped views
type UUID interface {
	NewUUID() string
}

// DefaultUUID implements the UUID interface using the uuid package
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new UUID with the dashes removed so it fits in a component custom ID
func (d *DefaultUUID) NewUUID() string {
	id := uuid.New()
	return fmt.Sprintf("%x", id[:])
}
