package devlog

import "github.com/KirkDiggler/noobcogs/internal/models"

// SaveInput contains parameters for archiving an entry
type SaveInput struct {
	Entry *models.DevLogEntry
}

// RecentInput contains parameters for reading the archive
type RecentInput struct {
	// Limit caps the entries returned
	Limit int

	// AuthorID optionally restricts entries to one author
	AuthorID string
}
