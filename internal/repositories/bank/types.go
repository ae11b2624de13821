package bank

import "github.com/KirkDiggler/noobcogs/internal/models"

// SaveBankInput contains parameters for storing a bank
type SaveBankInput struct {
	GuildID string
	Bank    *models.Bank
}

// GetBankInput contains parameters for retrieving a bank by name
type GetBankInput struct {
	GuildID string
	Name    string
}

// ListBanksInput contains parameters for listing a guild's banks
type ListBanksInput struct {
	GuildID string
}

// DeleteBankInput contains parameters for removing a bank
type DeleteBankInput struct {
	GuildID string
	Name    string
}

// DeleteGuildInput contains parameters for removing every bank of a guild
type DeleteGuildInput struct {
	GuildID string
}
