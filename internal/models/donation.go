package models

import (
	"sort"
	"strings"
)

// Bank is a named donation ledger within a guild
type Bank struct {
	// Name as shown to users; the lowercased form keys the bank
	Name string `json:"name"`

	// Emoji prefixes amounts
	Emoji string `json:"emoji"`

	// Hidden banks reject new donations
	Hidden bool `json:"hidden"`

	// Multiplier is applied to added amounts; 0 or 1 means none
	Multiplier float64 `json:"multiplier"`

	// Roles maps a balance threshold to the roles granted at or above it
	Roles map[int64][]string `json:"roles"`
}

// Key returns the storage key of the bank
func (b *Bank) Key() string {
	return BankKey(b.Name)
}

// BankKey normalises a bank name
func BankKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Thresholds returns the configured thresholds in ascending order
func (b *Bank) Thresholds() []int64 {
	out := make([]int64, 0, len(b.Roles))
	for t := range b.Roles {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// RolesReachedBy returns every role whose threshold is at or below balance
func (b *Bank) RolesReachedBy(balance int64) []string {
	var out []string
	for _, t := range b.Thresholds() {
		if t <= balance {
			out = append(out, b.Roles[t]...)
		}
	}
	return out
}

// RolesAbove returns every role whose threshold is above balance
func (b *Bank) RolesAbove(balance int64) []string {
	var out []string
	for _, t := range b.Thresholds() {
		if t > balance {
			out = append(out, b.Roles[t]...)
		}
	}
	return out
}

// DonationSettings is the per-guild donation logger configuration
type DonationSettings struct {
	Setup        bool
	LogChannelID string
	ManagerRoles []string
}
