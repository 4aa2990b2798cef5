package user

import (
	"fmt"

	"github.com/nekogravitycat/bulkstay-backend/internal/auth"
)

// SeedPassword is the password of every demo account.
const SeedPassword = "password"

// Seed returns the demo accounts in id order: 1 guest, 2 and 3 hosts.
func Seed(hasher auth.PasswordHasher) ([]*User, error) {
	hash, err := hasher.Hash(SeedPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash seed password: %w", err)
	}
	monthly := "monthly"
	return []*User{
		{Email: "guest@bulkstay.com", PasswordHash: hash, Role: RoleGuest, TravelFrequency: &monthly},
		{Email: "host@bulkstay.com", PasswordHash: hash, Role: RoleHost},
		{Email: "host2@bulkstay.com", PasswordHash: hash, Role: RoleHost},
	}, nil
}
