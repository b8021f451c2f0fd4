package auth

import (
	"strings"

	"github.com/spec-kit/console-service/internal/config"
	"github.com/spec-kit/console-service/internal/domain"
)

// Credential is one entry in the fixed login table.
type Credential struct {
	Email        string
	PasswordHash string
	Role         domain.Role
	ClientID     string
}

// CredentialTable holds the demo credentials. Login is a check against
// this table; real authentication is an external collaborator here.
type CredentialTable struct {
	byEmail map[string]Credential
}

// NewCredentialTable hashes the configured demo passwords and builds the
// lookup table.
func NewCredentialTable(cfg config.AuthConfig, demoClientID string) (*CredentialTable, error) {
	adminHash, err := HashPassword(cfg.AdminPassword, cfg.BcryptCost)
	if err != nil {
		return nil, err
	}
	clientHash, err := HashPassword(cfg.ClientPassword, cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	return &CredentialTable{byEmail: map[string]Credential{
		strings.ToLower(cfg.AdminEmail): {
			Email:        cfg.AdminEmail,
			PasswordHash: adminHash,
			Role:         domain.RoleAdmin,
		},
		strings.ToLower(cfg.ClientEmail): {
			Email:        cfg.ClientEmail,
			PasswordHash: clientHash,
			Role:         domain.RoleClient,
			ClientID:     demoClientID,
		},
	}}, nil
}

// Verify checks email and password against the table.
func (t *CredentialTable) Verify(email, password string) (Credential, bool) {
	cred, ok := t.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return Credential{}, false
	}
	if err := ComparePassword(cred.PasswordHash, password); err != nil {
		return Credential{}, false
	}
	return cred, true
}
