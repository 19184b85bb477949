// Package session exposes the authenticated identity to the rest of the
// application. Authentication itself happens elsewhere; this package only
// reads the session the login flow leaves behind.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/hannahbrooks/volunteer-connect/pkg/core/model"
)

// Provider returns the current user, or nil when nobody is logged in.
type Provider interface {
	CurrentUser(ctx context.Context) (*model.User, error)
}

// FileProvider reads the session from a JSON file written by the login
// flow. A missing file means logged out, not an error.
type FileProvider struct {
	path string
}

var _ Provider = (*FileProvider)(nil)

// NewFileProvider creates a provider reading the given session file.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

// CurrentUser returns the logged-in user, or nil when the session file is
// absent.
func (p *FileProvider) CurrentUser(ctx context.Context) (*model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("failed to parse session file: %w", err)
	}
	if user.Email == "" {
		return nil, fmt.Errorf("session file has no email")
	}
	return &user, nil
}

// Static is a fixed-identity provider, used in tests and by tools that
// act for a known user.
type Static struct {
	User *model.User
}

// CurrentUser returns the fixed user.
func (s Static) CurrentUser(ctx context.Context) (*model.User, error) {
	return s.User, nil
}
