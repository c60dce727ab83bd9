// internal/infrastructure/database/redis/session.go
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStore keeps refresh-token sessions in Redis, keyed by the token's
// JTI. Sessions are the only state that survives a process restart.
type SessionStore struct {
	client *Client
}

// NewSessionStore creates a session store on top of an established connection
func NewSessionStore(client *Client) *SessionStore {
	return &SessionStore{client: client}
}

func sessionKey(tokenID string) string {
	return fmt.Sprintf("session:%s", tokenID)
}

// Save registers a refresh-token session for a user
func (s *SessionStore) Save(ctx context.Context, tokenID, userID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, sessionKey(tokenID), userID, ttl); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Resolve returns the user ID bound to a refresh-token session.
// Unknown or expired sessions return an error.
func (s *SessionStore) Resolve(ctx context.Context, tokenID string) (string, error) {
	userID, err := s.client.Get(ctx, sessionKey(tokenID))
	if err == redis.Nil {
		return "", fmt.Errorf("session not found or expired")
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve session: %w", err)
	}
	return userID, nil
}

// Revoke invalidates a refresh-token session
func (s *SessionStore) Revoke(ctx context.Context, tokenID string) error {
	if err := s.client.Del(ctx, sessionKey(tokenID)); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}
