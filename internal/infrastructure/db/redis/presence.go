package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const presenceKey = "chat:online"

// PresenceTracker records which members currently hold an open chat
// connection, backed by a Redis set. Membership is best-effort: a crashed
// process leaves stale entries until the member reconnects or disconnects.
type PresenceTracker struct {
	client *redis.Client
}

// NewPresenceTracker creates a PresenceTracker wrapping the given Redis client.
func NewPresenceTracker(client *redis.Client) *PresenceTracker {
	return &PresenceTracker{client: client}
}

// Connected marks a member as online.
func (p *PresenceTracker) Connected(ctx context.Context, username string) error {
	if err := p.client.SAdd(ctx, presenceKey, username).Err(); err != nil {
		return fmt.Errorf("presence add: %w", err)
	}
	return nil
}

// Disconnected removes a member from the online set.
func (p *PresenceTracker) Disconnected(ctx context.Context, username string) error {
	if err := p.client.SRem(ctx, presenceKey, username).Err(); err != nil {
		return fmt.Errorf("presence remove: %w", err)
	}
	return nil
}

// Online lists the members currently connected to chat.
func (p *PresenceTracker) Online(ctx context.Context) ([]string, error) {
	members, err := p.client.SMembers(ctx, presenceKey).Result()
	if err != nil {
		return nil, fmt.Errorf("presence list: %w", err)
	}
	return members, nil
}
