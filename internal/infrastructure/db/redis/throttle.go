package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	failureWindow      = 15 * time.Minute
	cooldownCapSeconds = 30
)

// LoginThrottle tracks failed login attempts per username in Redis and
// imposes an exponential cooldown between retries, capped at
// cooldownCapSeconds. Keys expire on their own; a successful login
// clears them immediately.
type LoginThrottle struct {
	client *redis.Client
}

func NewLoginThrottle(client *redis.Client) *LoginThrottle {
	return &LoginThrottle{client: client}
}

// WaitSeconds reports the remaining cooldown for a username, rounded
// up; 0 means the next attempt is allowed now.
func (t *LoginThrottle) WaitSeconds(ctx context.Context, username string) (int, error) {
	ttl, err := t.client.TTL(ctx, t.cooldownKey(username)).Result()
	if err != nil {
		return 0, fmt.Errorf("throttle ttl: %w", err)
	}
	if ttl <= 0 {
		return 0, nil
	}
	return int(ttl.Seconds()) + 1, nil
}

// RecordFailure increments the failure counter and arms a cooldown of
// min(cap, 2^failures) seconds.
func (t *LoginThrottle) RecordFailure(ctx context.Context, username string) error {
	failKey := t.failKey(username)

	n, err := t.client.Incr(ctx, failKey).Result()
	if err != nil {
		return fmt.Errorf("throttle incr: %w", err)
	}
	if err := t.client.Expire(ctx, failKey, failureWindow).Err(); err != nil {
		return fmt.Errorf("throttle expire: %w", err)
	}

	cooldown := time.Duration(cooldownSeconds(int(n))) * time.Second
	if err := t.client.Set(ctx, t.cooldownKey(username), "1", cooldown).Err(); err != nil {
		return fmt.Errorf("throttle set cooldown: %w", err)
	}
	return nil
}

// Reset clears the failure counter and any active cooldown.
func (t *LoginThrottle) Reset(ctx context.Context, username string) error {
	if err := t.client.Del(ctx, t.failKey(username), t.cooldownKey(username)).Err(); err != nil {
		return fmt.Errorf("throttle reset: %w", err)
	}
	return nil
}

func (t *LoginThrottle) failKey(username string) string {
	return "login_fail:" + username
}

func (t *LoginThrottle) cooldownKey(username string) string {
	return "login_cooldown:" + username
}

// cooldownSeconds returns min(cooldownCapSeconds, 2^failCount).
func cooldownSeconds(failCount int) int {
	s := 1
	for i := 0; i < failCount; i++ {
		s *= 2
		if s >= cooldownCapSeconds {
			return cooldownCapSeconds
		}
	}
	return s
}
