package ports

import "context"

// LoginThrottle tracks failed login attempts per username and imposes
// a growing cooldown between retries.
type LoginThrottle interface {
	// WaitSeconds reports how many seconds the user must wait before
	// the next attempt; 0 means no cooldown is active.
	WaitSeconds(ctx context.Context, username string) (int, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}
