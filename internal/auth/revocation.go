package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const revokedKeyPrefix = "session:revoked:"

// RevocationList tracks signed-out token IDs in Redis until their natural
// expiry. Checks fail open: an unreachable Redis logs a warning instead of
// locking every caller out.
type RevocationList struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRevocationList builds the list. A nil client disables revocation.
func NewRevocationList(client *redis.Client, logger *zap.Logger) *RevocationList {
	return &RevocationList{client: client, logger: logger}
}

// Revoke marks a token ID as signed out for the remaining token lifetime.
func (r *RevocationList) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if r == nil || r.client == nil || tokenID == "" {
		return nil
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return r.client.Set(ctx, revokedKeyPrefix+tokenID, "1", ttl).Err()
}

// IsRevoked reports whether the token ID was signed out.
func (r *RevocationList) IsRevoked(ctx context.Context, tokenID string) bool {
	if r == nil || r.client == nil || tokenID == "" {
		return false
	}
	res, err := r.client.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		if r.logger != nil {
			r.logger.Warn("revocation check failed", zap.Error(err))
		}
		return false
	}
	return res > 0
}
