package rememberaccess

import (
	"context"
	stderrors "errors"
	"strconv"
	"strings"
	"time"

	"deal-advisor-workers/internal/common/errors"
	"deal-advisor-workers/internal/common/metrics"
	"deal-advisor-workers/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// GuestEmail is the email the sign-up form submits for "continue as guest".
const GuestEmail = "guest"

const grantedValue = "true"

// Store persists the remembered-access flag per visitor in Redis.
type Store struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewStore(client *redis.Client, prefix string, ttl time.Duration) *Store {
	return &Store{client: client, prefix: prefix, ttl: ttl}
}

func (s *Store) key(visitorID string) string {
	return s.prefix + visitorID
}

// IsGuest reports whether the grant came from the guest path. Guests get access for the
// current session only.
func IsGuest(g models.AccessGrant) bool {
	return g.Guest || strings.EqualFold(strings.TrimSpace(g.Email), GuestEmail)
}

// Grant gives the visitor access, issuing a visitor ID when none is supplied. The flag is
// persisted only for non-guest visitors who asked to be remembered.
func (s *Store) Grant(ctx context.Context, g models.AccessGrant) (models.AccessStatus, error) {
	if g.VisitorID == "" {
		g.VisitorID = uuid.NewString()
	}
	status := models.AccessStatus{VisitorID: g.VisitorID, HasAccess: true}

	if g.RememberMe && !IsGuest(g) {
		if err := s.client.Set(ctx, s.key(g.VisitorID), grantedValue, s.ttl).Err(); err != nil {
			return models.AccessStatus{}, errors.NewAccessStoreFailedError(err)
		}
		status.Remembered = true
	}

	metrics.AccessGrants.WithLabelValues(strconv.FormatBool(status.Remembered)).Inc()
	return status, nil
}

// Status reports whether the visitor was remembered. An unknown visitor has no access.
func (s *Store) Status(ctx context.Context, visitorID string) (models.AccessStatus, error) {
	val, err := s.client.Get(ctx, s.key(visitorID)).Result()
	if stderrors.Is(err, redis.Nil) {
		return models.AccessStatus{VisitorID: visitorID}, nil
	}
	if err != nil {
		return models.AccessStatus{}, errors.NewAccessStoreFailedError(err)
	}

	remembered := val == grantedValue
	return models.AccessStatus{VisitorID: visitorID, HasAccess: remembered, Remembered: remembered}, nil
}

// Forget clears the flag. Forgetting an unknown visitor returns ACCESS_NOT_FOUND.
func (s *Store) Forget(ctx context.Context, visitorID string) error {
	n, err := s.client.Del(ctx, s.key(visitorID)).Result()
	if err != nil {
		return errors.NewAccessStoreFailedError(err)
	}
	if n == 0 {
		return errors.NewAccessNotFoundError(visitorID)
	}
	return nil
}

// Ping checks the backing Redis connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
