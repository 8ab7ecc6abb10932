package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/travigo/metroplanner/pkg/ctdf"
	"github.com/travigo/metroplanner/pkg/journeyplanner"
)

var ErrSessionNotFound = errors.New("session not found")

const DefaultExpiration = 30 * time.Minute

const keyPrefix = "metroplanner:session"

// Store keeps planning sessions between requests. Every new search gets a new
// identifier and abandoned sessions simply expire.
type Store struct {
	cache      *cache.Cache[string]
	expiration time.Duration
}

func NewStore(client *redis.Client, expiration time.Duration) *Store {
	if expiration <= 0 {
		expiration = DefaultExpiration
	}

	redisStore := redisstore.NewRedis(client, store.WithExpiration(expiration))

	return &Store{
		cache:      cache.New[string](redisStore),
		expiration: expiration,
	}
}

func NewIdentifier() string {
	return uuid.New().String()
}

func guidedKey(identifier string) string {
	return fmt.Sprintf("%s:guided:%s", keyPrefix, identifier)
}

func resultsKey(identifier string) string {
	return fmt.Sprintf("%s:results:%s", keyPrefix, identifier)
}

func (s *Store) save(ctx context.Context, key string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.cache.Set(ctx, key, string(encoded), store.WithExpiration(s.expiration))
}

func (s *Store) load(ctx context.Context, key string, value any) error {
	encoded, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, store.NotFound{}) || errors.Is(err, redis.Nil) {
			return fmt.Errorf("%w: %s", ErrSessionNotFound, key)
		}
		return err
	}

	return json.Unmarshal([]byte(encoded), value)
}

func (s *Store) SaveGuided(ctx context.Context, identifier string, session journeyplanner.GuidedSession) error {
	return s.save(ctx, guidedKey(identifier), session)
}

func (s *Store) GetGuided(ctx context.Context, identifier string) (journeyplanner.GuidedSession, error) {
	var session journeyplanner.GuidedSession
	err := s.load(ctx, guidedKey(identifier), &session)

	return session, err
}

func (s *Store) SaveResults(ctx context.Context, identifier string, results *ctdf.JourneyPlanResults) error {
	return s.save(ctx, resultsKey(identifier), results)
}

func (s *Store) GetResults(ctx context.Context, identifier string) (*ctdf.JourneyPlanResults, error) {
	var results ctdf.JourneyPlanResults
	if err := s.load(ctx, resultsKey(identifier), &results); err != nil {
		return nil, err
	}

	return &results, nil
}

// Delete removes whichever sessions exist under the identifier
func (s *Store) Delete(ctx context.Context, identifier string) error {
	for _, key := range []string{guidedKey(identifier), resultsKey(identifier)} {
		if err := s.cache.Delete(ctx, key); err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
	}

	return nil
}
