package session

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tenantforge.io/tenantforge/internal/pkg/logger"
)

func init() {
	_ = logger.Init("error", "json")
}

// mapCache is an in-memory Cache for tests.
type mapCache struct {
	mu       sync.Mutex
	claims   map[string]*Claims
	versions map[string]int64

	failSet  error
	failIncr error
}

func newMapCache() *mapCache {
	return &mapCache{
		claims:   make(map[string]*Claims),
		versions: make(map[string]int64),
	}
}

func (m *mapCache) Get(_ context.Context, userID string) (*Claims, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.claims[userID]
	if !ok {
		return nil, ErrNotCached
	}
	return c, nil
}

func (m *mapCache) Set(_ context.Context, claims *Claims) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSet != nil {
		return m.failSet
	}
	m.claims[claims.UserID] = claims
	return nil
}

func (m *mapCache) NextVersion(_ context.Context, userID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failIncr != nil {
		return 0, m.failIncr
	}
	m.versions[userID]++
	return m.versions[userID], nil
}

func TestRefreshAfterOnboardingPublishesOwnerClaims(t *testing.T) {
	cache := newMapCache()
	refresher := NewRefresher(cache)

	require.NoError(t, refresher.RefreshAfterOnboarding(context.Background(), "user_1", "org_1"))

	claims, err := cache.Get(context.Background(), "user_1")
	require.NoError(t, err)
	assert.Equal(t, "org_1", claims.OrganizationID)
	assert.Equal(t, "administrator", claims.Role)
	assert.Equal(t, []string{"*"}, claims.Permissions)
	assert.Equal(t, int64(1), claims.Version)
	assert.False(t, claims.RefreshedAt.IsZero())
}

func TestRefreshVersionsAreMonotonic(t *testing.T) {
	cache := newMapCache()
	refresher := NewRefresher(cache)
	ctx := context.Background()

	require.NoError(t, refresher.RefreshAfterOnboarding(ctx, "user_1", "org_1"))
	require.NoError(t, refresher.RefreshAfterOnboarding(ctx, "user_1", "org_1"))
	require.NoError(t, refresher.RefreshAfterOnboarding(ctx, "user_1", "org_1"))

	claims, err := cache.Get(ctx, "user_1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), claims.Version)
}

func TestRefreshPropagatesCacheErrors(t *testing.T) {
	cache := newMapCache()
	cache.failIncr = errors.New("redis down")
	refresher := NewRefresher(cache)

	err := refresher.RefreshAfterOnboarding(context.Background(), "user_1", "org_1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bump claims version")

	cache.failIncr = nil
	cache.failSet = errors.New("redis down")
	err = refresher.RefreshAfterOnboarding(context.Background(), "user_1", "org_1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "publish claims")
}
