package cache

import (
	"context"
	"testing"

	"github.com/srpos/backend/internal/domain/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSettingsRepo struct {
	current  settings.Settings
	getCalls int
	saved    []settings.Settings
}

func (s *stubSettingsRepo) Get(context.Context) (settings.Settings, error) {
	s.getCalls++
	return s.current, nil
}

func (s *stubSettingsRepo) Save(_ context.Context, v settings.Settings) error {
	s.current = v
	s.saved = append(s.saved, v)
	return nil
}

func TestCachedSettingsRepository_NilClientPassesThrough(t *testing.T) {
	stub := &stubSettingsRepo{current: settings.Defaults()}
	repo := NewCachedSettingsRepository(stub, nil)

	s, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, settings.Defaults(), s)

	s.CompanyName = "Sharif Traders"
	require.NoError(t, repo.Save(context.Background(), s))
	require.Len(t, stub.saved, 1)
	assert.Equal(t, "Sharif Traders", stub.saved[0].CompanyName)

	// every read hits the store when caching is disabled
	_, err = repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stub.getCalls)
}

func TestNewRedisClient_EmptyAddrDisablesCache(t *testing.T) {
	client, err := NewRedisClient("", "", 0)
	require.NoError(t, err)
	assert.Nil(t, client)
}
