package database

import (
	"context"
	"testing"

	"deal-advisor-workers/internal/common/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedis_RequiresAddress(t *testing.T) {
	_, err := NewRedis(config.RedisConfig{})
	assert.Error(t, err)
}

func TestRedisClient_Ping(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	c, err := NewRedis(config.RedisConfig{Address: mr.Addr()})
	require.NoError(t, err)
	defer c.Close()

	assert.NoError(t, c.Ping(context.Background()))

	mr.Close()
	err = c.Ping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis ping failed")
}
