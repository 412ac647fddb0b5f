package cache

import (
	"context"
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remla25-team8/model-service/internal/infrastructure/config"
)

func TestNewRedisClient(t *testing.T) {
	t.Run("connects to a running server", func(t *testing.T) {
		srv := miniredis.RunT(t)
		port, err := strconv.Atoi(srv.Port())
		require.NoError(t, err)

		client, err := NewRedisClient(&config.RedisConfig{Host: srv.Host(), Port: port})

		require.NoError(t, err)
		assert.NotNil(t, client)
		assert.NoError(t, client.Close())
	})

	t.Run("fails when server is unreachable", func(t *testing.T) {
		srv := miniredis.RunT(t)
		port, err := strconv.Atoi(srv.Port())
		require.NoError(t, err)
		srv.Close()

		client, err := NewRedisClient(&config.RedisConfig{Host: srv.Host(), Port: port})

		assert.Error(t, err)
		assert.Nil(t, client)
	})
}

func TestNewClient(t *testing.T) {
	t.Run("does not dial until used", func(t *testing.T) {
		srv := miniredis.RunT(t)
		port, err := strconv.Atoi(srv.Port())
		require.NoError(t, err)
		srv.Close()

		client := NewClient(&config.RedisConfig{Host: srv.Host(), Port: port})
		defer client.Close()

		assert.NotNil(t, client)
		assert.Error(t, client.Ping(context.Background()).Err())
	})

	t.Run("recovers once the server is back", func(t *testing.T) {
		srv := miniredis.RunT(t)
		port, err := strconv.Atoi(srv.Port())
		require.NoError(t, err)
		addr := srv.Addr()
		srv.Close()

		client := NewClient(&config.RedisConfig{Host: srv.Host(), Port: port})
		defer client.Close()
		require.Error(t, client.Ping(context.Background()).Err())

		restarted := miniredis.NewMiniRedis()
		require.NoError(t, restarted.StartAddr(addr))
		defer restarted.Close()

		assert.NoError(t, client.Ping(context.Background()).Err())
	})
}
