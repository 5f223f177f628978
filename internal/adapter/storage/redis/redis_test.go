package redis

import (
	"context"
	"strconv"
	"testing"

	"marketplace-integrations/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	mr, _ := newTestClient(t)

	client, err := NewClient(context.Background(), config.RedisConfig{Host: mr.Host(), Port: mustPort(t, mr.Port())}, zerolog.Nop())
	require.NoError(t, err)
	defer client.Close()

	hc := NewHealthCheck(client)
	assert.Equal(t, "redis", hc.Name())
	assert.NoError(t, hc.Ping(context.Background()))
}

func TestNewClient_Unreachable(t *testing.T) {
	mr, _ := newTestClient(t)
	port := mustPort(t, mr.Port())
	mr.Close()

	_, err := NewClient(context.Background(), config.RedisConfig{Host: "127.0.0.1", Port: port}, zerolog.Nop())
	assert.ErrorContains(t, err, "pinging redis")
}

func mustPort(t *testing.T, raw string) int {
	t.Helper()
	port, err := strconv.Atoi(raw)
	require.NoError(t, err)
	return port
}
