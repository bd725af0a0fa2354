package redisclient

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pregen/shop-api/internal/infrastructure/logger"
)

func TestNewRedisFromURL_BadURL(t *testing.T) {
	var buf bytes.Buffer

	rdb, err := NewRedisFromURL(context.Background(), "http://nope", logger.NewSlogLoggerTo(&buf, 0))

	assert.Error(t, err)
	assert.Nil(t, rdb)
}

func TestNewRedisFromURL_PingFailureGoesToAppLogger(t *testing.T) {
	var buf bytes.Buffer
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	rdb, err := NewRedisFromURL(ctx, "redis://127.0.0.1:1/0", logger.NewSlogLoggerTo(&buf, 0))

	require.NoError(t, err)
	require.NotNil(t, rdb)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "redis ping failed")

	Close(rdb, logger.NewSlogLoggerTo(&buf, 0))
}

func TestClose_NilClient(t *testing.T) {
	var buf bytes.Buffer
	Close(nil, logger.NewSlogLoggerTo(&buf, 0))
	assert.Empty(t, buf.String())
}
