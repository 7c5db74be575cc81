package helpers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestIsCacheMiss(t *testing.T) {
	require.True(t, isCacheMiss(redis.Nil))
	require.True(t, isCacheMiss(fmt.Errorf("lookup registration:citizen:42: %w", redis.Nil)))
	require.False(t, isCacheMiss(nil))
	require.False(t, isCacheMiss(errors.New("connection refused")))
}
