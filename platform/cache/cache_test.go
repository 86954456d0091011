package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	s := miniredis.RunT(t)

	rdb, err := Open(s.Addr(), "", "", time.Second)
	require.NoError(t, err)
	defer rdb.Close()

	require.NoError(t, rdb.Set(context.Background(), "k", "v", 0).Err())
	assert.True(t, s.Exists("k"))
}

func TestOpenUnreachable(t *testing.T) {
	_, err := Open("127.0.0.1:1", "", "", 200*time.Millisecond)
	assert.Error(t, err)
}
