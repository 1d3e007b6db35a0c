package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	c, err := NewRedisCache(context.Background(), RedisConfig{Addr: mr.Addr()})
	if err != nil {
		t.Fatalf("NewRedisCache: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c, mr
}

func TestRedisCache(t *testing.T) {
	c, _ := newTestRedis(t)
	exerciseCache(t, c)
}

func TestRedisCacheTTL(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestRedis(t)

	if err := c.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatal(err)
	}
	mr.FastForward(2 * time.Minute)

	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Errorf("expired key: hit %v, err %v; want miss", hit, err)
	}
}

func TestRedisCachePurgeOnlyOwnPrefix(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestRedis(t)

	if err := mr.Set("other:key", "keep"); err != nil {
		t.Fatal(err)
	}
	_ = c.Set(ctx, "k", []byte("v"), 0)

	if err := c.Purge(ctx); err != nil {
		t.Fatal(err)
	}
	if !mr.Exists("other:key") {
		t.Error("Purge must not delete keys outside the cache prefix")
	}
	if mr.Exists(DefaultRedisPrefix + "k") {
		t.Error("Purge should delete prefixed keys")
	}
}

func TestNewRedisCacheUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if _, err := NewRedisCache(ctx, RedisConfig{Addr: "127.0.0.1:1"}); err == nil {
		t.Error("NewRedisCache should fail when the server is unreachable")
	}
}

func TestNewRedisCacheFromClientPrefix(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer client.Close()

	if c := NewRedisCacheFromClient(client, ""); c.prefix != DefaultRedisPrefix {
		t.Errorf("prefix = %q, want %q", c.prefix, DefaultRedisPrefix)
	}
	if c := NewRedisCacheFromClient(client, "x:"); c.prefix != "x:" {
		t.Errorf("prefix = %q, want %q", c.prefix, "x:")
	}
}
