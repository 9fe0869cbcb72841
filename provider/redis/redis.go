package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	pr "github.com/unkn0wn-root/b64frame/provider"
)

var ErrNilClient = errors.New("redis provider: nil client")

// Redis shares memo entries between processes reading the same files.
type Redis struct {
	rdb         goredis.UniversalClient
	closeClient bool
	maxValue    int
}

var _ pr.Provider = (*Redis)(nil)

type Config struct {
	Client      goredis.UniversalClient
	CloseClient bool // set true only if this provider exclusively owns the client
	MaxValue    int  // entries larger than this are rejected (ok=false); 0 => 32 MiB
}

func New(cfg Config) (*Redis, error) {
	if cfg.Client == nil {
		return nil, ErrNilClient
	}
	maxValue := cfg.MaxValue
	if maxValue <= 0 {
		maxValue = 32 << 20
	}
	return &Redis{rdb: cfg.Client, closeClient: cfg.CloseClient, maxValue: maxValue}, nil
}

func (p *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := p.rdb.Get(ctx, key).Bytes()
	if err == goredis.Nil {
		return nil, false, nil // miss
	}
	if err != nil {
		return nil, false, err // transport/server error
	}
	return b, true, nil
}

func (p *Redis) Set(ctx context.Context, key string, value []byte, _ int64, ttl time.Duration) (bool, error) {
	if len(value) > p.maxValue {
		return false, nil
	}
	if ttl <= 0 {
		ttl = 0 // non-positive TTLs mean "no expiry"
	}
	if err := p.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		return false, err
	}
	return true, nil
}

func (p *Redis) Del(ctx context.Context, key string) error {
	return p.rdb.Del(ctx, key).Err()
}

// Close releases the underlying redis client only when this provider owns it.
// Safe to call multiple times; repeated calls become no-ops.
func (p *Redis) Close(context.Context) error {
	if p.closeClient {
		if err := p.rdb.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
			return err
		}
	}
	return nil
}
