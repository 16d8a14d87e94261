package store

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/watchcharts/chartkit/codec"
	"github.com/watchcharts/chartkit/format"
	"github.com/watchcharts/chartkit/internal/hash"
	"github.com/watchcharts/chartkit/series"
)

// DefaultKeyPrefix is prepended to every Redis key written by RedisStore.
const DefaultKeyPrefix = "chartkit:original:"

// RedisConfig holds Redis connection and payload settings.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`

	// KeyPrefix defaults to DefaultKeyPrefix.
	KeyPrefix string `yaml:"keyPrefix"`
	// TTL of stored series; 0 keeps them until deleted.
	TTL time.Duration `yaml:"ttl"`
	// Compression applied to payloads; the zero value means none.
	Compression format.CompressionType `yaml:"compression"`
}

// RedisStore stores original series in Redis. Keys are the xxHash64 of the dataset id,
// so arbitrary ids map to fixed-width keys.
type RedisStore struct {
	rdb    redis.UniversalClient
	cfg    RedisConfig
	logger *log.Entry
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore connects to Redis and verifies the connection with PING.
func NewRedisStore(ctx context.Context, cfg RedisConfig, logger *log.Entry) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, errors.Wrapf(err, "connect to redis at %s", cfg.Addr)
	}

	return NewRedisStoreWithClient(rdb, cfg, logger), nil
}

// NewRedisStoreWithClient wraps an existing client. A nil logger uses the standard logrus logger.
func NewRedisStoreWithClient(rdb redis.UniversalClient, cfg RedisConfig, logger *log.Entry) *RedisStore {
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = DefaultKeyPrefix
	}
	if cfg.Compression == 0 {
		cfg.Compression = format.CompressionNone
	}
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}

	return &RedisStore{
		rdb:    rdb,
		cfg:    cfg,
		logger: logger.WithField("component", "redis-store"),
	}
}

// Close closes the underlying client.
func (r *RedisStore) Close() error {
	return r.rdb.Close()
}

// Key returns the Redis key used for dataset id.
func (r *RedisStore) Key(id string) string {
	return r.cfg.KeyPrefix + hash.Key(id)
}

// Save implements Store.
func (r *RedisStore) Save(ctx context.Context, id string, s series.Series) error {
	payload, err := codec.Encode(s, codec.WithCompression(r.cfg.Compression))
	if err != nil {
		return errors.Wrapf(err, "encode series %q", id)
	}

	if err := r.rdb.Set(ctx, r.Key(id), payload, r.cfg.TTL).Err(); err != nil {
		return errors.Wrapf(err, "save series %q", id)
	}

	r.logger.WithFields(log.Fields{
		"dataset": id,
		"points":  len(s),
		"bytes":   len(payload),
	}).Debug("stashed original series")

	return nil
}

// Load implements Store.
func (r *RedisStore) Load(ctx context.Context, id string) (series.Series, bool, error) {
	payload, err := r.rdb.Get(ctx, r.Key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "load series %q", id)
	}

	s, err := codec.Decode(payload)
	if err != nil {
		return nil, false, errors.Wrapf(err, "decode series %q", id)
	}

	return s, true, nil
}

// Delete implements Store.
func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.rdb.Del(ctx, r.Key(id)).Err(); err != nil {
		return errors.Wrapf(err, "delete series %q", id)
	}

	return nil
}
