package notify

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/redis/go-redis/v9"

	"github.com/bluebubbles/helpers"
)

// RedisOptions configures a RedisTray.
type RedisOptions struct {
	// URL is the Redis connection string (e.g., "redis://localhost:6379").
	URL string

	// KeyPrefix namespaces the tray's keys. Defaults to "helpers:notify".
	KeyPrefix string

	// TLS configuration for secure connections.
	TLS *tls.Config

	// ConnectTimeout is the maximum time to wait for connection establishment.
	ConnectTimeout time.Duration

	// ReadTimeout is the maximum time to wait for read operations.
	ReadTimeout time.Duration

	// WriteTimeout is the maximum time to wait for write operations.
	WriteTimeout time.Duration
}

// redisEnv is the environment form of RedisOptions.
type redisEnv struct {
	URL            string        `env:"HELPERS_REDIS_URL" envDefault:"redis://localhost:6379"`
	KeyPrefix      string        `env:"HELPERS_REDIS_KEY_PREFIX" envDefault:"helpers:notify"`
	ConnectTimeout time.Duration `env:"HELPERS_REDIS_CONNECT_TIMEOUT" envDefault:"5s"`
	ReadTimeout    time.Duration `env:"HELPERS_REDIS_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout   time.Duration `env:"HELPERS_REDIS_WRITE_TIMEOUT" envDefault:"5s"`
}

// LoadRedisOptions reads RedisOptions from HELPERS_REDIS_* environment
// variables. TLS is never read from the environment.
func LoadRedisOptions() (RedisOptions, error) {
	var e redisEnv
	if err := env.Parse(&e); err != nil {
		return RedisOptions{}, helpers.NewConfigurationError("notify.LoadRedisOptions", fmt.Errorf("parse env: %w", err))
	}

	return RedisOptions{
		URL:            e.URL,
		KeyPrefix:      e.KeyPrefix,
		ConnectTimeout: e.ConnectTimeout,
		ReadTimeout:    e.ReadTimeout,
		WriteTimeout:   e.WriteTimeout,
	}, nil
}

// RedisTray is a Tray stored in a Redis hash, one field per notification key.
type RedisTray struct {
	client *redis.Client
	key    string
	now    func() time.Time
}

// NewRedisTray connects to Redis and returns a tray.
func NewRedisTray(opts RedisOptions) (*RedisTray, error) {
	if opts.URL == "" {
		opts.URL = "redis://localhost:6379"
	}

	if opts.KeyPrefix == "" {
		opts.KeyPrefix = "helpers:notify"
	}

	if opts.ConnectTimeout == 0 {
		opts.ConnectTimeout = 5 * time.Second
	}

	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 5 * time.Second
	}

	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = 5 * time.Second
	}

	redisOpts, err := redis.ParseURL(opts.URL)
	if err != nil {
		return nil, helpers.NewConfigurationError("notify.NewRedisTray", fmt.Errorf("failed to parse Redis URL: %w", err))
	}

	redisOpts.TLSConfig = opts.TLS
	redisOpts.DialTimeout = opts.ConnectTimeout
	redisOpts.ReadTimeout = opts.ReadTimeout
	redisOpts.WriteTimeout = opts.WriteTimeout

	client := redis.NewClient(redisOpts)

	ctx, cancel := context.WithTimeout(context.Background(), opts.ConnectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, helpers.NewPlatformError("notify.NewRedisTray",
			fmt.Errorf("failed to connect to Redis: %w: %w", helpers.ErrTrayUnavailable, err))
	}

	return &RedisTray{
		client: client,
		key:    opts.KeyPrefix + ":active",
		now:    time.Now,
	}, nil
}

// Post stores n and returns the stored entry. An empty Key gets a random one
// and a zero PostedAt gets the current time.
func (t *RedisTray) Post(ctx context.Context, n Notification) (Notification, error) {
	n = stamp(n, t.now)

	data, err := json.Marshal(n)
	if err != nil {
		return Notification{}, fmt.Errorf("failed to marshal notification: %w", err)
	}

	if err := t.client.HSet(ctx, t.key, n.Key, data).Err(); err != nil {
		return Notification{}, helpers.NewPlatformError("notify.RedisTray.Post", fmt.Errorf("failed to store notification %s: %w", n.Key, err))
	}

	return n, nil
}

// Cancel removes every entry with the given ID.
func (t *RedisTray) Cancel(ctx context.Context, id int) error {
	active, err := t.Active(ctx)
	if err != nil {
		return err
	}

	var keys []string
	for _, n := range active {
		if n.ID == id {
			keys = append(keys, n.Key)
		}
	}
	if len(keys) == 0 {
		return nil
	}

	if err := t.client.HDel(ctx, t.key, keys...).Err(); err != nil {
		return helpers.NewPlatformError("notify.RedisTray.Cancel", fmt.Errorf("failed to cancel notification %d: %w", id, err))
	}
	return nil
}

// Active implements Tray.
func (t *RedisTray) Active(ctx context.Context) ([]Notification, error) {
	entries, err := t.client.HGetAll(ctx, t.key).Result()
	if err != nil {
		return nil, helpers.NewPlatformError("notify.RedisTray.Active", fmt.Errorf("failed to list notifications: %w", err))
	}

	list := make([]Notification, 0, len(entries))
	for key, raw := range entries {
		var n Notification
		if err := json.Unmarshal([]byte(raw), &n); err != nil {
			return nil, helpers.NewPlatformError("notify.RedisTray.Active", fmt.Errorf("failed to unmarshal notification %s: %w", key, err))
		}
		list = append(list, n)
	}

	sortNotifications(list)
	return list, nil
}

// CancelAll implements Tray.
func (t *RedisTray) CancelAll(ctx context.Context) error {
	if err := t.client.Del(ctx, t.key).Err(); err != nil {
		return helpers.NewPlatformError("notify.RedisTray.CancelAll", fmt.Errorf("failed to clear notifications: %w", err))
	}
	return nil
}

// Close closes the Redis connection.
func (t *RedisTray) Close() error {
	return t.client.Close()
}
