package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/geocoder89/infohub/internal/store"
	"github.com/redis/go-redis/v9"
)

type Store struct {
	redisdb *redis.Client
}

type Config struct {
	Addr     string
	Password string
	DB       int
}

func New(cfg Config) *Store {
	redisdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	return &Store{redisdb: redisdb}
}

// this ping function checks redis connectivity

func (s *Store) Ping(ctx context.Context) error {
	return s.redisdb.Ping(ctx).Err()
}

func (s *Store) Close() error {
	return s.redisdb.Close()
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, err := s.redisdb.Get(ctx, key).Bytes()

	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}

		return nil, false, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}

	return v, true, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	err := s.redisdb.Set(ctx, key, value, 0).Err()

	if err != nil {
		return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	err := s.redisdb.Del(ctx, key).Err()

	if err != nil {
		return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}

	return nil
}
