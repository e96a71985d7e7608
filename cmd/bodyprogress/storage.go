package main

import (
	"context"
	"fmt"
	"io"
	"time"

	log "github.com/sirupsen/logrus"

	"bodyprogress/internal/adapter/cache"
	"bodyprogress/internal/adapter/file"
	"bodyprogress/internal/adapter/memory"
	"bodyprogress/internal/adapter/postgres"
	"bodyprogress/internal/adapter/rediskv"
	"bodyprogress/internal/config"
	"bodyprogress/internal/domain"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openStorage builds the configured key-value backend, optionally behind an
// in-process cache. The closer releases backend connections.
func openStorage(ctx context.Context, cfg *config.Config) (domain.KeyValueStore, io.Closer, error) {
	var (
		kv     domain.KeyValueStore
		closer io.Closer = nopCloser{}
	)

	switch cfg.Storage {
	case config.StorageMemory:
		log.Warnln("memory storage: data will not survive a restart")
		kv = memory.New()

	case config.StorageFile:
		fs, err := file.New(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		log.Infof("file storage in %s", fs.Dir())
		kv = fs

	case config.StoragePostgres:
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("postgres: %w", err)
		}
		log.Infoln("postgres storage connected")
		kv, closer = db, db

	case config.StorageRedis:
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		rs, err := rediskv.Open(pingCtx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.RedisPrefix)
		if err != nil {
			return nil, nil, fmt.Errorf("redis: %w", err)
		}
		log.Infof("redis storage at %s", cfg.RedisAddr)
		kv, closer = rs, rs

	default:
		return nil, nil, fmt.Errorf("unknown storage %q", cfg.Storage)
	}

	if cfg.CacheSizeMB > 0 {
		log.Infof("read cache enabled: %d MB", cfg.CacheSizeMB)
		kv = cache.New(kv, cfg.CacheSizeMB<<20)
	}
	return kv, closer, nil
}
