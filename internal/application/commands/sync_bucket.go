package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/hireline/screener-backend/internal/application/dto"
	"github.com/hireline/screener-backend/internal/infra/storage"
)

// SyncBucket pulls resume objects from the bucket into a local directory so
// the extraction pipeline can run over them.
type SyncBucket struct {
	storage *storage.Storage
}

func NewSyncBucket(s *storage.Storage) *SyncBucket {
	return &SyncBucket{storage: s}
}

func (c *SyncBucket) Execute(ctx context.Context, req dto.SyncBucketRequest) (int, error) {
	keys, err := c.storage.List(ctx, req.Prefix)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(req.DestDir, 0o755); err != nil {
		return 0, fmt.Errorf("creating %s: %w", req.DestDir, err)
	}

	count := 0
	for _, key := range keys {
		name := path.Base(key)
		if name == "." || name == "/" || name == "" {
			continue
		}
		data, err := retry(3, func() ([]byte, error) {
			return c.storage.Download(ctx, key)
		})
		if err != nil {
			slog.Warn("failed to download object after retries", "key", key, "err", err)
			continue
		}
		dest := filepath.Join(req.DestDir, name)
		if err := os.WriteFile(dest, data, 0o644); err != nil {
			return count, fmt.Errorf("writing %s: %w", dest, err)
		}
		count++
	}
	slog.Info("bucket sync finished", "objects", len(keys), "downloaded", count, "dest", req.DestDir)
	return count, nil
}

// retry retries a function up to attempts times with a short backoff.
func retry[T any](attempts int, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for i := 0; i < attempts; i++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err
		time.Sleep(time.Duration(500*(i+1)) * time.Millisecond)
	}
	return zero, fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}
