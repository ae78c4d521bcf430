package assets

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"studio-launcher/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Report summarizes one sync run.
type Report struct {
	Downloaded []string          `json:"downloaded"`
	Skipped    []string          `json:"skipped"`
	Failed     map[string]string `json:"failed"`
}

// Syncer mirrors a bucket prefix into a project's public directory.
type Syncer struct {
	client storage.Client
	bucket string
	prefix string
	logger *zap.Logger
}

// NewSyncer creates a syncer for the objects under prefix in bucket.
func NewSyncer(client storage.Client, bucket, prefix string, logger *zap.Logger) *Syncer {
	return &Syncer{client: client, bucket: bucket, prefix: prefix, logger: logger}
}

// Sync downloads every object whose local copy is missing or has a different size.
// Per-object failures are collected in the report; listing failures abort.
func (s *Syncer) Sync(ctx context.Context, destDir string) (*Report, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", s.bucket)
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create public directory: %w", err)
	}

	report := &Report{Downloaded: []string{}, Skipped: []string{}, Failed: map[string]string{}}
	objects := s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: s.prefix, Recursive: true})
	for obj := range objects {
		if obj.Err != nil {
			return report, fmt.Errorf("failed to list objects: %w", obj.Err)
		}
		if strings.HasSuffix(obj.Key, "/") {
			continue
		}

		local, err := localPath(destDir, s.prefix, obj.Key)
		if err != nil {
			report.Failed[obj.Key] = err.Error()
			continue
		}

		if info, err := os.Stat(local); err == nil && info.Size() == obj.Size {
			report.Skipped = append(report.Skipped, obj.Key)
			continue
		}

		if err := s.download(ctx, obj.Key, local); err != nil {
			s.logger.Warn("Asset download failed", zap.String("key", obj.Key), zap.Error(err))
			report.Failed[obj.Key] = err.Error()
			continue
		}
		report.Downloaded = append(report.Downloaded, obj.Key)
	}

	s.logger.Info("Public assets synced",
		zap.String("bucket", s.bucket),
		zap.String("prefix", s.prefix),
		zap.Int("downloaded", len(report.Downloaded)),
		zap.Int("skipped", len(report.Skipped)),
		zap.Int("failed", len(report.Failed)),
	)
	return report, nil
}

func (s *Syncer) download(ctx context.Context, key, local string) error {
	if err := os.MkdirAll(filepath.Dir(local), 0o755); err != nil {
		return err
	}

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return err
	}
	defer obj.Close()

	// Write beside the target and rename so the studio never serves half a file.
	tmp, err := os.CreateTemp(filepath.Dir(local), ".sync-*")
	if err != nil {
		return err
	}
	if _, err := io.Copy(tmp, obj); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), local)
}

// localPath maps an object key below prefix into destDir, refusing keys that escape it.
func localPath(destDir, prefix, key string) (string, error) {
	rel := filepath.Clean(filepath.FromSlash(strings.TrimPrefix(key, prefix)))
	if rel == "." || rel == ".." || filepath.IsAbs(rel) || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("object key %q escapes the public directory", key)
	}
	return filepath.Join(destDir, rel), nil
}
