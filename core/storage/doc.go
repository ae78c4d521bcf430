// Package storage wraps the MinIO Go client for the public asset sync.
//
// Studio projects read static files (fonts, footage, audio) from their public
// directory. Teams keep those files in an S3-compatible bucket; this package
// provides the narrow Client the sync needs, and core/storage/mocks provides a
// testify mock of it.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
