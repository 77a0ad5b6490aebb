// Package storage provides the object storage layer behind the image router.
//
// It wraps the MinIO Go client behind the Client interface, which works
// against AWS S3 and self-hosted MinIO alike and is mocked in tests
// (core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket, combined by EnsureBucket
//   - PutObject, GetObject, StatObject, RemoveObject
//   - ListObjects (prefix/recursive)
//
// IsNotFound recognises NoSuchKey and NoSuchBucket responses.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
