// Package blobstore provides storage abstraction for embedding file blobs.
//
// BlobStore is the interface for reading and writing immutable blobs
// (pretrained table files, snapshots). Implementations must be safe for
// concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: Local filesystem with mmap-backed reads
//   - MemoryStore: In-memory store for tests
//   - CachingStore: Local mirror over a remote store
//   - s3.Store: Amazon S3 with range reads and streaming uploads
//   - minio.Store: MinIO and other S3-compatible object stores
//
// Embedding tables are parsed in a single sequential pass, so
// ReadRange(ctx, 0, Size()) is the common access pattern; ReadAt exists
// for snapshot section reads.
package blobstore
