// Package minio implements blobstore.BlobStore for MinIO and other
// S3-compatible object stores, for deployments that keep pretrained
// embedding files on self-hosted storage.
package minio
