// Package blobstore provides storage abstraction for point-set files.
//
// BlobStore is the interface for reading and writing named, immutable point
// sets. Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem with mmap reads
//   - MemoryStore: in-process map, mainly for tests
//   - s3.Store: Amazon S3 with range reads and managed uploads
//   - minio.Store: MinIO and other S3-compatible services
//
// # Reading
//
//	blob, err := store.Open(ctx, "sets/a.cpts")
//	defer blob.Close()
//	r := blobstore.NewReader(ctx, blob)
//
// Blobs that also implement Mappable expose their bytes without copying.
package blobstore
