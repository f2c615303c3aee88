// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("pointsets/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	blob, err := store.Open(ctx, "daily/2026-10-18.cpts")
//
// # Features
//
//   - Range reads for partial fetches
//   - Managed (multipart) uploads for large point sets
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
