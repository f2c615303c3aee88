// Package minio provides a BlobStore implementation using the MinIO client.
//
// It works against MinIO and other S3-compatible systems such as Ceph,
// SeaweedFS and Garage, without pulling in the AWS SDK.
//
// # Basic Usage
//
//	store, err := minioblob.New("localhost:9000", "pointsets", minioblob.Config{
//	    AccessKey: "minioadmin",
//	    SecretKey: "minioadmin",
//	    Prefix:    "inputs/",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	blob, err := store.Open(ctx, "grid.cpts")
package minio
