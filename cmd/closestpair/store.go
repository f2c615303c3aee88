package main

import (
	"context"
	"fmt"

	"github.com/hupe1980/closestpair/blobstore"
	minioblob "github.com/hupe1980/closestpair/blobstore/minio"
	s3blob "github.com/hupe1980/closestpair/blobstore/s3"
)

func openStore(ctx context.Context, sc StoreConfig) (blobstore.BlobStore, error) {
	switch sc.Type {
	case "", "local":
		path := sc.Path
		if path == "" {
			path = "."
		}
		return blobstore.NewLocalStore(path), nil
	case "s3":
		opts := []s3blob.Option{s3blob.WithPrefix(sc.Prefix)}
		if sc.Region != "" {
			opts = append(opts, s3blob.WithRegion(sc.Region))
		}
		if sc.Endpoint != "" {
			opts = append(opts, s3blob.WithEndpoint(sc.Endpoint))
		}
		return s3blob.New(ctx, sc.Bucket, opts...)
	case "minio":
		return minioblob.New(sc.Endpoint, sc.Bucket, minioblob.Config{
			AccessKey: sc.AccessKey,
			SecretKey: sc.SecretKey,
			Region:    sc.Region,
			Secure:    sc.Secure,
			Prefix:    sc.Prefix,
		})
	default:
		return nil, fmt.Errorf("unknown store type %q", sc.Type)
	}
}
