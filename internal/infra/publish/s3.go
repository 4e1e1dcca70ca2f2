// Where: internal/infra/publish/s3.go
// What: Mirror written module files to an S3 bucket.
// Why: Keep a shared copy of each namespace export next to the local tree.
package publish

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/aserranoni/kda-module-fetcher/internal/domain/module"
)

var errBucketRequired = errors.New("s3 bucket is required")

// S3API is the subset of S3 used for publishing.
type S3API interface {
	PutObject(ctx context.Context, bucket, key string, body []byte) error
}

// S3Publisher uploads modules to s3://<Bucket>/<Prefix>/<namespace>/<name>.pact.
type S3Publisher struct {
	Client S3API
	Bucket string
	Prefix string
}

// Publish uploads every module and returns the object URIs in order.
// The first failed upload stops publishing.
func (p S3Publisher) Publish(ctx context.Context, namespace string, modules []module.Module) ([]string, error) {
	if p.Client == nil {
		return nil, errS3ClientNil
	}
	bucket := strings.TrimSpace(p.Bucket)
	if bucket == "" {
		return nil, errBucketRequired
	}

	uris := make([]string, 0, len(modules))
	for _, mod := range modules {
		key := ObjectKey(p.Prefix, namespace, mod.FileName())
		if err := p.Client.PutObject(ctx, bucket, key, []byte(mod.Code)); err != nil {
			return uris, fmt.Errorf("put s3://%s/%s: %w", bucket, key, err)
		}
		uris = append(uris, fmt.Sprintf("s3://%s/%s", bucket, key))
	}
	return uris, nil
}

// ObjectKey joins prefix, namespace, and file name with "/" separators.
func ObjectKey(prefix, namespace, fileName string) string {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return path.Join(namespace, fileName)
	}
	return path.Join(prefix, namespace, fileName)
}
