// Where: internal/infra/publish/aws_factory.go
// What: AWS S3 client factory for mirroring fetched modules.
// Why: Encapsulate SDK configuration for AWS and S3-compatible endpoints.
package publish

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/aserranoni/kda-module-fetcher/internal/infra/envutil"
)

const (
	defaultAWSRegion   = "us-east-1"
	moduleContentType  = "text/plain; charset=utf-8"
	accessKeyEnvSuffix = "S3_ACCESS_KEY"
	secretKeyEnvSuffix = "S3_SECRET_KEY"
)

var errS3ClientNil = errors.New("s3 client is nil")

// ClientOptions configures the S3 client.
type ClientOptions struct {
	Region   string
	Endpoint string
}

// NewS3 builds an S3API from the default AWS credential chain. Static
// credentials from KDA_FETCH_S3_ACCESS_KEY/KDA_FETCH_S3_SECRET_KEY take
// precedence, and a custom endpoint switches to path-style addressing.
func NewS3(ctx context.Context, opts ClientOptions) (S3API, error) {
	region := strings.TrimSpace(opts.Region)
	if region == "" {
		region = os.Getenv("AWS_REGION")
	}
	if region == "" {
		region = defaultAWSRegion
	}

	loaders := []func(*config.LoadOptions) error{config.WithRegion(region)}
	accessKey := envutil.GetHostEnv(accessKeyEnvSuffix)
	secretKey := envutil.GetHostEnv(secretKeyEnvSuffix)
	if accessKey != "" && secretKey != "" {
		loaders = append(loaders, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loaders...)
	if err != nil {
		return nil, err
	}

	endpoint := strings.TrimSpace(opts.Endpoint)
	client := s3.NewFromConfig(cfg, func(options *s3.Options) {
		if endpoint != "" {
			options.BaseEndpoint = aws.String(endpoint)
			options.UsePathStyle = true
		}
	})
	return awsS3Client{client: client}, nil
}

type awsS3Client struct {
	client *s3.Client
}

func (c awsS3Client) PutObject(ctx context.Context, bucket, key string, body []byte) error {
	if c.client == nil {
		return errS3ClientNil
	}
	_, err := c.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(moduleContentType),
	})
	return err
}
