// Package upload persists rendered reports to object storage.
package upload

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config locates the destination bucket.
type S3Config struct {
	Bucket string
	Region string
	Prefix string
}

// S3Uploader stores PDFs in an S3 bucket under an optional key prefix.
type S3Uploader struct {
	client *s3.Client
	config S3Config
}

// NewS3Uploader builds an uploader from the default AWS credential chain.
func NewS3Uploader(ctx context.Context, config S3Config) (*S3Uploader, error) {
	if config.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(config.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return &S3Uploader{
		client: s3.NewFromConfig(awsCfg),
		config: config,
	}, nil
}

// Upload stores the report and returns its s3:// location.
func (u *S3Uploader) Upload(ctx context.Context, filename string, body []byte) (string, error) {
	key := path.Join(u.config.Prefix, filename)

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.config.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to put object %q: %w", key, err)
	}

	return fmt.Sprintf("s3://%s/%s", u.config.Bucket, key), nil
}
