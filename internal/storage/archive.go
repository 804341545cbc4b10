package storage

import (
	"context"
	"deepdetect/internal/config"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

var TimeNow = time.Now

// S3Archive keeps analysed images in an S3 compatible bucket and hands out
// presigned links to them.
type S3Archive struct {
	bucket    string
	client    ObjectPutter
	presigner ObjectPresigner
}

func NewS3Archive(client ObjectPutter, presigner ObjectPresigner, bucket string) *S3Archive {
	return &S3Archive{
		bucket:    bucket,
		client:    client,
		presigner: presigner,
	}
}

// NewS3ArchiveFromConfig builds the S3 clients from static credentials. A custom
// endpoint switches to path-style addressing for MinIO and friends.
func NewS3ArchiveFromConfig(ctx context.Context, cfg config.S3) (*S3Archive, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return NewS3Archive(client, s3.NewPresignClient(client), cfg.Bucket), nil
}

// Store uploads body under a fresh key and returns a presigned GET URL for it.
func (a *S3Archive) Store(ctx context.Context, name, contentType string, body io.Reader, size int64) (string, error) {
	key := objectKey(name)

	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(a.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put object %q: %w", key, err)
	}

	req, err := a.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", fmt.Errorf("presign object %q: %w", key, err)
	}

	return req.URL, nil
}

func objectKey(name string) string {
	ext := strings.ToLower(path.Ext(name))
	d := TimeNow().UTC()
	return fmt.Sprintf("images/%d/%02d/%02d/%s%s", d.Year(), d.Month(), d.Day(), uuid.NewString(), ext)
}
