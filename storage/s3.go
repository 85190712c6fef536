package storage

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/spf13/viper"
)

// S3 stores uploads in a public bucket and serves them by redirecting to
// the bucket's public URL.
type S3 struct {
	client    *s3.Client
	uploader  *manager.Uploader
	bucket    *string
	publicURL string
}

func NewS3(ctx context.Context) (*S3, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			viper.GetString("s3.access_key_id"),
			viper.GetString("s3.secret_access_key"),
			"",
		)),
	)
	if err != nil {
		return nil, err
	}

	bucket := aws.String(viper.GetString("s3.bucket"))

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.Region = viper.GetString("s3.region")
	})

	_, err = client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: bucket})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "NotFound" {
			return nil, fmt.Errorf("bucket '%s' does not exist", *bucket)
		}
		return nil, fmt.Errorf("failed to check if bucket exists, %w", err)
	}

	return &S3{
		client: client,
		uploader: manager.NewUploader(client, func(u *manager.Uploader) {
			u.Concurrency = 5
			u.PartSize = 5 << 20
		}),
		bucket:    bucket,
		publicURL: strings.TrimSuffix(viper.GetString("s3.public_url"), "/"),
	}, nil
}

func (s *S3) Save(ctx context.Context, fh *multipart.FileHeader, name string) (string, error) {
	name = filepath.Base(name)

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	ct := fh.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/octet-stream"
	}

	// The uploader switches to multipart parts for large files on its own.
	_, err = s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:        s.bucket,
		Key:           &name,
		Body:          src,
		ContentLength: &fh.Size,
		ContentType:   &ct,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file to S3, %w", err)
	}
	return PublicPath(name), nil
}

// Resolve never consults the bucket: missing objects surface as a 404 from
// the bucket itself after the redirect.
func (s *S3) Resolve(name string) (Location, error) {
	name = filepath.Base(name)
	if name == "." || name == "/" {
		return Location{}, ErrNotExist
	}
	return Location{RedirectURL: s.publicURL + "/" + name}, nil
}

func (s *S3) Remove(ctx context.Context, name string) error {
	name = filepath.Base(name)
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: s.bucket,
		Key:    &name,
	})
	return err
}
