// Package objectstore stores generated shipping documents (labels,
// manifests, packing lists) and hands back URLs for them.
package objectstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"marketplace-integrations/config"
	"marketplace-integrations/internal/core/ports"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

const defaultPresignExpiry = 7 * 24 * time.Hour

var _ ports.DocumentStore = (*S3Store)(nil)

// S3Store writes documents to an S3-compatible bucket and returns presigned
// download URLs.
type S3Store struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
	expiry  time.Duration
	log     zerolog.Logger
}

// NewS3Store builds the store. An empty endpoint uses the AWS default for
// the region.
func NewS3Store(ctx context.Context, cfg config.StorageConfig, log zerolog.Logger) (*S3Store, error) {
	switch {
	case cfg.Bucket == "":
		return nil, errors.New("storage bucket is required")
	case cfg.AccessKey == "" || cfg.SecretKey == "":
		return nil, errors.New("storage access key and secret key are required")
	}

	region := cfg.Region
	if region == "" {
		region = "eu-central-1"
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if cfg.Endpoint != "" {
			endpoint := cfg.Endpoint
			if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
				endpoint = "https://" + endpoint
			}
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	expiry := cfg.PresignExpiry
	if expiry <= 0 {
		expiry = defaultPresignExpiry
	}

	return &S3Store{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  cfg.Bucket,
		expiry:  expiry,
		log:     log.With().Str("component", "objectstore").Logger(),
	}, nil
}

// Put uploads body under key and returns a presigned GET URL.
func (s *S3Store) Put(ctx context.Context, key, contentType string, body []byte) (string, error) {
	if key == "" {
		return "", errors.New("storage key is required")
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		return "", fmt.Errorf("uploading %s: %w", key, err)
	}

	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.expiry))
	if err != nil {
		return "", fmt.Errorf("presigning %s: %w", key, err)
	}

	s.log.Debug().Str("key", key).Int("bytes", len(body)).Msg("document stored")
	return req.URL, nil
}

// Bucket returns the configured bucket name.
func (s *S3Store) Bucket() string {
	return s.bucket
}
