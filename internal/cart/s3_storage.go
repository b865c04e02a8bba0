package cart

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/SandyBridge101/AudiophileEcommerce/internal/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/rs/zerolog"
)

// S3Client is the subset of the S3 API the cart slot needs.
type S3Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// s3Storage keeps one JSON object per cart slot in an S3 bucket.
type s3Storage struct {
	client S3Client
	bucket string
	key    string
	logger zerolog.Logger
}

// NewS3Client builds an S3 client for the given region using the default
// AWS credential chain.
func NewS3Client(ctx context.Context, region string, logger zerolog.Logger) (S3Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	logger.Info().Str("region", region).Msg("S3 cart storage initialised")
	return s3.NewFromConfig(cfg), nil
}

// NewS3Storage creates an S3-backed cart slot at bucket/prefix+key.
func NewS3Storage(client S3Client, bucket, prefix, key string, logger zerolog.Logger) Storage {
	return &s3Storage{
		client: client,
		bucket: bucket,
		key:    prefix + key + ".json",
		logger: logger.With().Str("component", "cart-s3-storage").Logger(),
	}
}

// Load reads and decodes the slot object. A missing object is an empty cart.
func (s *s3Storage) Load(ctx context.Context) ([]model.CartLineItem, error) {
	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return []model.CartLineItem{}, nil
		}
		return nil, fmt.Errorf("failed to get cart slot (bucket=%s, key=%s): %w", s.bucket, s.key, err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read cart slot %s: %w", s.key, err)
	}

	var items []model.CartLineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode cart slot %s: %w", s.key, err)
	}
	return items, nil
}

// Save encodes and uploads the full line-item sequence.
func (s *s3Storage) Save(ctx context.Context, items []model.CartLineItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode cart slot: %w", err)
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to put cart slot (bucket=%s, key=%s): %w", s.bucket, s.key, err)
	}

	s.logger.Debug().Str("key", s.key).Int("items", len(items)).Msg("cart slot saved")
	return nil
}

// Clear removes the slot object.
func (s *s3Storage) Clear(ctx context.Context) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete cart slot (bucket=%s, key=%s): %w", s.bucket, s.key, err)
	}
	return nil
}
