// Package s3 stores proof-of-delivery artifacts in an S3 bucket.
package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var _ ports.ProofStorage = (*ProofStorage)(nil)

// PutObjectAPI is the part of the S3 client the storage needs.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type Config struct {
	Region string
	Bucket string
	// Endpoint overrides the AWS endpoint, e.g. for MinIO. Path-style
	// addressing is used when it is set.
	Endpoint string
	// PublicBaseURL prefixes object keys in returned URLs. Defaults to the
	// virtual-hosted bucket URL.
	PublicBaseURL string
}

type ProofStorage struct {
	client  PutObjectAPI
	bucket  string
	baseURL string
	logger  *slog.Logger
}

// NewProofStorage loads the default AWS credential chain.
func NewProofStorage(ctx context.Context, cfg Config, logger *slog.Logger) (*ProofStorage, error) {
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, errs.NewValueIsRequiredError("bucket")
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return NewProofStorageWithClient(client, cfg, logger), nil
}

func NewProofStorageWithClient(client PutObjectAPI, cfg Config, logger *slog.Logger) *ProofStorage {
	return &ProofStorage{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: publicBaseURL(cfg),
		logger:  logger.With("component", "proof_storage", "bucket", cfg.Bucket),
	}
}

// Upload writes body under key and returns the object's public URL.
func (s *ProofStorage) Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	key = strings.TrimLeft(key, "/")
	if key == "" {
		return "", errs.NewValueIsRequiredError("key")
	}

	// Unsigned payloads need a seekable body.
	if _, ok := body.(io.ReadSeeker); !ok {
		data, err := io.ReadAll(body)
		if err != nil {
			return "", fmt.Errorf("read artifact %s: %w", key, err)
		}
		body = bytes.NewReader(data)
		size = int64(len(data))
	}

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if size > 0 {
		input.ContentLength = aws.Int64(size)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		if errors.Is(err, context.Canceled) {
			return "", err
		}
		s.logger.Error("unable to upload artifact", "key", key, "error", err)
		return "", errs.NewStoreFailureError("upload proof artifact", err)
	}

	url := s.baseURL + "/" + key
	s.logger.Info("artifact uploaded", "key", key, "size", size)
	return url, nil
}

func publicBaseURL(cfg Config) string {
	switch {
	case cfg.PublicBaseURL != "":
		return strings.TrimRight(cfg.PublicBaseURL, "/")
	case cfg.Endpoint != "":
		return strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	case cfg.Region != "":
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	default:
		return fmt.Sprintf("https://%s.s3.amazonaws.com", cfg.Bucket)
	}
}
