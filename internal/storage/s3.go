package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"path"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/humidorlog/humidor/internal/config"
)

// ErrIncompleteS3Config is returned when the S3 configuration is incomplete
var ErrIncompleteS3Config = errors.New("incomplete S3 configuration")

// S3Store keeps images in an S3-compatible bucket.
type S3Store struct {
	client  *s3.Client
	bucket  string
	timeout time.Duration
}

func NewS3Store(cfg config.S3Config) (*S3Store, error) {
	if !cfg.Configured() {
		return nil, ErrIncompleteS3Config
	}

	client := s3.New(s3.Options{
		UsePathStyle: true,
		BaseEndpoint: aws.String(cfg.Endpoint),
		Region:       cfg.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.KeyID, cfg.AccessKey, ""),
		),
	})

	timeout, err := time.ParseDuration(cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid S3 timeout value: %w", err)
	}

	return &S3Store{
		client:  client,
		bucket:  cfg.Bucket,
		timeout: timeout,
	}, nil
}

func (s *S3Store) Save(filename string, data []byte, folder string) (string, error) {
	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".jpg"
	}
	key := path.Join(folder, uuid.NewString()+ext)

	uploader := manager.NewUploader(s.client)

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	result, err := uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(http.DetectContentType(data)),
	})
	if err != nil {
		var mu manager.MultiUploadFailure
		if errors.As(err, &mu) {
			log.Errorf("multi-upload failure (upload_id: %s): %v", mu.UploadID(), mu)
			return "", fmt.Errorf("multi-upload failure (upload_id: %s): %w", mu.UploadID(), mu)
		}
		log.WithError(err).Error("upload failure")
		return "", fmt.Errorf("upload failure: %w", err)
	}

	log.WithField("location", result.Location).Info("uploaded image to s3 bucket")
	return result.Location, nil
}
