package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

//go:generate mockgen -destination=../mocks/mock_storage.go -package=pkgmocks github.com/chromacraft/chromacraft/pkg/storage BlobStorage

// PutResult describes a stored object
type PutResult struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// BlobStorage stores uploaded files by key and returns a durable public URL
type BlobStorage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (*PutResult, error)
}

// Config holds the configuration for S3-compatible storage
type Config struct {
	Endpoint       string
	Region         string
	Bucket         string
	AccessKey      string
	SecretKey      string
	PublicBaseURL  string
	ForcePathStyle bool
}

// S3Storage implements BlobStorage backed by an S3-compatible bucket
type S3Storage struct {
	config   *Config
	uploader *s3manager.Uploader
}

// NewS3Storage creates a new S3 storage client
func NewS3Storage(config *Config) (*S3Storage, error) {
	awsConfig := &aws.Config{
		Region: aws.String(config.Region),
	}
	if config.Endpoint != "" {
		awsConfig.Endpoint = aws.String(config.Endpoint)
	}
	if config.AccessKey != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(config.AccessKey, config.SecretKey, "")
	}
	if config.ForcePathStyle {
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &S3Storage{
		config:   config,
		uploader: s3manager.NewUploader(sess),
	}, nil
}

// Put uploads the object and returns its key and public URL
func (s *S3Storage) Put(ctx context.Context, key string, data []byte, contentType string) (*PutResult, error) {
	_, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(s.config.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload object %s: %w", key, err)
	}

	return &PutResult{
		Key: key,
		URL: s.publicURL(key),
	}, nil
}

func (s *S3Storage) publicURL(key string) string {
	base := s.config.PublicBaseURL
	if base == "" {
		base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", s.config.Bucket, s.config.Region)
	}
	return strings.TrimSuffix(base, "/") + "/" + key
}

// MemoryStorage is an in-memory BlobStorage for development and tests
type MemoryStorage struct {
	mu      sync.RWMutex
	objects map[string][]byte
	baseURL string
}

// NewMemoryStorage creates a new in-memory storage
func NewMemoryStorage(baseURL string) *MemoryStorage {
	return &MemoryStorage{
		objects: make(map[string][]byte),
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// Put stores the object in memory
func (s *MemoryStorage) Put(ctx context.Context, key string, data []byte, contentType string) (*PutResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf := make([]byte, len(data))
	copy(buf, data)
	s.objects[key] = buf

	return &PutResult{
		Key: key,
		URL: s.baseURL + "/" + key,
	}, nil
}

// Get returns a stored object, for tests
func (s *MemoryStorage) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.objects[key]
	return data, ok
}
