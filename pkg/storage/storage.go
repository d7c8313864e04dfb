// Package storage abstracts where uploaded image assets live. Drivers
// implement Storager for S3 and the local filesystem.
package storage

import (
	"io"
	"time"

	"github.com/haierkeys/second-brain-service/pkg/code"
	"github.com/haierkeys/second-brain-service/pkg/storage/aws_s3"
	"github.com/haierkeys/second-brain-service/pkg/storage/local_fs"
)

type Type = string

const S3 Type = "s3"
const LOCAL Type = "localfs"

var StorageTypeMap = map[Type]bool{
	S3:    true,
	LOCAL: true,
}

// Config Unified storage configuration
type Config struct {
	Type Type `yaml:"type"`

	// Common settings
	CustomPath string `yaml:"custom-path"`

	// S3
	Region          string `yaml:"region"`
	BucketName      string `yaml:"bucket-name"`
	AccessKeyID     string `yaml:"access-key-id"`
	AccessKeySecret string `yaml:"access-key-secret"`

	// Local FS
	SavePath      string `yaml:"save-path"`
	PublicBaseURL string `yaml:"public-base-url"`
}

// Storager is the asset backend. SendFile returns the final object key
// (custom-path included), ListKeys resolves prefix the same way and
// returns final keys, PublicURL maps a key to the URL stored on image
// records, and KeyFromURL inverts that mapping for deletes.
type Storager interface {
	SendFile(fileKey string, file io.Reader, contentType string) (string, error)
	Delete(fileKey string) error
	ListKeys(prefix string) ([]string, error)
	ModTime(fileKey string) (time.Time, error)
	PublicURL(fileKey string) string
	KeyFromURL(url string) (string, bool)
}

func NewClient(config *Config) (Storager, error) {
	if config == nil {
		return nil, code.ErrorInvalidStorageType
	}

	switch config.Type {
	case LOCAL:
		cfg := &local_fs.Config{
			SavePath:      config.SavePath,
			CustomPath:    config.CustomPath,
			PublicBaseURL: config.PublicBaseURL,
		}
		return local_fs.NewClient(cfg)
	case S3:
		cfg := &aws_s3.Config{
			Region:          config.Region,
			BucketName:      config.BucketName,
			AccessKeyID:     config.AccessKeyID,
			AccessKeySecret: config.AccessKeySecret,
			CustomPath:      config.CustomPath,
		}
		return aws_s3.NewClient(cfg)
	}
	return nil, code.ErrorInvalidStorageType
}
