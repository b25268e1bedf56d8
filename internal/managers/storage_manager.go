package managers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"

	"heritage-server/internal/config"
)

// StorageMgr stores uploaded files and returns the URL they are served under.
// Remove takes such a URL and deletes the file behind it.
type StorageMgr interface {
	Save(ctx context.Context, filename, contentType string, reader io.Reader, size int64) (string, error)
	Remove(ctx context.Context, url string) error
}

// NewStorageManager returns the blob store selected by the configured driver.
func NewStorageManager(ctx context.Context, cfg config.Storage) (StorageMgr, error) {
	log.Infof("Initializing storage manager with driver %s", cfg.Driver)
	switch cfg.Driver {
	case "local":
		return NewLocalStorageManager(cfg.UploadDir, cfg.PublicPath)
	case "minio":
		client, err := minio.New(cfg.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
			Secure: cfg.UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create minio client: %w", err)
		}
		return NewMinioStorageManager(ctx, client, cfg.Bucket, cfg.PublicURL)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// objectName builds a collision free name that keeps the extension of the upload.
func objectName(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return uuid.New().String() + ext
}

// LocalStorageManager writes uploads to a directory served by the router.
type LocalStorageManager struct {
	dir        string
	publicPath string
}

func NewLocalStorageManager(dir, publicPath string) (*LocalStorageManager, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	return &LocalStorageManager{dir: dir, publicPath: publicPath}, nil
}

func (lm *LocalStorageManager) Save(_ context.Context, filename, _ string, reader io.Reader, _ int64) (string, error) {
	name := objectName(filename)
	file, err := os.Create(filepath.Join(lm.dir, name))
	if err != nil {
		return "", err
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return "", err
	}

	return path.Join(lm.publicPath, name), nil
}

func (lm *LocalStorageManager) Remove(_ context.Context, url string) error {
	err := os.Remove(filepath.Join(lm.dir, path.Base(url)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	return nil
}

// minioAPI is the part of the minio client used by the storage manager.
type minioAPI interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64,
		opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

// MinioStorageManager stores uploads in a MinIO or S3 compatible bucket.
type MinioStorageManager struct {
	client    minioAPI
	bucket    string
	publicURL string
}

func NewMinioStorageManager(ctx context.Context, client minioAPI, bucket, publicURL string) (*MinioStorageManager, error) {
	sm := &MinioStorageManager{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}
	if err := sm.ensureBucketExists(ctx); err != nil {
		return nil, err
	}

	return sm, nil
}

func (sm *MinioStorageManager) ensureBucketExists(ctx context.Context) error {
	exists, err := sm.client.BucketExists(ctx, sm.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if exists {
		return nil
	}

	log.Infof("Creating bucket %s", sm.bucket)
	if err := sm.client.MakeBucket(ctx, sm.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}

	return nil
}

func (sm *MinioStorageManager) Save(ctx context.Context, filename, contentType string, reader io.Reader, size int64) (string, error) {
	name := objectName(filename)
	_, err := sm.client.PutObject(ctx, sm.bucket, name, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	return sm.publicURL + "/" + sm.bucket + "/" + name, nil
}

func (sm *MinioStorageManager) Remove(ctx context.Context, url string) error {
	if err := sm.client.RemoveObject(ctx, sm.bucket, path.Base(url), minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove object: %w", err)
	}

	return nil
}
