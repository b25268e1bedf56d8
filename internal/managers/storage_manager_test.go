package managers

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockMinio struct {
	mock.Mock
}

func (m *mockMinio) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	args := m.Called(ctx, bucketName)
	return args.Bool(0), args.Error(1)
}

func (m *mockMinio) MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
	args := m.Called(ctx, bucketName, opts)
	return args.Error(0)
}

func (m *mockMinio) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64,
	opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	args := m.Called(ctx, bucketName, objectName, reader, objectSize, opts)
	return args.Get(0).(minio.UploadInfo), args.Error(1)
}

func (m *mockMinio) RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error {
	args := m.Called(ctx, bucketName, objectName, opts)
	return args.Error(0)
}

func TestLocalStorageManager_Save(t *testing.T) {
	dir := t.TempDir()
	sm, err := NewLocalStorageManager(dir, "/uploads")
	require.NoError(t, err)

	url, err := sm.Save(context.Background(), "Temple.JPG", "image/jpeg", strings.NewReader("pixels"), 6)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".jpg"))

	content, err := os.ReadFile(filepath.Join(dir, filepath.Base(url)))
	require.NoError(t, err)
	assert.Equal(t, "pixels", string(content))
}

func TestLocalStorageManager_Remove(t *testing.T) {
	dir := t.TempDir()
	sm, err := NewLocalStorageManager(dir, "/uploads")
	require.NoError(t, err)

	url, err := sm.Save(context.Background(), "fort.png", "image/png", strings.NewReader("png"), 3)
	require.NoError(t, err)

	require.NoError(t, sm.Remove(context.Background(), url))
	_, err = os.Stat(filepath.Join(dir, filepath.Base(url)))
	assert.True(t, os.IsNotExist(err))

	// removing twice is not an error
	assert.NoError(t, sm.Remove(context.Background(), url))
}

func TestMinioStorageManager_Remove(t *testing.T) {
	client := new(mockMinio)
	client.On("BucketExists", mock.Anything, "uploads").Return(true, nil)
	client.On("RemoveObject", mock.Anything, "uploads", "abc.png", minio.RemoveObjectOptions{}).Return(nil)

	sm, err := NewMinioStorageManager(context.Background(), client, "uploads", "http://minio:9000")
	require.NoError(t, err)

	require.NoError(t, sm.Remove(context.Background(), "http://minio:9000/uploads/abc.png"))
	client.AssertExpectations(t)
}

func TestMinioStorageManager_CreatesMissingBucket(t *testing.T) {
	client := new(mockMinio)
	client.On("BucketExists", mock.Anything, "uploads").Return(false, nil)
	client.On("MakeBucket", mock.Anything, "uploads", minio.MakeBucketOptions{}).Return(nil)

	_, err := NewMinioStorageManager(context.Background(), client, "uploads", "http://minio:9000/")
	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestMinioStorageManager_BucketCheckFails(t *testing.T) {
	client := new(mockMinio)
	client.On("BucketExists", mock.Anything, "uploads").Return(false, errors.New("connection refused"))

	_, err := NewMinioStorageManager(context.Background(), client, "uploads", "http://minio:9000")
	assert.Error(t, err)
	client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
}

func TestMinioStorageManager_Save(t *testing.T) {
	client := new(mockMinio)
	client.On("BucketExists", mock.Anything, "uploads").Return(true, nil)
	client.On("PutObject", mock.Anything, "uploads", mock.AnythingOfType("string"), mock.Anything, int64(6),
		minio.PutObjectOptions{ContentType: "image/png"}).Return(minio.UploadInfo{}, nil)

	sm, err := NewMinioStorageManager(context.Background(), client, "uploads", "http://minio:9000")
	require.NoError(t, err)

	url, err := sm.Save(context.Background(), "fort.png", "image/png", strings.NewReader("pixels"), 6)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://minio:9000/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".png"))
	client.AssertExpectations(t)
}
