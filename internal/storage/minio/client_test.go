package minio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	minioLib "github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMinio implements minioAPI for testing without network.
type fakeMinio struct {
	bucketExists    bool
	bucketExistsErr error
	makeBucketErr   error
	madeBucket      bool

	putInfo minioLib.UploadInfo
	putErr  error
	putKey  string

	removeErr error

	statInfo minioLib.ObjectInfo
	statErr  error

	endpoint string
}

func (f *fakeMinio) BucketExists(_ context.Context, _ string) (bool, error) {
	return f.bucketExists, f.bucketExistsErr
}

func (f *fakeMinio) MakeBucket(_ context.Context, _ string, _ minioLib.MakeBucketOptions) error {
	f.madeBucket = true
	return f.makeBucketErr
}

func (f *fakeMinio) PutObject(_ context.Context, _ string, objectName string, _ io.Reader, _ int64, _ minioLib.PutObjectOptions) (minioLib.UploadInfo, error) {
	f.putKey = objectName
	return f.putInfo, f.putErr
}

func (f *fakeMinio) RemoveObject(_ context.Context, _ string, _ string, _ minioLib.RemoveObjectOptions) error {
	return f.removeErr
}

func (f *fakeMinio) StatObject(_ context.Context, _ string, _ string, _ minioLib.StatObjectOptions) (minioLib.ObjectInfo, error) {
	return f.statInfo, f.statErr
}

func (f *fakeMinio) EndpointURL() string {
	return f.endpoint
}

func TestNewClientWithAPI_BucketExists(t *testing.T) {
	api := &fakeMinio{bucketExists: true}

	c, err := NewClientWithAPI(context.Background(), api, "images")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "images", c.bucket)
	assert.False(t, api.madeBucket)
}

func TestNewClientWithAPI_CreatesMissingBucket(t *testing.T) {
	api := &fakeMinio{bucketExists: false}

	_, err := NewClientWithAPI(context.Background(), api, "images")
	require.NoError(t, err)
	assert.True(t, api.madeBucket)
}

func TestNewClientWithAPI_BucketCheckError(t *testing.T) {
	api := &fakeMinio{bucketExistsErr: errors.New("connection refused")}

	_, err := NewClientWithAPI(context.Background(), api, "images")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to check bucket existence")
}

func TestClient_Upload(t *testing.T) {
	api := &fakeMinio{bucketExists: true, endpoint: "http://localhost:9000"}
	c, err := NewClientWithAPI(context.Background(), api, "images")
	require.NoError(t, err)

	data := []byte("jpeg bytes")
	url, err := c.Upload(context.Background(), "products/abc.jpg", bytes.NewReader(data), int64(len(data)), "image/jpeg")
	require.NoError(t, err)

	assert.Equal(t, "products/abc.jpg", api.putKey)
	assert.Equal(t, "http://localhost:9000/images/products/abc.jpg", url)
}

func TestClient_Upload_Error(t *testing.T) {
	api := &fakeMinio{bucketExists: true, putErr: errors.New("disk full")}
	c, err := NewClientWithAPI(context.Background(), api, "images")
	require.NoError(t, err)

	_, err = c.Upload(context.Background(), "products/abc.jpg", bytes.NewReader(nil), 0, "image/jpeg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to upload object")
}

func TestClient_Delete(t *testing.T) {
	api := &fakeMinio{bucketExists: true}
	c, err := NewClientWithAPI(context.Background(), api, "images")
	require.NoError(t, err)

	require.NoError(t, c.Delete(context.Background(), "products/abc.jpg"))

	api.removeErr = errors.New("boom")
	err = c.Delete(context.Background(), "products/abc.jpg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete object")
}

func TestClient_Exists(t *testing.T) {
	api := &fakeMinio{bucketExists: true}
	c, err := NewClientWithAPI(context.Background(), api, "images")
	require.NoError(t, err)

	exists, err := c.Exists(context.Background(), "products/abc.jpg")
	require.NoError(t, err)
	assert.True(t, exists)

	api.statErr = minioLib.ErrorResponse{Code: "NoSuchKey"}
	exists, err = c.Exists(context.Background(), "products/missing.jpg")
	require.NoError(t, err)
	assert.False(t, exists)
}
